package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrashKind names one of the soft-deletable record kinds.
type TrashKind string

const (
	TrashKindJob       TrashKind = "job"
	TrashKindCompany   TrashKind = "company"
	TrashKindContact   TrashKind = "contact"
	TrashKindTodo      TrashKind = "todo"
	TrashKindKnowledge TrashKind = "knowledge"
	TrashKindReminder  TrashKind = "reminder"
)

var TrashKinds = []TrashKind{
	TrashKindJob,
	TrashKindCompany,
	TrashKindContact,
	TrashKindTodo,
	TrashKindKnowledge,
	TrashKindReminder,
}

func ParseTrashKind(s string) (TrashKind, bool) {
	for _, k := range TrashKinds {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Trashable is implemented by every soft-deletable entity.
type Trashable interface {
	TrashLabel() string
	Trashed() (id uuid.UUID, deletedAt *time.Time)
}

// TrashRecord is the kind-agnostic view of a trashed entity.
type TrashRecord struct {
	Kind      TrashKind
	Id        uuid.UUID
	Label     string
	DeletedAt time.Time
}
