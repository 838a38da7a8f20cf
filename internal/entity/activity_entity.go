package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity event types published on the in-process bus.
const (
	ActivityJobCreated     = "JOB_CREATED"
	ActivityEntityTrashed  = "ENTITY_TRASHED"
	ActivityEntityRestored = "ENTITY_RESTORED"
	ActivityEntityPurged   = "ENTITY_PURGED"
	ActivityTrashEmptied   = "TRASH_EMPTIED"
	ActivityJobStatusMoved = "JOB_STATUS_CHANGED"
)

type ActivityEvent struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      string
	Detail    map[string]interface{}
	CreatedAt time.Time
}
