package dto

import (
	"time"

	"github.com/google/uuid"
)

type TrashItemResponse struct {
	Kind      string    `json:"kind"`
	Id        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	DeletedAt time.Time `json:"deleted_at"`
}

type EmptyTrashResponse struct {
	Deleted int64 `json:"deleted"`
}
