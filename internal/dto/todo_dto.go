package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	Title    string     `json:"title" validate:"required"`
	Category string     `json:"category"`
	DueDate  *time.Time `json:"due_date"`
}

type CreateTodoResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateTodoRequest struct {
	Id        uuid.UUID
	Title     *string    `json:"title"`
	Completed *bool      `json:"completed"`
	Category  *string    `json:"category"`
	DueDate   *time.Time `json:"due_date"`
}

type TodoResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Category  string     `json:"category"`
	DueDate   *time.Time `json:"due_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
