package unitofwork

import (
	"context"

	"careerflow-be/internal/entity"
	"careerflow-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	JobRepository() contract.JobRepository
	CompanyRepository() contract.CompanyRepository
	ContactRepository() contract.ContactRepository
	TodoRepository() contract.TodoRepository
	KnowledgeRepository() contract.KnowledgeRepository
	ReminderRepository() contract.ReminderRepository

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	ChatMessageRawRepository() contract.ChatMessageRawRepository
	LLMConfigRepository() contract.LLMConfigRepository
	ActivityRepository() contract.ActivityRepository

	// TrashStore resolves the trash lifecycle for one kind. The second
	// result is false for a kind that is not soft-deletable.
	TrashStore(kind entity.TrashKind) (contract.TrashStore, bool)
}
