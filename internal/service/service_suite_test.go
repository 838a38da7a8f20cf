package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"careerflow-be/internal/model"
	"careerflow-be/internal/repository/unitofwork"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database and migrates all
// tables. cache=shared keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Job{},
		&model.Company{},
		&model.Contact{},
		&model.Todo{},
		&model.Knowledge{},
		&model.Reminder{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.ChatMessageRaw{},
		&model.LLMConfig{},
		&model.ActivityEvent{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(newTestDB(t))
}

// nopPublisher swallows activity events in tests that do not assert on them.
type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, payload []byte) error {
	return nil
}
