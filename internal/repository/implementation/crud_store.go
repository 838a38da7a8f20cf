package implementation

import (
	"context"
	"errors"

	"careerflow-be/internal/repository/specification"

	"gorm.io/gorm"
)

// EntityMapper converts between a domain entity and its persistence model.
// Every mapper in internal/mapper satisfies it.
type EntityMapper[E any, M any] interface {
	ToEntity(m *M) *E
	ToModel(e *E) *M
}

// CrudStore is the one generic repository all entity kinds share. Per-kind
// repositories embed it instead of each carrying its own copy of these
// methods.
type CrudStore[E any, M any] struct {
	db     *gorm.DB
	mapper EntityMapper[E, M]
}

func NewCrudStore[E any, M any](db *gorm.DB, mapper EntityMapper[E, M]) *CrudStore[E, M] {
	return &CrudStore[E, M]{
		db:     db,
		mapper: mapper,
	}
}

func (s *CrudStore[E, M]) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (s *CrudStore[E, M]) Create(ctx context.Context, e *E) error {
	m := s.mapper.ToModel(e)
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*e = *s.mapper.ToEntity(m)
	return nil
}

func (s *CrudStore[E, M]) Update(ctx context.Context, e *E) error {
	m := s.mapper.ToModel(e)
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*e = *s.mapper.ToEntity(m)
	return nil
}

func (s *CrudStore[E, M]) FindOne(ctx context.Context, specs ...specification.Specification) (*E, error) {
	var m M
	query := s.applySpecifications(s.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.mapper.ToEntity(&m), nil
}

func (s *CrudStore[E, M]) FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error) {
	var models []*M
	query := s.applySpecifications(s.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*E, 0, len(models))
	for _, m := range models {
		entities = append(entities, s.mapper.ToEntity(m))
	}
	return entities, nil
}

func (s *CrudStore[E, M]) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	var m M
	query := s.applySpecifications(s.db.WithContext(ctx).Model(&m), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
