package contract

import (
	"context"

	"careerflow-be/internal/repository/specification"
)

// CrudRepository is the shared persistence surface for every entity kind.
// Per-kind interfaces embed it and add only what the kind actually needs.
type CrudRepository[E any] interface {
	Create(ctx context.Context, e *E) error
	Update(ctx context.Context, e *E) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*E, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*E, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
