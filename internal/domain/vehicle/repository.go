// internal/domain/vehicle/repository.go
package vehicle

import (
	"context"
	"time"

	"secad-service/internal/query"
)

type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	FindByID(ctx context.Context, id string) (*Vehicle, error)
	Update(ctx context.Context, v *Vehicle) error
	Delete(ctx context.Context, id string) error

	// List returns the full collection ordered by registration number
	// descending.
	List(ctx context.Context) ([]Vehicle, error)

	// Search evaluates the pushdown-eligible constraints server-side and
	// returns the matching records; everything else is the caller's linear
	// scan.
	Search(ctx context.Context, cons []query.Constraint) ([]Vehicle, error)

	// MaxRegistrationNumber returns the current maximum registration number,
	// or ok=false when the collection is empty.
	MaxRegistrationNumber(ctx context.Context) (int64, bool, error)

	// SetReleaseDate updates only the release date; nil marks the vehicle as
	// not yet released again.
	SetReleaseDate(ctx context.Context, id string, date *time.Time) error
}
