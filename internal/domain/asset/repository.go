// internal/domain/asset/repository.go
package asset

import (
	"context"
	"time"

	"secad-service/internal/query"
)

type Repository interface {
	Create(ctx context.Context, a *Asset) error
	FindByID(ctx context.Context, id string) (*Asset, error)
	Update(ctx context.Context, a *Asset) error

	// List returns the full collection, newest first.
	List(ctx context.Context) ([]Asset, error)

	Search(ctx context.Context, cons []query.Constraint) ([]Asset, error)

	// Transfer sets the sector and appends the history entry in one write so
	// the two can never diverge in the stored record.
	Transfer(ctx context.Context, id string, entry Transfer, at time.Time) error

	// DistinctDescriptions feeds the form's autocomplete list.
	DistinctDescriptions(ctx context.Context) ([]string, error)
}
