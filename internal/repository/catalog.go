package repository

import (
	"context"

	"github.com/dmuchance/bouncematch/internal/domain"
)

// Catalog defines the interface for inventory and tag reads.
// The ranking engine only ever reads the catalog; mutation happens in the
// admin surface, which is a separate system.
type Catalog interface {
	// ListActiveInflatables returns every inflatable with is_active=true,
	// ordered by sort_order.
	ListActiveInflatables(ctx context.Context) ([]domain.Inflatable, error)

	// GetInflatableByID returns one inflatable regardless of active flag,
	// or domain.ErrInflatableNotFound.
	GetInflatableByID(ctx context.Context, id string) (*domain.Inflatable, error)

	// ListActiveTags returns every tag with is_active=true.
	ListActiveTags(ctx context.Context) ([]domain.Tag, error)
}
