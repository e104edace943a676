// Package availability decides which inflatables are free on a given date.
// An item is unavailable when a non-cancelled booking or an active manual
// block covers that date. All date math is inclusive lexicographic comparison
// of zero-padded ISO strings.
package availability

import (
	"context"
	"fmt"

	"github.com/dmuchance/bouncematch/internal/logger"
	"github.com/dmuchance/bouncematch/internal/repository"
)

// Resolver defines the interface for availability checks
type Resolver interface {
	// IsAvailable checks one item for one date. An empty date means
	// date-agnostic preview mode: always available.
	IsAvailable(ctx context.Context, inflatableID, date string) (bool, error)

	// ResolveAll classifies every id for the date in two queries total,
	// not one pair per item.
	ResolveAll(ctx context.Context, inflatableIDs []string, date string) (map[string]bool, error)
}

// resolver implements the Resolver interface
type resolver struct {
	repo repository.Scheduling
}

// NewResolver creates a new availability resolver
func NewResolver(repo repository.Scheduling) Resolver {
	return &resolver{repo: repo}
}

// IsAvailable checks bookings first, then manual blocks
func (r *resolver) IsAvailable(ctx context.Context, inflatableID, date string) (bool, error) {
	if date == "" {
		return true, nil
	}

	bookings, err := r.repo.ListBookingsForInflatable(ctx, inflatableID)
	if err != nil {
		return false, fmt.Errorf("failed to list bookings: %w", err)
	}
	for _, b := range bookings {
		if b.Blocks(date) {
			return false, nil
		}
	}

	blocks, err := r.repo.ListActiveBlocksForInflatable(ctx, inflatableID)
	if err != nil {
		return false, fmt.Errorf("failed to list blocks: %w", err)
	}
	for _, b := range blocks {
		if b.Covers(date) {
			return false, nil
		}
	}

	return true, nil
}

// ResolveAll loads every conflicting booking and block for the date once and
// classifies items by set membership.
func (r *resolver) ResolveAll(ctx context.Context, inflatableIDs []string, date string) (map[string]bool, error) {
	result := make(map[string]bool, len(inflatableIDs))

	if date == "" {
		for _, id := range inflatableIDs {
			result[id] = true
		}
		return result, nil
	}

	bookings, err := r.repo.ListBookingsCovering(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", date, err)
	}
	blocks, err := r.repo.ListActiveBlocksCovering(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks for %s: %w", date, err)
	}

	occupied := make(map[string]struct{}, len(bookings)+len(blocks))
	for _, b := range bookings {
		occupied[b.InflatableID] = struct{}{}
	}
	for _, b := range blocks {
		occupied[b.InflatableID] = struct{}{}
	}

	for _, id := range inflatableIDs {
		_, taken := occupied[id]
		result[id] = !taken
	}

	logger.FromContext(ctx).Debug("Resolved availability",
		"date", date, "items", len(inflatableIDs), "occupied", len(occupied))

	return result, nil
}
