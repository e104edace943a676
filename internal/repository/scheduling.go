package repository

import (
	"context"

	"github.com/dmuchance/bouncematch/internal/domain"
)

// Scheduling defines the interface for booking and availability-block reads.
type Scheduling interface {
	// ListBookingsForInflatable returns all bookings for one item,
	// regardless of status.
	ListBookingsForInflatable(ctx context.Context, inflatableID string) ([]domain.Booking, error)

	// ListBookingsCovering returns all non-cancelled bookings whose
	// inclusive date range contains date. Used by the batch availability
	// path to avoid one query per item.
	ListBookingsCovering(ctx context.Context, date string) ([]domain.Booking, error)

	// ListActiveBlocksForInflatable returns active blocks for one item.
	ListActiveBlocksForInflatable(ctx context.Context, inflatableID string) ([]domain.AvailabilityBlock, error)

	// ListActiveBlocksCovering returns all active blocks whose inclusive
	// date range contains date.
	ListActiveBlocksCovering(ctx context.Context, date string) ([]domain.AvailabilityBlock, error)
}
