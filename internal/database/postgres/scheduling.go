package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmuchance/bouncematch/internal/domain"
	"github.com/dmuchance/bouncematch/internal/repository"
)

// SchedulingRepository implements the scheduling repository for PostgreSQL
type SchedulingRepository struct {
	pool *pgxpool.Pool
}

// NewSchedulingRepository creates a new SchedulingRepository
func NewSchedulingRepository(pool *pgxpool.Pool) repository.Scheduling {
	return &SchedulingRepository{pool: pool}
}

const bookingColumns = `
	id, inflatable_id, start_date, end_date,
	COALESCE(start_time, ''), COALESCE(end_time, ''), status,
	COALESCE(client_name, ''), COALESCE(client_phone, ''), COALESCE(client_email, ''),
	price, COALESCE(booking_number, '')`

const blockColumns = `
	id, inflatable_id, start_date, end_date,
	reason, COALESCE(reason_description, ''), is_active`

// ListBookingsForInflatable returns all bookings for one item regardless of status
func (r *SchedulingRepository) ListBookingsForInflatable(ctx context.Context, inflatableID string) ([]domain.Booking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE inflatable_id = $1`, inflatableID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListBookingsCovering returns all non-cancelled bookings covering date
func (r *SchedulingRepository) ListBookingsCovering(ctx context.Context, date string) ([]domain.Booking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE status <> 'cancelled' AND start_date <= $1 AND end_date >= $1`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

// ListActiveBlocksForInflatable returns active blocks for one item
func (r *SchedulingRepository) ListActiveBlocksForInflatable(ctx context.Context, inflatableID string) ([]domain.AvailabilityBlock, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+blockColumns+` FROM availability_blocks
		 WHERE inflatable_id = $1 AND is_active`, inflatableID)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocks: %w", err)
	}
	defer rows.Close()
	return collectBlocks(rows)
}

// ListActiveBlocksCovering returns all active blocks covering date
func (r *SchedulingRepository) ListActiveBlocksCovering(ctx context.Context, date string) ([]domain.AvailabilityBlock, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+blockColumns+` FROM availability_blocks
		 WHERE is_active AND start_date <= $1 AND end_date >= $1`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocks: %w", err)
	}
	defer rows.Close()
	return collectBlocks(rows)
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(
			&b.ID, &b.InflatableID, &b.StartDate, &b.EndDate,
			&b.StartTime, &b.EndTime, &b.Status,
			&b.ClientName, &b.ClientPhone, &b.ClientEmail,
			&b.Price, &b.Number,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	return bookings, nil
}

func collectBlocks(rows pgx.Rows) ([]domain.AvailabilityBlock, error) {
	var blocks []domain.AvailabilityBlock
	for rows.Next() {
		var b domain.AvailabilityBlock
		err := rows.Scan(
			&b.ID, &b.InflatableID, &b.StartDate, &b.EndDate,
			&b.Reason, &b.ReasonText, &b.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blocks: %w", err)
	}
	return blocks, nil
}
