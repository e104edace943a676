package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmuchance/bouncematch/internal/domain"
	"github.com/dmuchance/bouncematch/internal/repository"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(pool *pgxpool.Pool) repository.Catalog {
	return &CatalogRepository{pool: pool}
}

const inflatableColumns = `
	id, name, COALESCE(description, ''), COALESCE(short_description, ''), type,
	age_min, age_max, max_capacity, simultaneous_capacity,
	length, width, height, min_space_length, min_space_width,
	indoor_suitable, outdoor_suitable, surface_types,
	requires_power, outlet_count, setup_time_minutes,
	base_price, duration_prices, price_per_hour, delivery_price,
	tag_ids, COALESCE(intensity, ''), is_competitive, event_types_fit,
	wow_factor, COALESCE(color_theme, ''), COALESCE(best_for_notes, ''),
	is_active, sort_order`

// ListActiveInflatables returns all active inflatables ordered by sort_order
func (r *CatalogRepository) ListActiveInflatables(ctx context.Context) ([]domain.Inflatable, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+inflatableColumns+` FROM inflatables WHERE is_active ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query inflatables: %w", err)
	}
	defer rows.Close()

	var items []domain.Inflatable
	for rows.Next() {
		item, err := scanInflatable(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inflatables: %w", err)
	}
	return items, nil
}

// GetInflatableByID returns one inflatable regardless of active flag
func (r *CatalogRepository) GetInflatableByID(ctx context.Context, id string) (*domain.Inflatable, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+inflatableColumns+` FROM inflatables WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query inflatable: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read inflatable: %w", err)
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrInflatableNotFound, id)
	}
	return scanInflatable(rows)
}

// ListActiveTags returns all active tags
func (r *CatalogRepository) ListActiveTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tag_group, name, COALESCE(color, ''), is_active FROM tags WHERE is_active`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Group, &t.Name, &t.Color, &t.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}
	return tags, nil
}

// scanInflatable scans the current row into a domain.Inflatable
func scanInflatable(row pgx.Rows) (*domain.Inflatable, error) {
	var (
		item           domain.Inflatable
		surfaceTypes   []string
		eventTypesFit  []string
		durationPrices []byte
		intensity      string
	)

	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.ShortDescription, &item.Type,
		&item.AgeMin, &item.AgeMax, &item.MaxCapacity, &item.SimultaneousCapacity,
		&item.Length, &item.Width, &item.Height, &item.MinSpaceLength, &item.MinSpaceWidth,
		&item.IndoorSuitable, &item.OutdoorSuitable, &surfaceTypes,
		&item.RequiresPower, &item.OutletCount, &item.SetupTimeMinutes,
		&item.BasePrice, &durationPrices, &item.PricePerHour, &item.DeliveryPrice,
		&item.TagIDs, &intensity, &item.IsCompetitive, &eventTypesFit,
		&item.WowFactor, &item.ColorTheme, &item.BestForNotes,
		&item.IsActive, &item.SortOrder,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInflatableNotFound
		}
		return nil, fmt.Errorf("failed to scan inflatable: %w", err)
	}

	item.Intensity = domain.Intensity(intensity)
	for _, s := range surfaceTypes {
		item.SurfaceTypes = append(item.SurfaceTypes, domain.SurfaceType(s))
	}
	for _, f := range eventTypesFit {
		item.EventTypesFit = append(item.EventTypesFit, domain.EventFitness(f))
	}
	if len(durationPrices) > 0 {
		if err := json.Unmarshal(durationPrices, &item.DurationPrice); err != nil {
			return nil, fmt.Errorf("failed to unmarshal duration prices: %w", err)
		}
	}

	return &item, nil
}
