package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"relay/internal/entities"
)

var positionColumns = []string{
	"courier_id",
	"lat",
	"lon",
	"availability",
	"reported_at",
}

// SaveCourierPosition сохраняет последнюю позицию; более старые отчёты игнорируются.
func (r *Repository) SaveCourierPosition(ctx context.Context, position entities.CourierPosition) error {
	query, args, err := qb.
		Insert("courier_positions").
		Columns(positionColumns...).
		Values(
			position.CourierID,
			position.Coordinates.Lat,
			position.Coordinates.Lon,
			position.Availability.String(),
			position.ReportedAt,
		).
		Suffix(`ON CONFLICT (courier_id) DO UPDATE SET
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			availability = EXCLUDED.availability,
			reported_at = EXCLUDED.reported_at
		WHERE courier_positions.reported_at <= EXCLUDED.reported_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected courier position repository save error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected courier position repository save error: %w", err)
	}
	return nil
}

func (r *Repository) GetCourierPosition(ctx context.Context, courierID string) (*entities.CourierPosition, error) {
	query, args, err := qb.
		Select(positionColumns...).
		From("courier_positions").
		Where(sq.Eq{"courier_id": courierID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier position repository get error: %w", err)
	}

	var p CourierPositionDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(&p.CourierID, &p.Lat, &p.Lon, &p.Availability, &p.ReportedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCourierPositionNotFound
		}
		return nil, fmt.Errorf("unexpected courier position repository get error: %w", err)
	}
	return CourierPositionToDomain(&p), nil
}

func (r *Repository) ListAvailableCouriers(ctx context.Context) ([]entities.CourierPosition, error) {
	query, args, err := qb.
		Select(positionColumns...).
		From("courier_positions").
		Where(sq.Eq{"availability": entities.CourierAvailable.String()}).
		OrderBy("courier_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier position repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier position repository list error: %w", err)
	}
	defer rows.Close()

	positions := make([]entities.CourierPosition, 0)
	for rows.Next() {
		var p CourierPositionDB
		if err := rows.Scan(&p.CourierID, &p.Lat, &p.Lon, &p.Availability, &p.ReportedAt); err != nil {
			return nil, fmt.Errorf("unexpected courier position repository scan error: %w", err)
		}
		positions = append(positions, *CourierPositionToDomain(&p))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier position repository rows error: %w", err)
	}
	return positions, nil
}
