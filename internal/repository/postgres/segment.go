package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"relay/internal/entities"
	"relay/internal/repository"
)

var segmentColumns = []string{
	"id",
	"delivery_id",
	"idx",
	"start_address",
	"start_lat",
	"start_lon",
	"end_address",
	"end_lat",
	"end_lon",
	"distance_km",
	"duration_min",
	"estimated_cost",
	"status",
	"courier_id",
	"replaces_segment_id",
	"last_activity_at",
	"created_at",
	"updated_at",
}

func segmentValues(s *SegmentDB) []any {
	return []any{
		s.ID,
		s.DeliveryID,
		s.Index,
		s.StartAddress,
		s.StartLat,
		s.StartLon,
		s.EndAddress,
		s.EndLat,
		s.EndLon,
		s.DistanceKm,
		s.DurationMin,
		s.EstimatedCost,
		s.Status,
		s.CourierID,
		s.ReplacesSegmentID,
		s.LastActivityAt,
		s.CreatedAt,
		s.UpdatedAt,
	}
}

func scanSegment(row scanner) (*entities.Segment, error) {
	var s SegmentDB
	err := row.Scan(
		&s.ID,
		&s.DeliveryID,
		&s.Index,
		&s.StartAddress,
		&s.StartLat,
		&s.StartLon,
		&s.EndAddress,
		&s.EndLat,
		&s.EndLon,
		&s.DistanceKm,
		&s.DurationMin,
		&s.EstimatedCost,
		&s.Status,
		&s.CourierID,
		&s.ReplacesSegmentID,
		&s.LastActivityAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return SegmentToDomain(&s), nil
}

func (r *Repository) GetSegment(ctx context.Context, segmentID string) (*entities.Segment, error) {
	return r.getSegment(ctx, segmentID, false)
}

// GetSegmentForUpdate блокирует строку сегмента до конца транзакции.
func (r *Repository) GetSegmentForUpdate(ctx context.Context, segmentID string) (*entities.Segment, error) {
	return r.getSegment(ctx, segmentID, true)
}

func (r *Repository) getSegment(ctx context.Context, segmentID string, forUpdate bool) (*entities.Segment, error) {
	builder := qb.
		Select(segmentColumns...).
		From("segments").
		Where(sq.Eq{"id": segmentID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected segment repository get error: %w", err)
	}

	segment, err := scanSegment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSegmentNotFound
		}
		return nil, fmt.Errorf("unexpected segment repository get error: %w", err)
	}
	return segment, nil
}

// ListSegments возвращает сегменты в порядке ids.
func (r *Repository) ListSegments(ctx context.Context, segmentIDs []string) ([]entities.Segment, error) {
	if len(segmentIDs) == 0 {
		return []entities.Segment{}, nil
	}

	segments, err := r.selectSegments(ctx, qb.
		Select(segmentColumns...).
		From("segments").
		Where(sq.Eq{"id": segmentIDs}))
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entities.Segment, len(segments))
	for _, s := range segments {
		byID[s.ID] = s
	}

	ordered := make([]entities.Segment, 0, len(segmentIDs))
	for _, id := range segmentIDs {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("segment %s: %w", id, entities.ErrSegmentNotFound)
		}
		ordered = append(ordered, s)
	}
	return ordered, nil
}

func (r *Repository) ListOpenSegments(ctx context.Context) ([]entities.Segment, error) {
	return r.selectSegments(ctx, qb.
		Select(segmentColumns...).
		From("segments").
		Where(sq.Eq{"status": entities.SegmentOpen.String()}).
		OrderBy("created_at ASC", "idx ASC", "id ASC"))
}

func (r *Repository) ListSegmentsByCourier(
	ctx context.Context,
	courierID string,
	statuses []entities.SegmentStatus,
) ([]entities.Segment, error) {
	return r.selectSegments(ctx, qb.
		Select(segmentColumns...).
		From("segments").
		Where(sq.Eq{
			"courier_id": courierID,
			"status":     statusStrings(statuses),
		}).
		OrderBy("delivery_id ASC", "idx ASC", "created_at ASC"))
}

func (r *Repository) ListSegmentsIdleSince(
	ctx context.Context,
	status entities.SegmentStatus,
	before time.Time,
) ([]entities.Segment, error) {
	return r.selectSegments(ctx, qb.
		Select(segmentColumns...).
		From("segments").
		Where(sq.Eq{"status": status.String()}).
		Where(sq.Lt{"last_activity_at": before}).
		OrderBy("delivery_id ASC", "idx ASC", "created_at ASC"))
}

func (r *Repository) CreateSegment(ctx context.Context, segment entities.Segment) error {
	query, args, err := qb.
		Insert("segments").
		Columns(segmentColumns...).
		Values(segmentValues(SegmentFromDomain(&segment))...).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected segment repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("segment %s already exists: %w", segment.ID, err)
		}
		return fmt.Errorf("unexpected segment repository create error: %w", err)
	}
	return nil
}

// SaveSegment сохраняет изменяемую часть сегмента.
func (r *Repository) SaveSegment(ctx context.Context, segment entities.Segment) error {
	s := SegmentFromDomain(&segment)

	query, args, err := qb.
		Update("segments").
		Set("status", s.Status).
		Set("courier_id", s.CourierID).
		Set("estimated_cost", s.EstimatedCost).
		Set("duration_min", s.DurationMin).
		Set("last_activity_at", s.LastActivityAt).
		Set("updated_at", s.UpdatedAt).
		Where(sq.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected segment repository save error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected segment repository save error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrSegmentNotFound
	}
	return nil
}

func (r *Repository) selectSegments(ctx context.Context, builder sq.SelectBuilder) ([]entities.Segment, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected segment repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected segment repository list error: %w", err)
	}
	defer rows.Close()

	segments := make([]entities.Segment, 0)
	for rows.Next() {
		segment, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected segment repository scan error: %w", err)
		}
		segments = append(segments, *segment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected segment repository rows error: %w", err)
	}
	return segments, nil
}

func statusStrings(statuses []entities.SegmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
