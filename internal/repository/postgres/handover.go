package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"relay/internal/entities"
	"relay/internal/repository"
)

var handoverColumns = []string{
	"id",
	"delivery_id",
	"from_segment_id",
	"to_segment_id",
	"location_address",
	"location_lat",
	"location_lon",
	"verification_code",
	"confirmed_by_sender",
	"confirmed_by_receiver",
	"created_at",
	"completed_at",
}

func (r *Repository) CreateHandover(ctx context.Context, handover entities.HandoverEvent) error {
	h := HandoverFromDomain(&handover)

	query, args, err := qb.
		Insert("handovers").
		Columns(handoverColumns...).
		Values(
			h.ID,
			h.DeliveryID,
			h.FromSegmentID,
			h.ToSegmentID,
			h.LocationAddress,
			h.LocationLat,
			h.LocationLon,
			h.VerificationCode,
			h.ConfirmedBySender,
			h.ConfirmedByReceiver,
			h.CreatedAt,
			h.CompletedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected handover repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("handover from segment %s already exists: %w", h.FromSegmentID, err)
		}
		return fmt.Errorf("unexpected handover repository create error: %w", err)
	}
	return nil
}

func (r *Repository) GetHandoverByFromSegment(ctx context.Context, fromSegmentID string) (*entities.HandoverEvent, error) {
	query, args, err := qb.
		Select(handoverColumns...).
		From("handovers").
		Where(sq.Eq{"from_segment_id": fromSegmentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected handover repository get error: %w", err)
	}

	var h HandoverDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&h.ID,
		&h.DeliveryID,
		&h.FromSegmentID,
		&h.ToSegmentID,
		&h.LocationAddress,
		&h.LocationLat,
		&h.LocationLon,
		&h.VerificationCode,
		&h.ConfirmedBySender,
		&h.ConfirmedByReceiver,
		&h.CreatedAt,
		&h.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrHandoverNotFound
		}
		return nil, fmt.Errorf("unexpected handover repository get error: %w", err)
	}
	return HandoverToDomain(&h), nil
}

// SaveHandover сохраняет состояние подтверждений передачи.
func (r *Repository) SaveHandover(ctx context.Context, handover entities.HandoverEvent) error {
	h := HandoverFromDomain(&handover)

	query, args, err := qb.
		Update("handovers").
		Set("confirmed_by_sender", h.ConfirmedBySender).
		Set("confirmed_by_receiver", h.ConfirmedByReceiver).
		Set("completed_at", h.CompletedAt).
		Where(sq.Eq{"from_segment_id": h.FromSegmentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected handover repository save error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected handover repository save error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrHandoverNotFound
	}
	return nil
}
