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

var deliveryColumns = []string{
	"id",
	"client_id",
	"segment_ids",
	"package_type",
	"package_weight_kg",
	"package_dimensions",
	"package_notes",
	"urgency",
	"special_instructions",
	"preferred_time_slots",
	"created_at",
	"updated_at",
}

// CreateDelivery вставляет доставку и её начальные сегменты.
// Вызывается внутри транзакции.
func (r *Repository) CreateDelivery(ctx context.Context, delivery entities.Delivery, segments []entities.Segment) error {
	d := DeliveryFromDomain(&delivery)

	query, args, err := qb.
		Insert("deliveries").
		Columns(deliveryColumns...).
		Values(
			d.ID,
			d.ClientID,
			d.SegmentIDs,
			d.PackageType,
			d.PackageWeightKg,
			d.PackageDimensions,
			d.PackageNotes,
			d.Urgency,
			d.SpecialInstructions,
			d.PreferredTimeSlots,
			d.CreatedAt,
			d.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("delivery %s already exists: %w", d.ID, err)
		}
		return fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	if len(segments) == 0 {
		return nil
	}

	builder := qb.Insert("segments").Columns(segmentColumns...)
	for i := range segments {
		builder = builder.Values(segmentValues(SegmentFromDomain(&segments[i]))...)
	}

	query, args, err = builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected delivery repository create segments error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository create segments error: %w", err)
	}
	return nil
}

func (r *Repository) GetDelivery(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	return r.getDelivery(ctx, deliveryID, false)
}

// GetDeliveryForUpdate блокирует строку доставки до конца транзакции.
func (r *Repository) GetDeliveryForUpdate(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	return r.getDelivery(ctx, deliveryID, true)
}

func (r *Repository) getDelivery(ctx context.Context, deliveryID string, forUpdate bool) (*entities.Delivery, error) {
	builder := qb.
		Select(deliveryColumns...).
		From("deliveries").
		Where(sq.Eq{"id": deliveryID})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	var d DeliveryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&d.ID,
		&d.ClientID,
		&d.SegmentIDs,
		&d.PackageType,
		&d.PackageWeightKg,
		&d.PackageDimensions,
		&d.PackageNotes,
		&d.Urgency,
		&d.SpecialInstructions,
		&d.PreferredTimeSlots,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return DeliveryToDomain(&d), nil
}

func (r *Repository) UpdateDeliverySegments(ctx context.Context, deliveryID string, segmentIDs []string) error {
	if segmentIDs == nil {
		segmentIDs = []string{}
	}

	query, args, err := qb.
		Update("deliveries").
		Set("segment_ids", segmentIDs).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": deliveryID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository update error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrDeliveryNotFound
	}
	return nil
}
