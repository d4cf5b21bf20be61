package postgres

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"relay/internal/entities"
)

var proposalColumns = []string{
	"segment_id",
	"courier_id",
	"proposed_cost",
	"proposed_duration_min",
	"submitted_at",
}

func scanProposal(row scanner) (*entities.Proposal, error) {
	var p ProposalDB
	err := row.Scan(
		&p.SegmentID,
		&p.CourierID,
		&p.ProposedCost,
		&p.ProposedDurationMin,
		&p.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return ProposalToDomain(&p), nil
}

// SaveProposal вставляет или заменяет предложение курьера по сегменту.
func (r *Repository) SaveProposal(ctx context.Context, proposal entities.Proposal) error {
	query, args, err := qb.
		Insert("proposals").
		Columns(proposalColumns...).
		Values(
			proposal.SegmentID,
			proposal.CourierID,
			proposal.ProposedCost,
			proposal.ProposedDurationMin,
			proposal.SubmittedAt,
		).
		Suffix(`ON CONFLICT (segment_id, courier_id) DO UPDATE SET
			proposed_cost = EXCLUDED.proposed_cost,
			proposed_duration_min = EXCLUDED.proposed_duration_min,
			submitted_at = EXCLUDED.submitted_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected proposal repository save error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected proposal repository save error: %w", err)
	}
	return nil
}

func (r *Repository) GetProposal(ctx context.Context, segmentID, courierID string) (*entities.Proposal, error) {
	query, args, err := qb.
		Select(proposalColumns...).
		From("proposals").
		Where(sq.Eq{"segment_id": segmentID, "courier_id": courierID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected proposal repository get error: %w", err)
	}

	proposal, err := scanProposal(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProposalNotFound
		}
		return nil, fmt.Errorf("unexpected proposal repository get error: %w", err)
	}
	return proposal, nil
}

func (r *Repository) ListProposals(ctx context.Context, segmentID string) ([]entities.Proposal, error) {
	query, args, err := qb.
		Select(proposalColumns...).
		From("proposals").
		Where(sq.Eq{"segment_id": segmentID}).
		OrderBy("submitted_at ASC", "courier_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected proposal repository list error: %w", err)
	}

	return r.queryProposals(ctx, query, args...)
}

// DeleteProposals удаляет все предложения по сегменту и возвращает их.
func (r *Repository) DeleteProposals(ctx context.Context, segmentID string) ([]entities.Proposal, error) {
	query, args, err := qb.
		Delete("proposals").
		Where(sq.Eq{"segment_id": segmentID}).
		Suffix("RETURNING segment_id, courier_id, proposed_cost, proposed_duration_min, submitted_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected proposal repository delete error: %w", err)
	}

	proposals, err := r.queryProposals(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	sortProposals(proposals)
	return proposals, nil
}

func (r *Repository) queryProposals(ctx context.Context, query string, args ...any) ([]entities.Proposal, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected proposal repository query error: %w", err)
	}
	defer rows.Close()

	proposals := make([]entities.Proposal, 0)
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected proposal repository scan error: %w", err)
		}
		proposals = append(proposals, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected proposal repository rows error: %w", err)
	}
	return proposals, nil
}

// у RETURNING нет ORDER BY
func sortProposals(proposals []entities.Proposal) {
	slices.SortFunc(proposals, func(a, b entities.Proposal) int {
		return cmp.Or(
			a.SubmittedAt.Compare(b.SubmittedAt),
			cmp.Compare(a.CourierID, b.CourierID),
		)
	})
}
