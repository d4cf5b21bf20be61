package memory

import (
	"cmp"
	"context"
	"slices"

	"relay/internal/entities"
)

// SaveProposal сохраняет предложение, заменяя прежнее предложение курьера
// по тому же сегменту.
func (s *Store) SaveProposal(ctx context.Context, proposal entities.Proposal) error {
	return s.write(ctx, "", func(t *tx) error {
		byCourier := t.proposals[proposal.SegmentID]
		if byCourier == nil {
			byCourier = make(map[string]entities.Proposal)
			t.proposals[proposal.SegmentID] = byCourier
		}
		byCourier[proposal.CourierID] = proposal
		return nil
	})
}

func (s *Store) GetProposal(ctx context.Context, segmentID, courierID string) (*entities.Proposal, error) {
	t, _ := txFrom(ctx)

	p, ok := s.proposalsOf(t, segmentID)[courierID]
	if !ok {
		return nil, entities.ErrProposalNotFound
	}
	return &p, nil
}

// ListProposals возвращает актуальные предложения по сегменту по времени подачи.
func (s *Store) ListProposals(ctx context.Context, segmentID string) ([]entities.Proposal, error) {
	t, _ := txFrom(ctx)
	return sortProposals(s.proposalsOf(t, segmentID)), nil
}

// DeleteProposals удаляет все предложения по сегменту и возвращает их.
func (s *Store) DeleteProposals(ctx context.Context, segmentID string) ([]entities.Proposal, error) {
	var deleted []entities.Proposal

	err := s.write(ctx, "", func(t *tx) error {
		deleted = sortProposals(s.proposalsOf(t, segmentID))
		delete(t.proposals, segmentID)
		t.clearedProposals[segmentID] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (s *Store) proposalsOf(t *tx, segmentID string) map[string]entities.Proposal {
	merged := make(map[string]entities.Proposal)

	cleared := false
	if t != nil {
		_, cleared = t.clearedProposals[segmentID]
	}

	if !cleared {
		s.mu.RLock()
		for courierID, p := range s.proposals[segmentID] {
			merged[courierID] = p
		}
		s.mu.RUnlock()
	}

	if t != nil {
		for courierID, p := range t.proposals[segmentID] {
			merged[courierID] = p
		}
	}
	return merged
}

func sortProposals(byCourier map[string]entities.Proposal) []entities.Proposal {
	proposals := make([]entities.Proposal, 0, len(byCourier))
	for _, p := range byCourier {
		proposals = append(proposals, p)
	}

	slices.SortFunc(proposals, func(a, b entities.Proposal) int {
		return cmp.Or(
			a.SubmittedAt.Compare(b.SubmittedAt),
			cmp.Compare(a.CourierID, b.CourierID),
		)
	})
	return proposals
}
