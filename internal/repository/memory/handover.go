package memory

import (
	"context"
	"fmt"

	"relay/internal/entities"
)

func (s *Store) CreateHandover(ctx context.Context, handover entities.HandoverEvent) error {
	return s.write(ctx, segmentKey(handover.FromSegmentID), func(t *tx) error {
		if _, err := s.getHandover(t, handover.FromSegmentID); err == nil {
			return fmt.Errorf("memory store: handover from segment %s already exists", handover.FromSegmentID)
		}
		t.handovers[handover.FromSegmentID] = handover
		return nil
	})
}

func (s *Store) GetHandoverByFromSegment(ctx context.Context, fromSegmentID string) (*entities.HandoverEvent, error) {
	t, _ := txFrom(ctx)
	h, err := s.getHandover(t, fromSegmentID)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Store) SaveHandover(ctx context.Context, handover entities.HandoverEvent) error {
	return s.write(ctx, segmentKey(handover.FromSegmentID), func(t *tx) error {
		if _, err := s.getHandover(t, handover.FromSegmentID); err != nil {
			return err
		}
		t.handovers[handover.FromSegmentID] = handover
		return nil
	})
}

func (s *Store) getHandover(t *tx, fromSegmentID string) (entities.HandoverEvent, error) {
	if t != nil {
		if h, ok := t.handovers[fromSegmentID]; ok {
			return h, nil
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.handovers[fromSegmentID]
	if !ok {
		return entities.HandoverEvent{}, entities.ErrHandoverNotFound
	}
	return h, nil
}
