package memory

import (
	"context"
	"fmt"
	"time"

	"relay/internal/entities"
)

func (s *Store) CreateDelivery(ctx context.Context, delivery entities.Delivery, segments []entities.Segment) error {
	return s.write(ctx, deliveryKey(delivery.ID), func(t *tx) error {
		if _, err := s.getDelivery(t, delivery.ID); err == nil {
			return fmt.Errorf("memory store: delivery %s already exists", delivery.ID)
		}

		for _, seg := range segments {
			if _, err := s.getSegment(t, seg.ID); err == nil {
				return fmt.Errorf("memory store: segment %s already exists", seg.ID)
			}
			t.segments[seg.ID] = seg
		}
		t.deliveries[delivery.ID] = cloneDelivery(delivery)
		return nil
	})
}

func (s *Store) GetDelivery(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	t, _ := txFrom(ctx)
	d, err := s.getDelivery(t, deliveryID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDeliveryForUpdate блокирует доставку до конца транзакции.
func (s *Store) GetDeliveryForUpdate(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	t, ok := txFrom(ctx)
	if !ok {
		return nil, errTxRequired
	}

	t.lock(s.locks, deliveryKey(deliveryID))

	d, err := s.getDelivery(t, deliveryID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDeliverySegments заменяет упорядоченный список текущих сегментов.
func (s *Store) UpdateDeliverySegments(ctx context.Context, deliveryID string, segmentIDs []string) error {
	return s.write(ctx, deliveryKey(deliveryID), func(t *tx) error {
		d, err := s.getDelivery(t, deliveryID)
		if err != nil {
			return err
		}
		d.SegmentIDs = append([]string(nil), segmentIDs...)
		d.UpdatedAt = time.Now().UTC()
		t.deliveries[deliveryID] = d
		return nil
	})
}

func (s *Store) getDelivery(t *tx, deliveryID string) (entities.Delivery, error) {
	if t != nil {
		if d, ok := t.deliveries[deliveryID]; ok {
			return cloneDelivery(d), nil
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.deliveries[deliveryID]
	if !ok {
		return entities.Delivery{}, entities.ErrDeliveryNotFound
	}
	return cloneDelivery(d), nil
}
