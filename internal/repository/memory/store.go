// Package memory - хранилище relay в памяти процесса.
// Блокировки строк - мьютексы по ключу, которые держатся до конца транзакции,
// с теми же гарантиями check-and-set, что и SELECT ... FOR UPDATE
// в postgres.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"relay/internal/entities"
	"relay/pkg/keylock"
)

var errTxRequired = errors.New("memory store: row lock requires a transaction")

type Store struct {
	locks *keylock.Locker

	mu         sync.RWMutex
	deliveries map[string]entities.Delivery
	segments   map[string]entities.Segment
	proposals  map[string]map[string]entities.Proposal
	handovers  map[string]entities.HandoverEvent // keyed by from-segment id
	positions  map[string]entities.CourierPosition
}

func New() *Store {
	return &Store{
		locks:      keylock.New(),
		deliveries: make(map[string]entities.Delivery),
		segments:   make(map[string]entities.Segment),
		proposals:  make(map[string]map[string]entities.Proposal),
		handovers:  make(map[string]entities.HandoverEvent),
		positions:  make(map[string]entities.CourierPosition),
	}
}

func (s *Store) commit(t *tx) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, d := range t.deliveries {
		s.deliveries[id] = d
	}
	for id, seg := range t.segments {
		s.segments[id] = seg
	}
	for segmentID := range t.clearedProposals {
		delete(s.proposals, segmentID)
	}
	for segmentID, byCourier := range t.proposals {
		if len(byCourier) == 0 {
			continue
		}
		if s.proposals[segmentID] == nil {
			s.proposals[segmentID] = make(map[string]entities.Proposal)
		}
		for courierID, p := range byCourier {
			s.proposals[segmentID][courierID] = p
		}
	}
	for fromID, h := range t.handovers {
		s.handovers[fromID] = h
	}
}

// write выполняет fn в транзакции вызывающего, а вне её -
// как автокоммитную транзакцию под блокировкой key.
func (s *Store) write(ctx context.Context, key string, fn func(t *tx) error) error {
	if t, ok := txFrom(ctx); ok {
		if key != "" {
			t.lock(s.locks, key)
		}
		return fn(t)
	}

	t := newTx()
	defer t.release()
	if key != "" {
		t.lock(s.locks, key)
	}

	err := fn(t)
	if err != nil {
		return err
	}
	s.commit(t)
	return nil
}

func segmentKey(id string) string {
	return "segment:" + id
}

func deliveryKey(id string) string {
	return "delivery:" + id
}

func cloneDelivery(d entities.Delivery) entities.Delivery {
	d.SegmentIDs = slices.Clone(d.SegmentIDs)
	d.PreferredTimeSlots = slices.Clone(d.PreferredTimeSlots)
	return d
}
