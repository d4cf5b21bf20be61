package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"relay/internal/entities"
)

func (s *Store) GetSegment(ctx context.Context, segmentID string) (*entities.Segment, error) {
	t, _ := txFrom(ctx)
	seg, err := s.getSegment(t, segmentID)
	if err != nil {
		return nil, err
	}
	return &seg, nil
}

// GetSegmentForUpdate блокирует сегмент до конца объемлющей транзакции
// и возвращает его последнее закоммиченное (или подготовленное) состояние.
func (s *Store) GetSegmentForUpdate(ctx context.Context, segmentID string) (*entities.Segment, error) {
	t, ok := txFrom(ctx)
	if !ok {
		return nil, errTxRequired
	}

	t.lock(s.locks, segmentKey(segmentID))

	seg, err := s.getSegment(t, segmentID)
	if err != nil {
		return nil, err
	}
	return &seg, nil
}

// ListSegments возвращает сегменты в порядке ids.
func (s *Store) ListSegments(ctx context.Context, segmentIDs []string) ([]entities.Segment, error) {
	t, _ := txFrom(ctx)

	segments := make([]entities.Segment, 0, len(segmentIDs))
	for _, id := range segmentIDs {
		seg, err := s.getSegment(t, id)
		if err != nil {
			return nil, fmt.Errorf("segment %s: %w", id, err)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// ListOpenSegments возвращает открытые сегменты по времени создания, затем по индексу.
func (s *Store) ListOpenSegments(ctx context.Context) ([]entities.Segment, error) {
	segments := s.filterSegments(ctx, func(seg *entities.Segment) bool {
		return seg.Status == entities.SegmentOpen
	})

	slices.SortFunc(segments, func(a, b entities.Segment) int {
		return cmp.Or(
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.Index, b.Index),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return segments, nil
}

func (s *Store) ListSegmentsByCourier(
	ctx context.Context,
	courierID string,
	statuses []entities.SegmentStatus,
) ([]entities.Segment, error) {
	segments := s.filterSegments(ctx, func(seg *entities.Segment) bool {
		return seg.IsAssignedTo(courierID) && slices.Contains(statuses, seg.Status)
	})

	sortByDelivery(segments)
	return segments, nil
}

// ListSegmentsIdleSince возвращает сегменты в статусе status,
// последняя активность которых раньше before.
func (s *Store) ListSegmentsIdleSince(
	ctx context.Context,
	status entities.SegmentStatus,
	before time.Time,
) ([]entities.Segment, error) {
	segments := s.filterSegments(ctx, func(seg *entities.Segment) bool {
		return seg.Status == status && seg.LastActivityAt.Before(before)
	})

	sortByDelivery(segments)
	return segments, nil
}

func (s *Store) CreateSegment(ctx context.Context, segment entities.Segment) error {
	return s.write(ctx, segmentKey(segment.ID), func(t *tx) error {
		if _, err := s.getSegment(t, segment.ID); err == nil {
			return fmt.Errorf("memory store: segment %s already exists", segment.ID)
		}
		t.segments[segment.ID] = segment
		return nil
	})
}

func (s *Store) SaveSegment(ctx context.Context, segment entities.Segment) error {
	return s.write(ctx, segmentKey(segment.ID), func(t *tx) error {
		if _, err := s.getSegment(t, segment.ID); err != nil {
			return err
		}
		t.segments[segment.ID] = segment
		return nil
	})
}

func (s *Store) getSegment(t *tx, segmentID string) (entities.Segment, error) {
	if t != nil {
		if seg, ok := t.segments[segmentID]; ok {
			return seg, nil
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	seg, ok := s.segments[segmentID]
	if !ok {
		return entities.Segment{}, entities.ErrSegmentNotFound
	}
	return seg, nil
}

func (s *Store) filterSegments(ctx context.Context, keep func(seg *entities.Segment) bool) []entities.Segment {
	t, _ := txFrom(ctx)

	s.mu.RLock()
	view := make(map[string]entities.Segment, len(s.segments))
	for id, seg := range s.segments {
		view[id] = seg
	}
	s.mu.RUnlock()

	if t != nil {
		for id, seg := range t.segments {
			view[id] = seg
		}
	}

	segments := make([]entities.Segment, 0)
	for _, seg := range view {
		if keep(&seg) {
			segments = append(segments, seg)
		}
	}
	return segments
}

func sortByDelivery(segments []entities.Segment) {
	slices.SortFunc(segments, func(a, b entities.Segment) int {
		return cmp.Or(
			cmp.Compare(a.DeliveryID, b.DeliveryID),
			cmp.Compare(a.Index, b.Index),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
}
