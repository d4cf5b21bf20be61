package status

import (
	"context"
	"errors"
	"fmt"

	"relay/internal/entities"
)

type Service struct {
	segments      SegmentReader
	statusFactory HandlerFactory
}

func New(segments SegmentReader, statusFactory HandlerFactory) *Service {
	return &Service{
		segments:      segments,
		statusFactory: statusFactory,
	}
}

// UpdateSegmentStatus применяет запрошенный курьером или клиентом статус и
// возвращает сегмент в состоянии после перехода.
func (s *Service) UpdateSegmentStatus(ctx context.Context, change entities.StatusChange) (*entities.Segment, error) {
	var v entities.Violations
	if change.SegmentID == "" {
		v.Add("segment_id is required")
	}
	if change.ActorID == "" {
		v.Add("actor_id is required")
	}
	if !change.Status.IsValid() {
		v.Add("unknown status %q", change.Status)
	}
	err := v.Err()
	if err != nil {
		return nil, err
	}

	segment, err := s.segments.GetSegment(ctx, change.SegmentID)
	if err != nil {
		return nil, fmt.Errorf("get segment: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(change.Status)
	if err != nil {
		// open и assigned выставляет только маркетплейс
		if errors.Is(err, ErrUndefinedStatus) {
			return nil, &entities.TransitionError{
				SegmentID: segment.ID,
				From:      segment.Status,
				To:        change.Status,
				Reason:    "status is set by the marketplace",
			}
		}
		return nil, err
	}

	if err := executeFn(ctx, change); err != nil {
		return nil, err
	}

	updated, err := s.segments.GetSegment(ctx, change.SegmentID)
	if err != nil {
		return nil, fmt.Errorf("get updated segment: %w", err)
	}
	return updated, nil
}
