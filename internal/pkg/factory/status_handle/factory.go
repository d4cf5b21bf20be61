package status_handle

import (
	"context"
	"fmt"

	"relay/internal/entities"
	"relay/internal/service/status"
)

type StatusHandlerFactory struct {
	handoffService status.HandoffService
}

func NewStatusHandlerFactory(handoffService status.HandoffService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		handoffService: handoffService,
	}
}

func (f *StatusHandlerFactory) GetHandler(segmentStatus entities.SegmentStatus) (status.ExecuteFn, error) {
	switch segmentStatus {
	case entities.SegmentInProgress:
		return f.inProgressHandler, nil
	case entities.SegmentAwaitingHandover:
		return f.awaitingHandoverHandler, nil
	case entities.SegmentCompleted:
		return f.completedHandler, nil
	case entities.SegmentCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", status.ErrUndefinedStatus, segmentStatus)
	}
}

func (f *StatusHandlerFactory) inProgressHandler(ctx context.Context, change entities.StatusChange) error {
	_, err := f.handoffService.ConfirmPickup(ctx, change.SegmentID, change.ActorID, change.Location)
	if err != nil {
		return fmt.Errorf("pickup segment %s: %w", change.SegmentID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) awaitingHandoverHandler(ctx context.Context, change entities.StatusChange) error {
	_, err := f.handoffService.RequestHandover(ctx, change.SegmentID, change.ActorID, change.Location)
	if err != nil {
		return fmt.Errorf("request handover for segment %s: %w", change.SegmentID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, change entities.StatusChange) error {
	_, err := f.handoffService.ConfirmDelivery(ctx, change.SegmentID, change.ActorID, change.Location)
	if err != nil {
		return fmt.Errorf("complete segment %s: %w", change.SegmentID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, change entities.StatusChange) error {
	_, err := f.handoffService.CancelSegment(ctx, change.SegmentID, change.ActorID, change.Reason)
	if err != nil {
		return fmt.Errorf("cancel segment %s: %w", change.SegmentID, err)
	}
	return nil
}
