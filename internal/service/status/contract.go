//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_test
package status

import (
	"context"

	"relay/internal/entities"
)

type SegmentReader interface {
	GetSegment(ctx context.Context, segmentID string) (*entities.Segment, error)
}

type HandoffService interface {
	ConfirmPickup(ctx context.Context, segmentID, courierID string, location *entities.Location) (*entities.Segment, error)
	RequestHandover(ctx context.Context, segmentID, courierID string, location *entities.Location) (*entities.HandoverEvent, error)
	ConfirmDelivery(ctx context.Context, segmentID, courierID string, location *entities.Location) (*entities.Segment, error)
	CancelSegment(ctx context.Context, segmentID, actorID, reason string) (*entities.Cancellation, error)
}

type (
	ExecuteFn      func(ctx context.Context, change entities.StatusChange) error
	HandlerFactory interface {
		GetHandler(segmentStatus entities.SegmentStatus) (ExecuteFn, error)
	}
)
