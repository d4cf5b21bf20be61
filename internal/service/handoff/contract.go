//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=handoff_test
package handoff

import (
	"context"
	"time"

	"relay/internal/entities"
	"relay/pkg/logger"
)

type Repository interface {
	GetDelivery(ctx context.Context, deliveryID string) (*entities.Delivery, error)

	GetSegment(ctx context.Context, segmentID string) (*entities.Segment, error)
	GetSegmentForUpdate(ctx context.Context, segmentID string) (*entities.Segment, error)
	ListSegments(ctx context.Context, segmentIDs []string) ([]entities.Segment, error)
	ListSegmentsByCourier(ctx context.Context, courierID string, statuses []entities.SegmentStatus) ([]entities.Segment, error)
	ListSegmentsIdleSince(ctx context.Context, status entities.SegmentStatus, before time.Time) ([]entities.Segment, error)
	SaveSegment(ctx context.Context, segment entities.Segment) error

	CreateHandover(ctx context.Context, handover entities.HandoverEvent) error
	GetHandoverByFromSegment(ctx context.Context, fromSegmentID string) (*entities.HandoverEvent, error)
	SaveHandover(ctx context.Context, handover entities.HandoverEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Marketplace переоткрывает отменённые сегменты и рассылает замены.
type Marketplace interface {
	Reopen(ctx context.Context, cancelled entities.Segment) (*entities.Segment, error)
	Advertise(ctx context.Context, segments ...entities.Segment)
}

type Publisher interface {
	Publish(event entities.Event)
	Leave(deliveryID, userID string)
	CloseChannel(deliveryID string)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
