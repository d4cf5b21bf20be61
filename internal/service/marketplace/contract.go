//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=marketplace_test
package marketplace

import (
	"context"

	"relay/internal/entities"
	"relay/pkg/logger"
)

type Repository interface {
	CreateDelivery(ctx context.Context, delivery entities.Delivery, segments []entities.Segment) error
	GetDelivery(ctx context.Context, deliveryID string) (*entities.Delivery, error)
	GetDeliveryForUpdate(ctx context.Context, deliveryID string) (*entities.Delivery, error)
	UpdateDeliverySegments(ctx context.Context, deliveryID string, segmentIDs []string) error

	GetSegment(ctx context.Context, segmentID string) (*entities.Segment, error)
	GetSegmentForUpdate(ctx context.Context, segmentID string) (*entities.Segment, error)
	ListSegments(ctx context.Context, segmentIDs []string) ([]entities.Segment, error)
	ListOpenSegments(ctx context.Context) ([]entities.Segment, error)
	CreateSegment(ctx context.Context, segment entities.Segment) error
	SaveSegment(ctx context.Context, segment entities.Segment) error

	SaveProposal(ctx context.Context, proposal entities.Proposal) error
	GetProposal(ctx context.Context, segmentID, courierID string) (*entities.Proposal, error)
	DeleteProposals(ctx context.Context, segmentID string) ([]entities.Proposal, error)

	ListAvailableCouriers(ctx context.Context) ([]entities.CourierPosition, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(event entities.Event)
	Join(deliveryID, userID string)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
