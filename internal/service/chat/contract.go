//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_test
package chat

import (
	"context"

	"relay/internal/entities"
	"relay/pkg/logger"
)

type Repository interface {
	GetDelivery(ctx context.Context, deliveryID string) (*entities.Delivery, error)
	ListSegments(ctx context.Context, segmentIDs []string) ([]entities.Segment, error)
}

type Publisher interface {
	Publish(event entities.Event)
}

// HistorySink сохраняет историю переписки во внешнем хранилище.
type HistorySink interface {
	Append(ctx context.Context, message entities.ChatMessage) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
