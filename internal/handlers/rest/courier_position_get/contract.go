//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_position_get_test
package courier_position_get

import (
	"context"

	"relay/internal/entities"
	"relay/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetPosition(ctx context.Context, courierID string) (*entities.CourierPosition, error)
}
