//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=position_changed_test
package position_changed

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
	ReportPosition(ctx context.Context, position entities.CourierPosition) (*entities.CourierPosition, error)
}
