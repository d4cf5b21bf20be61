//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=segments_available_get_test
package segments_available_get

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
	ListAvailable(ctx context.Context, position *entities.Coordinates, radiusKm float64) ([]entities.AvailableSegment, error)
}
