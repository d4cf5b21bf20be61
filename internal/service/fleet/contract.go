//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fleet_test
package fleet

import (
	"context"

	"relay/internal/entities"
	"relay/pkg/logger"
)

type Repository interface {
	SaveCourierPosition(ctx context.Context, position entities.CourierPosition) error
	GetCourierPosition(ctx context.Context, courierID string) (*entities.CourierPosition, error)
}

// ProximityHandler начинает передачу, когда курьер подъехал к концу сегмента.
type ProximityHandler interface {
	HandleProximity(ctx context.Context, courierID string, position entities.Coordinates) ([]entities.HandoverEvent, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
