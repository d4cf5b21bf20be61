//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_coordination_post_test
package delivery_coordination_post

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
	InitiateCoordination(ctx context.Context, req entities.CoordinationRequest) (*entities.HandoverEvent, error)
}
