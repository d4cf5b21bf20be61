//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_optimize_post_test
package route_optimize_post

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
	CreateOptimizedRoute(ctx context.Context, req entities.RouteRequest) (*entities.OptimizedRoute, error)
}
