//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=segment_accept_post_test
package segment_accept_post

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
	AcceptProposal(ctx context.Context, segmentID string, courierID string) (*entities.Acceptance, error)
}
