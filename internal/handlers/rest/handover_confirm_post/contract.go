//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=handover_confirm_post_test
package handover_confirm_post

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
	ConfirmPackageHandover(ctx context.Context, confirmation entities.HandoverConfirmation) (*entities.HandoverResult, error)
}
