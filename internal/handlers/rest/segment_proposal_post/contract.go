//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=segment_proposal_post_test
package segment_proposal_post

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
	Propose(ctx context.Context, proposal entities.Proposal) (*entities.Proposal, error)
}
