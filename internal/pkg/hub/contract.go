package hub

import (
	"relay/internal/entities"
	"relay/pkg/logger"
)

type hubLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Tap наблюдает все события хаба. Observe не должен блокироваться.
type Tap interface {
	Observe(event entities.Event)
}
