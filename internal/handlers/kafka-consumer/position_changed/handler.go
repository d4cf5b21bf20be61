package position_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"relay/internal/entities"
	"relay/pkg/logger"
)

type Handler struct {
	fleetService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, fleetService Service, timeout time.Duration) *Handler {
	return &Handler{
		fleetService:             fleetService,
		log:                      log.With(logger.NewField("handler", "courier.position.changed")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("position.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("position.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать:
// сообщение не помечено и будет прочитано заново.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event positionChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("position.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("courier_id", event.CourierID),
		logger.NewField("offset", message.Offset),
	)

	position, err := h.fleetService.ReportPosition(ctx, entities.CourierPosition{
		CourierID:    event.CourierID,
		Coordinates:  entities.Coordinates{Lat: event.Lat, Lon: event.Lon},
		Availability: entities.CourierAvailability(event.Availability),
		ReportedAt:   event.ReportedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("position.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, entities.ErrValidation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("position.changed handler rejected position")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("position.changed handler failed to report position")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("availability", position.Availability.String()),
	).Info("position.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
