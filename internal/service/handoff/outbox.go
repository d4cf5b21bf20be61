package handoff

import (
	"context"

	"relay/internal/entities"
)

type membership struct {
	deliveryID string
	userID     string
}

// outbox копит побочные эффекты транзакции; они применяются только после коммита.
type outbox struct {
	events      []entities.Event
	transitions []entities.SegmentStatus
	leaves      []membership
	closed      []string
	advertise   []entities.Segment
}

func (o *outbox) publish(eventType entities.EventType, channelID, deliveryID string, payload any) {
	o.events = append(o.events, entities.NewEvent(eventType, channelID, deliveryID, payload))
}

// statusUpdated уходит в канал доставки и личный канал курьера сегмента.
func (o *outbox) statusUpdated(segment entities.Segment, previous entities.SegmentStatus, location *entities.Location) {
	update := entities.SegmentStatusUpdate{
		Segment:        segment,
		PreviousStatus: previous,
		Location:       location,
	}

	o.publish(entities.EventSegmentStatusUpdated, entities.DeliveryChannel(segment.DeliveryID), segment.DeliveryID, update)
	if segment.CourierID != nil {
		o.publish(entities.EventSegmentStatusUpdated, entities.UserChannel(*segment.CourierID), segment.DeliveryID, update)
	}
}

func (s *Service) flush(ctx context.Context, o *outbox) {
	for _, to := range o.transitions {
		TransitionsTotal.WithLabelValues(to.String()).Inc()
	}
	for _, event := range o.events {
		s.publisher.Publish(event)
	}
	for _, m := range o.leaves {
		s.publisher.Leave(m.deliveryID, m.userID)
	}
	for _, deliveryID := range o.closed {
		s.publisher.CloseChannel(deliveryID)
	}
	if len(o.advertise) > 0 {
		s.marketplace.Advertise(ctx, o.advertise...)
	}
}
