package entities

import "time"

type HandoverEvent struct {
	ID                  string
	DeliveryID          string
	FromSegmentID       string
	ToSegmentID         string
	Location            Location
	VerificationCode    *string
	ConfirmedBySender   bool
	ConfirmedByReceiver bool
	CreatedAt           time.Time
	CompletedAt         *time.Time
}

func (h *HandoverEvent) IsComplete() bool {
	return h.ConfirmedBySender && h.ConfirmedByReceiver
}

// HandoverConfirmation - подтверждение передачи одной из сторон.
type HandoverConfirmation struct {
	DeliveryID       string
	FromSegmentID    string
	ToSegmentID      string
	ConfirmerID      string
	Location         *Location
	VerificationCode *string
}

// HandoverResult - состояние передачи после подтверждения и, когда она
// завершена, продвинутые сегменты.
type HandoverResult struct {
	Handover    HandoverEvent
	FromSegment Segment
	ToSegment   Segment
}

// Redacted возвращает копию без кода подтверждения: код получает только клиент.
func (h HandoverEvent) Redacted() HandoverEvent {
	h.VerificationCode = nil
	return h
}

// CoordinationRequest начинает передачу посылки между соседними сегментами.
type CoordinationRequest struct {
	DeliveryID       string
	CurrentSegmentID string
	NextSegmentID    string
	ActorID          string
	Location         *Location
}
