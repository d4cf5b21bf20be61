package entities

import "time"

type DeliveryStatus string

const (
	DeliveryOpen      DeliveryStatus = "open"
	DeliveryAssigning DeliveryStatus = "assigning"
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryCompleted DeliveryStatus = "completed"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

type TimeSlot struct {
	From time.Time
	To   time.Time
}

type Delivery struct {
	ID                  string
	ClientID            string
	SegmentIDs          []string
	Package             PackageInfo
	Urgency             UrgencyTier
	SpecialInstructions string
	PreferredTimeSlots  []TimeSlot
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DeliveryView - доставка вместе с текущими сегментами,
// для клиентов, перечитывающих состояние.
type DeliveryView struct {
	Delivery Delivery
	Segments []Segment
	Status   DeliveryStatus
}

// DeriveDeliveryStatus вычисляет статус доставки по текущим сегментам
// (отменённые к этому моменту уже заменены).
func DeriveDeliveryStatus(segments []Segment) DeliveryStatus {
	if len(segments) == 0 {
		return DeliveryOpen
	}

	var open, assigned, moving, completed int
	for i := range segments {
		switch segments[i].Status {
		case SegmentOpen, SegmentCancelled:
			open++
		case SegmentAssigned:
			assigned++
		case SegmentInProgress, SegmentAwaitingHandover:
			moving++
		case SegmentCompleted:
			completed++
		}
	}

	switch {
	case completed == len(segments):
		return DeliveryCompleted
	case moving > 0 || completed > 0:
		return DeliveryInTransit
	case open == len(segments):
		return DeliveryOpen
	case open > 0:
		return DeliveryAssigning
	default:
		return DeliveryAssigned
	}
}

// DeliveryDraft - вход новой эстафетной доставки из плеч маршрута.
type DeliveryDraft struct {
	ClientID            string
	Legs                []RouteSegment
	Package             PackageInfo
	Urgency             UrgencyTier
	SpecialInstructions string
	PreferredTimeSlots  []TimeSlot
}

// IsParticipant сообщает, входит ли userID в канал координации доставки:
// клиент или курьер незавершённого сегмента. Канал завершённой доставки
// закрыт, в нём участников нет.
func (v *DeliveryView) IsParticipant(userID string) bool {
	if userID == "" {
		return false
	}
	if DeriveDeliveryStatus(v.Segments) == DeliveryCompleted {
		return false
	}
	if v.Delivery.ClientID == userID {
		return true
	}
	for i := range v.Segments {
		if !v.Segments[i].Status.IsTerminal() && v.Segments[i].IsAssignedTo(userID) {
			return true
		}
	}
	return false
}

// ActiveCouriers возвращает курьеров незавершённых сегментов без повторов.
func (v *DeliveryView) ActiveCouriers() map[string]struct{} {
	couriers := make(map[string]struct{})
	for i := range v.Segments {
		seg := &v.Segments[i]
		if seg.CourierID != nil && !seg.Status.IsTerminal() {
			couriers[*seg.CourierID] = struct{}{}
		}
	}
	return couriers
}
