package entities

import "time"

type CourierAvailability string

const (
	CourierAvailable CourierAvailability = "available"
	CourierBusy      CourierAvailability = "busy"
	CourierOffline   CourierAvailability = "offline"
)

func (a CourierAvailability) String() string {
	return string(a)
}

func (a CourierAvailability) IsValid() bool {
	switch a {
	case CourierAvailable, CourierBusy, CourierOffline:
		return true
	default:
		return false
	}
}

// CourierPosition - текущее положение курьера от провайдера позиций.
type CourierPosition struct {
	CourierID    string
	Coordinates  Coordinates
	Availability CourierAvailability
	ReportedAt   time.Time
}

// StatusChange - запрошенная смена статуса сегмента.
type StatusChange struct {
	SegmentID string
	ActorID   string
	Status    SegmentStatus
	Location  *Location
	Reason    string
}
