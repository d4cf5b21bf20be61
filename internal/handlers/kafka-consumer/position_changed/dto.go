package position_changed

import "time"

type positionChangedEvent struct {
	CourierID    string    `json:"courier_id"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	Availability string    `json:"availability"`
	ReportedAt   time.Time `json:"reported_at"`
}
