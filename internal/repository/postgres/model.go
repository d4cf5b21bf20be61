package postgres

import "time"

type DeliveryDB struct {
	ID                  string
	ClientID            string
	SegmentIDs          []string
	PackageType         string
	PackageWeightKg     float64
	PackageDimensions   string
	PackageNotes        string
	Urgency             string
	SpecialInstructions string
	PreferredTimeSlots  []TimeSlotDB
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type TimeSlotDB struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type SegmentDB struct {
	ID                string
	DeliveryID        string
	Index             int
	StartAddress      string
	StartLat          float64
	StartLon          float64
	EndAddress        string
	EndLat            float64
	EndLon            float64
	DistanceKm        float64
	DurationMin       int
	EstimatedCost     float64
	Status            string
	CourierID         *string
	ReplacesSegmentID *string
	LastActivityAt    time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ProposalDB struct {
	SegmentID           string
	CourierID           string
	ProposedCost        float64
	ProposedDurationMin int
	SubmittedAt         time.Time
}

type HandoverDB struct {
	ID                  string
	DeliveryID          string
	FromSegmentID       string
	ToSegmentID         string
	LocationAddress     string
	LocationLat         float64
	LocationLon         float64
	VerificationCode    *string
	ConfirmedBySender   bool
	ConfirmedByReceiver bool
	CreatedAt           time.Time
	CompletedAt         *time.Time
}

type CourierPositionDB struct {
	CourierID    string
	Lat          float64
	Lon          float64
	Availability string
	ReportedAt   time.Time
}
