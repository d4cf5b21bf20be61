package entities

import "time"

type Proposal struct {
	SegmentID           string
	CourierID           string
	ProposedCost        float64
	ProposedDurationMin int
	SubmittedAt         time.Time
}

// Acceptance - результат закоммиченного принятия предложения.
type Acceptance struct {
	Segment  Segment
	Accepted Proposal
	Rejected []Proposal
}
