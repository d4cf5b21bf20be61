package entities

import "time"

type SegmentStatus string

const (
	SegmentOpen             SegmentStatus = "open"
	SegmentAssigned         SegmentStatus = "assigned"
	SegmentInProgress       SegmentStatus = "in_progress"
	SegmentAwaitingHandover SegmentStatus = "awaiting_handover"
	SegmentCompleted        SegmentStatus = "completed"
	SegmentCancelled        SegmentStatus = "cancelled"
)

func (s SegmentStatus) String() string {
	return string(s)
}

func (s SegmentStatus) IsValid() bool {
	_, ok := segmentStatusRank[s]
	return ok
}

func (s SegmentStatus) IsTerminal() bool {
	return s == SegmentCompleted || s == SegmentCancelled
}

// Rank - порядок статуса в прямом жизненном цикле. У cancelled ранга нет.
func (s SegmentStatus) Rank() int {
	return segmentStatusRank[s]
}

var segmentStatusRank = map[SegmentStatus]int{
	SegmentOpen:             1,
	SegmentAssigned:         2,
	SegmentInProgress:       3,
	SegmentAwaitingHandover: 4,
	SegmentCompleted:        5,
	SegmentCancelled:        0,
}

// CanTransition сообщает, двигает ли from -> to цикл вперёд.
// Пропуск awaiting_handover (in_progress -> completed) здесь разрешён,
// применимость к конкретному сегменту решает машина состояний.
func CanTransition(from, to SegmentStatus) bool {
	if from.IsTerminal() || from == to {
		return false
	}
	if to == SegmentCancelled {
		return true
	}
	switch from {
	case SegmentOpen:
		return to == SegmentAssigned
	case SegmentAssigned:
		return to == SegmentInProgress
	case SegmentInProgress:
		return to == SegmentAwaitingHandover || to == SegmentCompleted
	case SegmentAwaitingHandover:
		return to == SegmentCompleted
	default:
		return false
	}
}

type Segment struct {
	ID                string
	DeliveryID        string
	Index             int
	Start             Location
	End               Location
	DistanceKm        float64
	DurationMin       int
	EstimatedCost     float64
	Status            SegmentStatus
	CourierID         *string
	ReplacesSegmentID *string
	LastActivityAt    time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (s *Segment) IsAssignedTo(courierID string) bool {
	return s.CourierID != nil && *s.CourierID == courierID
}

// AvailableSegment - открытый сегмент с данными для конкретного курьера.
type AvailableSegment struct {
	Segment    Segment
	DistanceKm *float64
}

// Cancellation - отменённый сегмент и открытая замена на его месте.
type Cancellation struct {
	Cancelled   Segment
	Replacement Segment
}
