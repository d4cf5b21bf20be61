package segment_duration

import (
	"math"

	"relay/internal/entities"
)

// средняя скорость от двери до двери, км/ч
const (
	onFootSpeed  = 5.0
	bicycleSpeed = 15.0
	scooterSpeed = 25.0
	carSpeed     = 40.0
)

type SegmentDurationFactory struct{}

func New() *SegmentDurationFactory {
	return &SegmentDurationFactory{}
}

// CalculateDuration оценивает время на distanceKm в целых минутах.
func (f *SegmentDurationFactory) CalculateDuration(mode entities.TransportMode, distanceKm float64) int {
	if distanceKm <= 0 {
		return 0
	}

	var speed float64
	switch mode {
	case entities.OnFoot:
		speed = onFootSpeed
	case entities.Bicycle:
		speed = bicycleSpeed
	case entities.Scooter:
		speed = scooterSpeed
	case entities.Car:
		speed = carSpeed
	default:
		speed = carSpeed
	}

	minutes := math.Ceil(distanceKm/speed*60 - 1e-9)
	if minutes < 1 {
		minutes = 1
	}
	return int(minutes)
}
