//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routing_test
package routing

import (
	"context"

	"relay/internal/entities"
)

type Geocoder interface {
	Resolve(ctx context.Context, address string) (entities.Coordinates, error)
}

type PriceFactory interface {
	CalculateCost(distanceKm float64, durationMin int, packageType entities.PackageType, urgency entities.UrgencyTier, segmentCount int) float64
}

type DurationFactory interface {
	CalculateDuration(mode entities.TransportMode, distanceKm float64) int
}
