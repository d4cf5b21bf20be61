package routing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"relay/internal/entities"
	"relay/pkg/geo"
)

// roadFactor переводит расстояние по прямой в примерное расстояние по дорогам.
const roadFactor = 1.3

type Service struct {
	geocoder        Geocoder
	priceFactory    PriceFactory
	durationFactory DurationFactory
}

func New(geocoder Geocoder, priceFactory PriceFactory, durationFactory DurationFactory) *Service {
	return &Service{
		geocoder:        geocoder,
		priceFactory:    priceFactory,
		durationFactory: durationFactory,
	}
}

// CreateOptimizedRoute геокодирует, упорядочивает и оценивает точки маршрута.
// Первый и последний адрес остаются на месте.
func (s *Service) CreateOptimizedRoute(ctx context.Context, req entities.RouteRequest) (*entities.OptimizedRoute, error) {
	if req.TransportMode == "" {
		req.TransportMode = entities.DefaultTransportMode
	}
	if req.Urgency == "" {
		req.Urgency = entities.DefaultUrgency
	}

	err := validateRouteRequest(req)
	if err != nil {
		return nil, err
	}

	addresses := make([]string, len(req.Addresses))
	for i, address := range req.Addresses {
		addresses[i] = strings.TrimSpace(address)
	}

	points, err := s.resolveAll(ctx, addresses)
	if err != nil {
		return nil, err
	}

	order := nearestNeighbourOrder(points)

	locations := make([]entities.Location, len(order))
	optimized := make([]string, len(order))
	for i, idx := range order {
		locations[i] = entities.Location{Address: addresses[idx], Coordinates: points[idx]}
		optimized[i] = addresses[idx]
	}

	segmentCount := len(locations) - 1
	segments := make([]entities.RouteSegment, 0, segmentCount)
	summary := entities.RouteSummary{SegmentCount: segmentCount}

	for i := 0; i < segmentCount; i++ {
		start, end := locations[i], locations[i+1]

		distance := geo.Round(start.Coordinates.DistanceKm(end.Coordinates)*roadFactor, 2)
		duration := s.durationFactory.CalculateDuration(req.TransportMode, distance)
		cost := s.priceFactory.CalculateCost(distance, duration, req.Package.Type, req.Urgency, segmentCount)

		segments = append(segments, entities.RouteSegment{
			Index:         i,
			Start:         start,
			End:           end,
			DistanceKm:    distance,
			DurationMin:   duration,
			EstimatedCost: cost,
		})

		summary.TotalDistanceKm += distance
		summary.TotalDurationMin += duration
		summary.TotalEstimatedCost += cost
	}

	summary.TotalDistanceKm = geo.Round(summary.TotalDistanceKm, 2)
	summary.TotalEstimatedCost = geo.Round(summary.TotalEstimatedCost, 2)

	return &entities.OptimizedRoute{
		Addresses: optimized,
		Segments:  segments,
		Summary:   summary,
	}, nil
}

func (s *Service) resolveAll(ctx context.Context, addresses []string) ([]entities.Coordinates, error) {
	points := make([]entities.Coordinates, len(addresses))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, address := range addresses {
		group.Go(func() error {
			point, err := s.geocoder.Resolve(groupCtx, address)
			if err != nil {
				var geocodeErr *entities.GeocodeError
				if errors.As(err, &geocodeErr) {
					return err
				}
				return &entities.GeocodeError{Address: address, Err: err}
			}
			if !point.IsValid() {
				return &entities.GeocodeError{Address: address, Err: fmt.Errorf("coordinates out of range: %v", point)}
			}
			points[i] = point
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("resolve addresses: %w", err)
	}
	return points, nil
}

// nearestNeighbourOrder фиксирует первую и последнюю точку, а промежуточные
// обходит жадно по близости. При равенстве сохраняется входной порядок.
func nearestNeighbourOrder(points []entities.Coordinates) []int {
	n := len(points)
	order := make([]int, 0, n)
	order = append(order, 0)
	if n <= 2 {
		for i := 1; i < n; i++ {
			order = append(order, i)
		}
		return order
	}

	remaining := make([]int, 0, n-2)
	for i := 1; i < n-1; i++ {
		remaining = append(remaining, i)
	}

	current := 0
	for len(remaining) > 0 {
		best := 0
		bestDistance := points[current].DistanceKm(points[remaining[0]])
		for j := 1; j < len(remaining); j++ {
			d := points[current].DistanceKm(points[remaining[j]])
			if d < bestDistance {
				best, bestDistance = j, d
			}
		}

		current = remaining[best]
		order = append(order, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return append(order, n-1)
}
