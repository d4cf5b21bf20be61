package entities

// RouteRequest - вход движка сегментации.
type RouteRequest struct {
	Addresses     []string
	TransportMode TransportMode
	Package       PackageInfo
	Urgency       UrgencyTier
}

// RouteSegment - оценённое плечо оптимизированного маршрута.
type RouteSegment struct {
	Index         int
	Start         Location
	End           Location
	DistanceKm    float64
	DurationMin   int
	EstimatedCost float64
}

type RouteSummary struct {
	TotalDistanceKm    float64
	TotalDurationMin   int
	TotalEstimatedCost float64
	SegmentCount       int
}

type OptimizedRoute struct {
	Addresses []string
	Segments  []RouteSegment
	Summary   RouteSummary
}
