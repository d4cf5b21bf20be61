package segment_price

import (
	"relay/internal/entities"
	"relay/pkg/geo"
)

const (
	DefaultDistanceRate = 2.5 // €/km
	DefaultTimeRate     = 0.3 // €/min
	DefaultMinPrice     = 5.0
)

type Rates struct {
	DistanceRate float64
	TimeRate     float64
	MinPrice     float64
}

func DefaultRates() Rates {
	return Rates{
		DistanceRate: DefaultDistanceRate,
		TimeRate:     DefaultTimeRate,
		MinPrice:     DefaultMinPrice,
	}
}

type SegmentPriceFactory struct {
	rates Rates
}

func New(rates Rates) *SegmentPriceFactory {
	return &SegmentPriceFactory{rates: rates}
}

// CalculateCost считает цену сегмента маршрута из segmentCount сегментов.
// Все множители применяются к одной базе с нижней границей; результат
// округляется до центов и не опускается ниже минимальной цены.
func (f *SegmentPriceFactory) CalculateCost(
	distanceKm float64,
	durationMin int,
	packageType entities.PackageType,
	urgency entities.UrgencyTier,
	segmentCount int,
) float64 {
	base := distanceKm*f.rates.DistanceRate + float64(durationMin)*f.rates.TimeRate
	if base < f.rates.MinPrice {
		base = f.rates.MinPrice
	}

	cost := base *
		packageMultiplier(packageType) *
		urgencyMultiplier(urgency) *
		complexityMultiplier(segmentCount)

	cost = geo.Round(cost, 2)
	if cost < f.rates.MinPrice {
		cost = f.rates.MinPrice
	}
	return cost
}

func (f *SegmentPriceFactory) MinPrice() float64 {
	return f.rates.MinPrice
}

func packageMultiplier(packageType entities.PackageType) float64 {
	switch packageType {
	case entities.PackageFragile:
		return 1.2
	case entities.PackageUrgent:
		return 1.4
	case entities.PackageVolumineux:
		return 1.3
	default:
		return 1.0
	}
}

func urgencyMultiplier(urgency entities.UrgencyTier) float64 {
	switch urgency {
	case entities.UrgencyUrgent:
		return 1.2
	case entities.UrgencyExpress:
		return 1.5
	default:
		return 1.0
	}
}

// надбавка за координацию эстафеты длиннее двух плеч
func complexityMultiplier(segmentCount int) float64 {
	if segmentCount <= 2 {
		return 1.0
	}
	return 1.1 + 0.05*float64(segmentCount-2)
}
