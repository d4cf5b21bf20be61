package entities

import "strings"

type PackageType string

const (
	PackageStandard   PackageType = "standard"
	PackageFragile    PackageType = "fragile"
	PackageUrgent     PackageType = "urgent"
	PackageVolumineux PackageType = "volumineux"
)

func (t PackageType) String() string {
	return string(t)
}

func (t PackageType) IsValid() bool {
	switch t {
	case PackageStandard, PackageFragile, PackageUrgent, PackageVolumineux:
		return true
	default:
		return false
	}
}

const MaxPackageWeightKg = 30.0

type PackageInfo struct {
	Type       PackageType
	WeightKg   float64
	Dimensions string
	Notes      string
}

type UrgencyTier string

const (
	UrgencyNormal  UrgencyTier = "normal"
	UrgencyUrgent  UrgencyTier = "urgent"
	UrgencyExpress UrgencyTier = "express"
)

const DefaultUrgency = UrgencyNormal

func (u UrgencyTier) String() string {
	return string(u)
}

func (u UrgencyTier) IsValid() bool {
	switch u {
	case UrgencyNormal, UrgencyUrgent, UrgencyExpress:
		return true
	default:
		return false
	}
}

type TransportMode string

const (
	OnFoot  TransportMode = "on_foot"
	Bicycle TransportMode = "bicycle"
	Scooter TransportMode = "scooter"
	Car     TransportMode = "car"
)

const DefaultTransportMode = Car

func (m TransportMode) String() string {
	return string(m)
}

func (m TransportMode) IsValid() bool {
	switch m {
	case OnFoot, Bicycle, Scooter, Car:
		return true
	default:
		return false
	}
}

// Validate добавляет в v все нарушенные правила посылки.
func (p PackageInfo) Validate(v *Violations) {
	if !p.Type.IsValid() {
		v.Add("package type %q is not one of standard, fragile, urgent, volumineux", p.Type)
	}
	if p.WeightKg <= 0 {
		v.Add("package weight must be greater than 0")
	}
	if p.WeightKg > MaxPackageWeightKg {
		v.Add("package weight must not exceed %.0f kg", MaxPackageWeightKg)
	}
	if strings.TrimSpace(p.Dimensions) == "" {
		v.Add("package dimensions are required")
	}
}
