package domain

import "math"

// DefaultListLimit is the row cap applied to listings when the caller does not give one.
const DefaultListLimit = 10

// MinorUnitsPerUnit converts whole currency units to cents.
const MinorUnitsPerUnit = 100

// MaxCostPerNight is the largest cents value the cost_per_night column holds.
const MaxCostPerNight = math.MaxInt32

// MaxPricePerNight is the largest whole-unit price whose cents still fit
// MaxCostPerNight.
const MaxPricePerNight = MaxCostPerNight / MinorUnitsPerUnit

// NormalizeLimit returns limit, or DefaultListLimit when limit is not positive.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

// ToMinorUnits converts a whole-unit amount to minor units. Callers bound
// units to [0, MaxPricePerNight] first; see PropertyFilter.Validate.
func ToMinorUnits(units int64) int64 {
	return units * MinorUnitsPerUnit
}
