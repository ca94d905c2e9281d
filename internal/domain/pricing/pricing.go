// Package pricing computes stay costs over the half-open interval
// [checkIn, checkOut). The total is the sum of two calculators: one for
// nights without a rate override and one for nights with an override at
// its recorded multiplier. Every charged night is counted by exactly one
// of the two.
package pricing

import (
	"staytrack/internal/domain/rates"
	"staytrack/internal/domain/stay"
)

// NormalStayCost sums the base nightly price for every night of the stay
// that carries no calendar override.
func NormalStayCost(r stay.DayRange, basePrice float64, cal *rates.Calendar) float64 {
	var total float64
	for day := r.CheckIn; day < r.CheckOut; day++ {
		if !cal.HasOverride(day) {
			total += basePrice
		}
	}
	return total
}

// OverriddenStayCost sums basePrice times the recorded multiplier for
// every overridden night of the stay. Nights without an override
// contribute nothing here; NormalStayCost charges them.
func OverriddenStayCost(r stay.DayRange, basePrice float64, cal *rates.Calendar) float64 {
	var total float64
	for day := r.CheckIn; day < r.CheckOut; day++ {
		if cal.HasOverride(day) {
			total += basePrice * cal.OverrideRate(day)
		}
	}
	return total
}

// StayCost is the combined stay total, the contract consumed by the
// discount rules downstream.
func StayCost(r stay.DayRange, basePrice float64, cal *rates.Calendar) float64 {
	return NormalStayCost(r, basePrice, cal) + OverriddenStayCost(r, basePrice, cal)
}

// FirstOverrideNightRate scans the stay in ascending day order and
// returns the priced rate of the first overridden night, or the plain
// base price when the stay touches no override. It values the single
// free night granted by the stay-four-get-one promotion.
func FirstOverrideNightRate(r stay.DayRange, basePrice float64, cal *rates.Calendar) float64 {
	for day := r.CheckIn; day < r.CheckOut; day++ {
		if cal.HasOverride(day) {
			return basePrice * cal.OverrideRate(day)
		}
	}
	return basePrice
}
