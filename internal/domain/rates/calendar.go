package rates

import "staytrack/internal/domain/stay"

// Calendar holds per-day rate overrides for one property. Overrides are
// keyed by day-of-month and last for the property's lifetime; setting a
// day again replaces the previous override (last write wins).
type Calendar struct {
	overridden [stay.LastDay]bool
	rates      [stay.LastDay]float64
}

func NewCalendar() *Calendar {
	return &Calendar{}
}

// SetOverride records a percentage multiplier for a day, e.g. 110 for
// 1.10x. A day outside 1..31 is silently ignored, matching the observed
// behavior of the system this replaces.
func (c *Calendar) SetOverride(day int, percent float64) {
	if !stay.ValidDay(day) {
		return
	}
	c.overridden[day-1] = true
	c.rates[day-1] = percent / 100
}

func (c *Calendar) HasOverride(day int) bool {
	return stay.ValidDay(day) && c.overridden[day-1]
}

// OverrideRate returns the stored fraction for an overridden day and 1.0
// for any other day.
func (c *Calendar) OverrideRate(day int) float64 {
	if c.HasOverride(day) {
		return c.rates[day-1]
	}
	return 1.0
}

// OverriddenDays lists the days carrying an override, ascending.
func (c *Calendar) OverriddenDays() []int {
	var days []int
	for i, on := range c.overridden {
		if on {
			days = append(days, i+1)
		}
	}
	return days
}
