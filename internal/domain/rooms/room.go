package rooms

import "staytrack/internal/domain/stay"

// Class is the room tier. Each tier carries a fixed multiplier applied to
// the base nightly price once, at room creation or on a price update.
type Class int

const (
	Standard Class = iota + 1
	Deluxe
	Executive
)

var classMultipliers = map[Class]float64{
	Standard:  1.00,
	Deluxe:    1.20,
	Executive: 1.35,
}

// Multiplier returns the tier's price factor, 1.0 for unknown tiers.
func (c Class) Multiplier() float64 {
	if m, ok := classMultipliers[c]; ok {
		return m
	}
	return 1.0
}

func (c Class) Valid() bool {
	_, ok := classMultipliers[c]
	return ok
}

func (c Class) String() string {
	switch c {
	case Standard:
		return "Standard"
	case Deluxe:
		return "Deluxe"
	case Executive:
		return "Executive"
	default:
		return "Unknown"
	}
}

// ClassForPosition cycles Standard, Deluxe, Executive by zero-based
// catalog position, so seeded and appended rooms share one ordering.
func ClassForPosition(index int) Class {
	return Class(index%3 + 1)
}

// Room is a single bookable unit with one availability slot per calendar
// day. A freshly created room is free on every day.
type Room struct {
	Name  string
	Class Class
	Price float64

	free [stay.LastDay]bool
}

func NewRoom(name string, class Class, basePrice float64) *Room {
	r := &Room{Name: name, Class: class, Price: basePrice * class.Multiplier()}
	for i := range r.free {
		r.free[i] = true
	}
	return r
}

// FreeOn reports availability for a day in 1..31.
func (r *Room) FreeOn(day int) bool {
	return r.free[day-1]
}

func (r *Room) setDay(day int, free bool) {
	r.free[day-1] = free
}

// Availability returns the full per-day vector indexed from day 1.
func (r *Room) Availability() [stay.LastDay]bool {
	return r.free
}
