package booking

import (
	"staytrack/internal/domain/discount"
	"staytrack/internal/domain/pricing"
	"staytrack/internal/domain/rates"
	"staytrack/internal/domain/rooms"
	"staytrack/internal/domain/stay"
)

// Outcome is the terminal state of a booking simulation, tagged with the
// discount that was applied on success.
type Outcome int

const (
	OutcomeEmployeeDiscount Outcome = iota + 1
	OutcomeStay4Get1
	OutcomePayday
	OutcomeNoDiscount
	OutcomeNoAvailability
	OutcomeInvalidDates
)

// Booked reports whether the simulation committed a reservation.
func (o Outcome) Booked() bool {
	switch o {
	case OutcomeEmployeeDiscount, OutcomeStay4Get1, OutcomePayday, OutcomeNoDiscount:
		return true
	default:
		return false
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeEmployeeDiscount:
		return "BOOKED_EMPLOYEE_DISCOUNT"
	case OutcomeStay4Get1:
		return "BOOKED_STAY4_GET1"
	case OutcomePayday:
		return "BOOKED_PAYDAY"
	case OutcomeNoDiscount:
		return "BOOKED_NO_DISCOUNT"
	case OutcomeNoAvailability:
		return "NO_AVAILABILITY"
	case OutcomeInvalidDates:
		return "INVALID_DATES"
	default:
		return "UNKNOWN"
	}
}

func outcomeFor(applied discount.Outcome) Outcome {
	switch applied {
	case discount.EmployeeApplied:
		return OutcomeEmployeeDiscount
	case discount.Stay4Get1Applied:
		return OutcomeStay4Get1
	case discount.PaydayApplied:
		return OutcomePayday
	default:
		return OutcomeNoDiscount
	}
}

// Simulator runs a booking attempt against one property's catalog and
// rate calendar: validate dates, locate a free room of the class by
// first-fit, create the reservation, block its nights, then price and
// discount. The availability mutation deliberately precedes pricing;
// once a room is found the commit is irreversible.
type Simulator struct {
	Catalog *rooms.Catalog
	Rates   *rates.Calendar
	NewID   func() string
}

// Simulate attempts a booking. The returned reservation is non-nil only
// when the outcome is a booked one; the caller appends it to the
// property's reservation list.
func (s Simulator) Simulate(guest string, checkIn, checkOut int, class rooms.Class, code string) (*Reservation, Outcome) {
	r, err := stay.NewDayRange(checkIn, checkOut)
	if err != nil {
		return nil, OutcomeInvalidDates
	}

	number, ok := s.Catalog.FirstFreeOfClass(class, r)
	if !ok {
		return nil, OutcomeNoAvailability
	}
	room, err := s.Catalog.Room(number)
	if err != nil {
		return nil, OutcomeNoAvailability
	}

	res := &Reservation{
		ID:    s.newID(),
		Guest: guest,
		Range: r,
		Room:  room,
	}
	s.Catalog.MarkRange(number, r, false)

	basePrice := room.Price
	total := pricing.StayCost(r, basePrice, s.Rates)
	nightRate := pricing.FirstOverrideNightRate(r, basePrice, s.Rates)

	final, applied := discount.Apply(code, total, nightRate, r)
	res.Total = final

	return res, outcomeFor(applied)
}

func (s Simulator) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return ""
}
