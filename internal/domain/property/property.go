package property

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staytrack/internal/domain/booking"
	"staytrack/internal/domain/profit"
	"staytrack/internal/domain/rates"
	"staytrack/internal/domain/rooms"
	"staytrack/internal/domain/shared/events"
	"staytrack/internal/domain/stay"
)

// DefaultBasePrice is the seeded nightly price for Standard rooms.
const DefaultBasePrice = 1299.00

// MinNightlyPrice is the floor enforced on bulk price updates.
const MinNightlyPrice = 100.00

var (
	ErrInvalidRoomCount    = errors.New("property: room count must be between 1 and 50")
	ErrRoomHasReservations = errors.New("property: room has existing reservations")
	ErrHasReservations     = errors.New("property: reservations exist, prices are frozen")
	ErrPriceTooLow         = errors.New("property: nightly price must be at least 100")
)

// Property aggregates one property's rooms, rate calendar and committed
// reservations. It provides no internal locking; the owning registry
// serializes access.
type Property struct {
	Name    string
	Catalog *rooms.Catalog
	Rates   *rates.Calendar

	reservations []*booking.Reservation
	events.EventRecorder
}

// New creates a property seeded with roomCount rooms named "Room N",
// cycling Standard, Deluxe, Executive by position at the default base
// price. Every room starts fully available.
func New(name string, roomCount int) (*Property, error) {
	if roomCount < 1 || roomCount > rooms.MaxRooms {
		return nil, ErrInvalidRoomCount
	}
	p := &Property{
		Name:    name,
		Catalog: rooms.NewCatalog(),
		Rates:   rates.NewCalendar(),
	}
	for i := 0; i < roomCount; i++ {
		_, _ = p.Catalog.Add(rooms.ClassForPosition(i), roomName(i), DefaultBasePrice)
	}
	p.Record(PropertyCreated{
		BaseEvent: newBase("property.created", name),
		Rooms:     roomCount,
	})
	return p, nil
}

// BasePrice is the price of the first room in the catalog, which seeds
// newly added rooms. Room 1 is Standard unless earlier rooms have been
// removed; the quirk is kept from the observed behavior.
func (p *Property) BasePrice() float64 {
	room, err := p.Catalog.Room(1)
	if err != nil {
		return DefaultBasePrice
	}
	return room.Price
}

// AddRooms appends up to count rooms, stopping at the capacity bound,
// and returns how many were actually added. Appended rooms continue the
// positional class cycle.
func (p *Property) AddRooms(count int) int {
	current := p.Catalog.Len()
	toAdd := min(count, rooms.MaxRooms-current)
	if toAdd <= 0 {
		return 0
	}
	base := p.BasePrice()
	for i := 0; i < toAdd; i++ {
		index := current + i
		_, _ = p.Catalog.Add(rooms.ClassForPosition(index), roomName(index), base)
	}
	p.Record(RoomsAdded{
		BaseEvent: newBase("property.rooms_added", p.Name),
		Count:     toAdd,
		Total:     p.Catalog.Len(),
	})
	return toAdd
}

// RemoveRoom drops the room at the 1-based number unless a reservation
// still references it. Later rooms shift down by one number.
func (p *Property) RemoveRoom(number int) error {
	room, err := p.Catalog.Room(number)
	if err != nil {
		return err
	}
	for _, res := range p.reservations {
		if res.Room == room {
			return ErrRoomHasReservations
		}
	}
	if err := p.Catalog.Remove(number); err != nil {
		return err
	}
	p.Record(RoomRemoved{
		BaseEvent: newBase("property.room_removed", p.Name),
		Number:    number,
	})
	return nil
}

// UpdateBasePrice reprices every room from a new base, reapplying each
// class multiplier. Blocked while any reservation exists.
func (p *Property) UpdateBasePrice(newPrice float64) error {
	if newPrice < MinNightlyPrice {
		return ErrPriceTooLow
	}
	if len(p.reservations) > 0 {
		return ErrHasReservations
	}
	for _, room := range p.Catalog.Rooms() {
		room.Price = newPrice * room.Class.Multiplier()
	}
	p.Record(PricesUpdated{
		BaseEvent: newBase("property.prices_updated", p.Name),
		BasePrice: newPrice,
	})
	return nil
}

// SetRateOverride records a percentage multiplier for a day of the
// billing calendar. Out-of-range days are ignored without error.
func (p *Property) SetRateOverride(day int, percent float64) {
	if !stay.ValidDay(day) {
		return
	}
	p.Rates.SetOverride(day, percent)
	p.Record(RateOverrideSet{
		BaseEvent:  newBase("property.rate_override_set", p.Name),
		Day:        day,
		Percentage: percent,
	})
}

// SimulateBooking runs the booking state machine against this property
// and commits the reservation on success. The room's nights are blocked
// before pricing runs; a committed booking is never rolled back.
func (p *Property) SimulateBooking(guest string, checkIn, checkOut int, class rooms.Class, code string) (*booking.Reservation, booking.Outcome) {
	sim := booking.Simulator{
		Catalog: p.Catalog,
		Rates:   p.Rates,
		NewID:   uuid.NewString,
	}
	res, outcome := sim.Simulate(guest, checkIn, checkOut, class, code)
	if !outcome.Booked() {
		return nil, outcome
	}
	p.reservations = append(p.reservations, res)
	p.Record(ReservationCommitted{
		BaseEvent:     newBase("property.reservation_committed", p.Name),
		ReservationID: res.ID,
		Guest:         res.Guest,
		CheckIn:       res.Range.CheckIn,
		CheckOut:      res.Range.CheckOut,
		Room:          res.Room.Name,
		Total:         res.Total,
		Discount:      outcome.String(),
	})
	return res, outcome
}

// RemoveReservation deletes the first reservation held under the guest
// name. The room's blocked nights stay blocked; removal is bookkeeping
// only.
func (p *Property) RemoveReservation(guest string) error {
	for i, res := range p.reservations {
		if res.Guest == guest {
			p.reservations = append(p.reservations[:i], p.reservations[i+1:]...)
			p.Record(ReservationRemoved{
				BaseEvent:     newBase("property.reservation_removed", p.Name),
				ReservationID: res.ID,
				Guest:         guest,
			})
			return nil
		}
	}
	return booking.ErrReservationNotFound
}

// ReservationByGuest returns the first reservation held under the guest
// name.
func (p *Property) ReservationByGuest(guest string) (*booking.Reservation, error) {
	for _, res := range p.reservations {
		if res.Guest == guest {
			return res, nil
		}
	}
	return nil, booking.ErrReservationNotFound
}

func (p *Property) Reservations() []*booking.Reservation {
	out := make([]*booking.Reservation, len(p.reservations))
	copy(out, p.reservations)
	return out
}

// Earnings is the sum of all committed reservation totals.
func (p *Property) Earnings() float64 {
	return profit.Total(p.reservations)
}

func (p *Property) Rename(newName string) {
	old := p.Name
	p.Name = newName
	p.Record(PropertyRenamed{
		BaseEvent: newBase("property.renamed", newName),
		OldName:   old,
	})
}

func roomName(index int) string {
	return fmt.Sprintf("Room %d", index+1)
}

func newBase(name, aggregate string) events.BaseEvent {
	return events.BaseEvent{Name: name, Aggregate: aggregate, Time: time.Now().UTC()}
}
