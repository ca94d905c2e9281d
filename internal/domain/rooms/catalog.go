package rooms

import (
	"errors"

	"staytrack/internal/domain/stay"
)

// MaxRooms bounds a single property's catalog.
const MaxRooms = 50

var (
	ErrCapacityExceeded  = errors.New("rooms: catalog is at its 50-room capacity")
	ErrInvalidRoomNumber = errors.New("rooms: room number out of range")
)

// Catalog owns a property's rooms in insertion order. Rooms are addressed
// by 1-based position; removing a room shifts the numbers of those after it.
type Catalog struct {
	rooms []*Room
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) Len() int {
	return len(c.rooms)
}

// Add appends a room of the given class priced from basePrice.
func (c *Catalog) Add(class Class, name string, basePrice float64) (*Room, error) {
	if len(c.rooms) >= MaxRooms {
		return nil, ErrCapacityExceeded
	}
	room := NewRoom(name, class, basePrice)
	c.rooms = append(c.rooms, room)
	return room, nil
}

// Remove drops the room at the given 1-based number. Reservation checks
// belong to the owning property; the catalog only validates the number.
func (c *Catalog) Remove(number int) error {
	if number < 1 || number > len(c.rooms) {
		return ErrInvalidRoomNumber
	}
	c.rooms = append(c.rooms[:number-1], c.rooms[number:]...)
	return nil
}

func (c *Catalog) Room(number int) (*Room, error) {
	if number < 1 || number > len(c.rooms) {
		return nil, ErrInvalidRoomNumber
	}
	return c.rooms[number-1], nil
}

func (c *Catalog) Rooms() []*Room {
	out := make([]*Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// IsFreeForRange reports whether every night of the stay is free.
func (c *Catalog) IsFreeForRange(number int, r stay.DayRange) bool {
	room, err := c.Room(number)
	if err != nil {
		return false
	}
	return roomFreeForRange(room, r)
}

// MarkRange sets every night of the stay to the given availability state.
// Callers apply it only after a reservation has been committed.
func (c *Catalog) MarkRange(number int, r stay.DayRange, free bool) {
	room, err := c.Room(number)
	if err != nil {
		return
	}
	for day := r.CheckIn; day < r.CheckOut; day++ {
		room.setDay(day, free)
	}
}

// FirstFreeOfClass scans the catalog in order and returns the number of
// the first room of the requested class whose full range is free. The
// scan visits every room but only attempts class matches; first-fit, not
// best-price.
func (c *Catalog) FirstFreeOfClass(class Class, r stay.DayRange) (int, bool) {
	for i, room := range c.rooms {
		if room.Class != class {
			continue
		}
		if roomFreeForRange(room, r) {
			return i + 1, true
		}
	}
	return 0, false
}

// AvailableOn counts rooms free on the given day.
func (c *Catalog) AvailableOn(day int) int {
	n := 0
	for _, room := range c.rooms {
		if room.FreeOn(day) {
			n++
		}
	}
	return n
}

// BookedOn counts rooms occupied on the given day.
func (c *Catalog) BookedOn(day int) int {
	return len(c.rooms) - c.AvailableOn(day)
}

func roomFreeForRange(room *Room, r stay.DayRange) bool {
	for day := r.CheckIn; day < r.CheckOut; day++ {
		if !room.FreeOn(day) {
			return false
		}
	}
	return true
}
