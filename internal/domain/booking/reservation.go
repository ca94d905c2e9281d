package booking

import (
	"errors"

	"staytrack/internal/domain/rooms"
	"staytrack/internal/domain/stay"
)

var ErrReservationNotFound = errors.New("booking: reservation not found")

// Reservation is a committed stay. It shares the room with the catalog
// rather than owning it; the room outlives the reservation. Total is
// settled during the booking simulation and never changes afterwards.
type Reservation struct {
	ID    string
	Guest string
	Range stay.DayRange
	Room  *rooms.Room
	Total float64
}
