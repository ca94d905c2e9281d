package tracker

import (
	"context"

	"staytrack/internal/domain/stay"
)

// Summary is the high-level view of one property.
type Summary struct {
	Name     string  `json:"name"`
	Rooms    int     `json:"rooms"`
	Earnings float64 `json:"earnings"`
}

// Occupancy reports room counts for a single day.
type Occupancy struct {
	Day       int `json:"day"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
}

// RoomInfo is the detailed view of one room, including its full per-day
// availability vector indexed from day 1.
type RoomInfo struct {
	Number       int     `json:"number"`
	Name         string  `json:"name"`
	Class        string  `json:"class"`
	NightlyPrice float64 `json:"nightly_price"`
	Availability []bool  `json:"availability"`
}

// ReservationInfo is the detailed view of one committed reservation.
type ReservationInfo struct {
	ID           string  `json:"id"`
	Guest        string  `json:"guest"`
	CheckIn      int     `json:"check_in"`
	CheckOut     int     `json:"check_out"`
	RoomName     string  `json:"room_name"`
	RoomClass    string  `json:"room_class"`
	NightlyPrice float64 `json:"nightly_price"`
	Total        float64 `json:"total"`
}

func (s *Service) PropertySummary(ctx context.Context, name string) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[name]
	if !ok {
		return Summary{}, ErrPropertyNotFound
	}
	return Summary{
		Name:     p.Name,
		Rooms:    p.Catalog.Len(),
		Earnings: p.Earnings(),
	}, nil
}

// Earnings sums committed reservation totals for the property.
func (s *Service) Earnings(ctx context.Context, name string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[name]
	if !ok {
		return 0, ErrPropertyNotFound
	}
	return p.Earnings(), nil
}

// DayOccupancy counts available and booked rooms for a calendar day.
func (s *Service) DayOccupancy(ctx context.Context, name string, day int) (Occupancy, error) {
	if !stay.ValidDay(day) {
		return Occupancy{}, ErrInvalidDay
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[name]
	if !ok {
		return Occupancy{}, ErrPropertyNotFound
	}
	return Occupancy{
		Day:       day,
		Available: p.Catalog.AvailableOn(day),
		Booked:    p.Catalog.BookedOn(day),
	}, nil
}

// RoomDetail returns one room's info with its 31-day availability.
func (s *Service) RoomDetail(ctx context.Context, name string, number int) (RoomInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[name]
	if !ok {
		return RoomInfo{}, ErrPropertyNotFound
	}
	room, err := p.Catalog.Room(number)
	if err != nil {
		return RoomInfo{}, err
	}
	free := room.Availability()
	return RoomInfo{
		Number:       number,
		Name:         room.Name,
		Class:        room.Class.String(),
		NightlyPrice: room.Price,
		Availability: free[:],
	}, nil
}

// ReservationDetail returns the first reservation held under the guest
// name.
func (s *Service) ReservationDetail(ctx context.Context, name, guest string) (ReservationInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.properties[name]
	if !ok {
		return ReservationInfo{}, ErrPropertyNotFound
	}
	res, err := p.ReservationByGuest(guest)
	if err != nil {
		return ReservationInfo{}, err
	}
	return ReservationInfo{
		ID:           res.ID,
		Guest:        res.Guest,
		CheckIn:      res.Range.CheckIn,
		CheckOut:     res.Range.CheckOut,
		RoomName:     res.Room.Name,
		RoomClass:    res.Room.Class.String(),
		NightlyPrice: res.Room.Price,
		Total:        res.Total,
	}, nil
}
