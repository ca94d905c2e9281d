// Package tracker is the top-level property registry: every operation of
// the reservation tracker enters through it. The registry is the single
// exclusively-locked unit; aggregates below it carry no locking of their
// own.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	appoutbox "staytrack/internal/app/outbox"
	"staytrack/internal/domain/booking"
	"staytrack/internal/domain/property"
	"staytrack/internal/domain/rooms"
)

var (
	ErrPropertyNotFound = errors.New("tracker: property not found")
	ErrNameTaken        = errors.New("tracker: property name already exists")
	ErrInvalidDay       = errors.New("tracker: day must be between 1 and 31")
)

// Service owns the property registry and forwards committed domain
// events to the outbox.
type Service struct {
	mu         sync.RWMutex
	properties map[string]*property.Property
	names      []string // insertion order

	Logger  *slog.Logger
	Outbox  appoutbox.Outbox
	Encoder appoutbox.EventEncoder
}

func NewService(logger *slog.Logger, box appoutbox.Outbox) *Service {
	return &Service{
		properties: make(map[string]*property.Property),
		Logger:     logger,
		Outbox:     box,
	}
}

// CreateProperty registers a property seeded with roomCount rooms.
// Name collisions are detected case-insensitively.
func (s *Service) CreateProperty(ctx context.Context, name string, roomCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(name) {
		return ErrNameTaken
	}
	p, err := property.New(name, roomCount)
	if err != nil {
		return err
	}
	s.properties[name] = p
	s.names = append(s.names, name)
	s.publish(ctx, p)
	return nil
}

// RenameProperty changes a property's registry key. Renaming onto any
// existing name, including the property's own, is rejected.
func (s *Service) RenameProperty(ctx context.Context, oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(newName) {
		return ErrNameTaken
	}
	p, ok := s.properties[oldName]
	if !ok {
		return ErrPropertyNotFound
	}
	delete(s.properties, oldName)
	p.Rename(newName)
	s.properties[newName] = p
	for i, n := range s.names {
		if n == oldName {
			s.names[i] = newName
			break
		}
	}
	s.publish(ctx, p)
	return nil
}

// RemoveProperty unregisters a property and everything it owns.
func (s *Service) RemoveProperty(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.properties[name]; !ok {
		return ErrPropertyNotFound
	}
	delete(s.properties, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return nil
}

// ListProperties returns registered names in creation order.
func (s *Service) ListProperties(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// AddRooms appends up to count rooms and reports how many fit under the
// capacity bound.
func (s *Service) AddRooms(ctx context.Context, name string, count int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[name]
	if !ok {
		return 0, ErrPropertyNotFound
	}
	added := p.AddRooms(count)
	s.publish(ctx, p)
	return added, nil
}

func (s *Service) RemoveRoom(ctx context.Context, name string, number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[name]
	if !ok {
		return ErrPropertyNotFound
	}
	if err := p.RemoveRoom(number); err != nil {
		return err
	}
	s.publish(ctx, p)
	return nil
}

// UpdateAllRoomPrices reprices the whole catalog from a new base,
// reapplying the class multipliers.
func (s *Service) UpdateAllRoomPrices(ctx context.Context, name string, newPrice float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[name]
	if !ok {
		return ErrPropertyNotFound
	}
	if err := p.UpdateBasePrice(newPrice); err != nil {
		return err
	}
	s.publish(ctx, p)
	return nil
}

// SetRateOverride records a day-specific percentage multiplier on the
// property's rate calendar.
func (s *Service) SetRateOverride(ctx context.Context, name string, day int, percentage float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[name]
	if !ok {
		return ErrPropertyNotFound
	}
	p.SetRateOverride(day, percentage)
	s.publish(ctx, p)
	return nil
}

// SimulateBooking runs the booking state machine on the named property.
func (s *Service) SimulateBooking(ctx context.Context, name, guest string, checkIn, checkOut int, class rooms.Class, code string) (booking.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[name]
	if !ok {
		return 0, ErrPropertyNotFound
	}
	res, outcome := p.SimulateBooking(guest, checkIn, checkOut, class, code)
	if res != nil && s.Logger != nil {
		s.Logger.Info("reservation committed",
			"property", name,
			"guest", guest,
			"room", res.Room.Name,
			"total", res.Total,
			"outcome", outcome.String(),
		)
	}
	s.publish(ctx, p)
	return outcome, nil
}

// RemoveReservation deletes a guest's reservation without restoring the
// room's blocked nights.
func (s *Service) RemoveReservation(ctx context.Context, name, guest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.properties[name]
	if !ok {
		return ErrPropertyNotFound
	}
	if err := p.RemoveReservation(guest); err != nil {
		return err
	}
	s.publish(ctx, p)
	return nil
}

// nameTaken matches case-insensitively so "Plaza" and "plaza" cannot
// coexist.
func (s *Service) nameTaken(name string) bool {
	for existing := range s.properties {
		if strings.EqualFold(existing, name) {
			return true
		}
	}
	return false
}

// publish drains the aggregate's pending events into the outbox. Event
// delivery is best-effort: the mutation has already committed, so a full
// outbox only logs.
func (s *Service) publish(ctx context.Context, p *property.Property) {
	pending := p.PendingEvents()
	p.ClearEvents()
	if err := appoutbox.RecordDomainEvents(ctx, s.Outbox, s.Encoder, pending); err != nil && s.Logger != nil {
		s.Logger.Warn("outbox enqueue failed", "property", p.Name, "error", err)
	}
}
