package property

import "staytrack/internal/domain/shared/events"

type PropertyCreated struct {
	events.BaseEvent
	Rooms int `json:"rooms"`
}

type PropertyRenamed struct {
	events.BaseEvent
	OldName string `json:"old_name"`
}

type RoomsAdded struct {
	events.BaseEvent
	Count int `json:"count"`
	Total int `json:"total"`
}

type RoomRemoved struct {
	events.BaseEvent
	Number int `json:"number"`
}

type PricesUpdated struct {
	events.BaseEvent
	BasePrice float64 `json:"base_price"`
}

type RateOverrideSet struct {
	events.BaseEvent
	Day        int     `json:"day"`
	Percentage float64 `json:"percentage"`
}

type ReservationCommitted struct {
	events.BaseEvent
	ReservationID string  `json:"reservation_id"`
	Guest         string  `json:"guest"`
	CheckIn       int     `json:"check_in"`
	CheckOut      int     `json:"check_out"`
	Room          string  `json:"room"`
	Total         float64 `json:"total"`
	Discount      string  `json:"discount"`
}

type ReservationRemoved struct {
	events.BaseEvent
	ReservationID string `json:"reservation_id"`
	Guest         string `json:"guest"`
}
