// Package profit reports earnings over committed reservations.
package profit

import "staytrack/internal/domain/booking"

// Total folds the settled totals of all committed reservations.
func Total(reservations []*booking.Reservation) float64 {
	var earnings float64
	for _, res := range reservations {
		earnings += res.Total
	}
	return earnings
}
