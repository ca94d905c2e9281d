package stay

import "errors"

// Billing happens against a fixed 31-day calendar; days are plain
// day-of-month integers with no month or year attached.
const (
	FirstDay = 1
	LastDay  = 31
)

var ErrInvalidRange = errors.New("stay: check-in must precede check-out within days 1..31")

// DayRange represents a half-open stay interval [CheckIn, CheckOut).
// The check-out day itself is neither charged nor blocked.
type DayRange struct {
	CheckIn  int
	CheckOut int
}

func NewDayRange(checkIn, checkOut int) (DayRange, error) {
	r := DayRange{CheckIn: checkIn, CheckOut: checkOut}
	if err := r.Validate(); err != nil {
		return DayRange{}, err
	}
	return r, nil
}

func (r DayRange) Validate() error {
	if r.CheckIn >= r.CheckOut || r.CheckIn < FirstDay || r.CheckOut > LastDay {
		return ErrInvalidRange
	}
	return nil
}

// Nights is the number of charged nights in the range.
func (r DayRange) Nights() int {
	return r.CheckOut - r.CheckIn
}

// Contains reports whether day is a charged night of the stay.
func (r DayRange) Contains(day int) bool {
	return r.CheckIn <= day && day < r.CheckOut
}

func ValidDay(day int) bool {
	return day >= FirstDay && day <= LastDay
}
