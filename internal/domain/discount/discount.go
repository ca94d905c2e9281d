// Package discount selects and applies at most one promotional rule to a
// priced stay. Rules are tried in a fixed priority order; each is gated
// by both the caller-supplied code and a structural condition on the
// stay. The first satisfied rule wins. A code whose condition fails does
// NOT fall through to a later rule: the stay is charged in full.
package discount

import "staytrack/internal/domain/stay"

// Recognized discount codes.
const (
	CodeEmployee  = "I_WORK_HERE"
	CodeStay4Get1 = "STAY4_GET1"
	CodePayday    = "PAYDAY"
)

const (
	employeeRate = 0.90
	paydayRate   = 0.93
)

// Paydays on the billing calendar; the payday rule needs the stay to
// charge at least one of them.
const (
	midMonthPayday = 15
	endMonthPayday = 30
)

// Outcome tags which rule, if any, was applied.
type Outcome int

const (
	NoneApplied Outcome = iota
	EmployeeApplied
	Stay4Get1Applied
	PaydayApplied
)

func (o Outcome) String() string {
	switch o {
	case EmployeeApplied:
		return "I_WORK_HERE"
	case Stay4Get1Applied:
		return "STAY4_GET1"
	case PaydayApplied:
		return "PAYDAY"
	default:
		return "NONE"
	}
}

// Apply resolves the discount for a stay. nightRate is the price of the
// single night forgiven by the stay-four-get-one rule.
func Apply(code string, total, nightRate float64, r stay.DayRange) (float64, Outcome) {
	switch {
	case code == CodeEmployee:
		return total * employeeRate, EmployeeApplied
	case code == CodeStay4Get1 && stay4Get1Eligible(r):
		return total - nightRate, Stay4Get1Applied
	case code == CodePayday && chargesPayday(r):
		return total * paydayRate, PaydayApplied
	default:
		return total, NoneApplied
	}
}

// The stay-four-get-one promotion wants an inclusive span of at least
// five days, i.e. (checkOut - checkIn) + 1 >= 5.
func stay4Get1Eligible(r stay.DayRange) bool {
	return r.Nights()+1 >= 5
}

func chargesPayday(r stay.DayRange) bool {
	return r.Contains(midMonthPayday) || r.Contains(endMonthPayday)
}
