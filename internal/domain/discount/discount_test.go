package discount

import (
	"math"
	"testing"

	"staytrack/internal/domain/stay"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApply_RuleTable(t *testing.T) {
	cases := []struct {
		name        string
		code        string
		total       float64
		nightRate   float64
		checkIn     int
		checkOut    int
		wantPrice   float64
		wantOutcome Outcome
	}{
		{
			name: "employee code takes ten percent off",
			code: "I_WORK_HERE", total: 6495.00, nightRate: 1299.00,
			checkIn: 1, checkOut: 6,
			wantPrice: 5845.50, wantOutcome: EmployeeApplied,
		},
		{
			name: "stay4get1 forgives one night on a five day span",
			code: "STAY4_GET1", total: 6495.00, nightRate: 1299.00,
			checkIn: 1, checkOut: 6,
			wantPrice: 5196.00, wantOutcome: Stay4Get1Applied,
		},
		{
			name: "stay4get1 on a four day span qualifies",
			code: "STAY4_GET1", total: 5196.00, nightRate: 1299.00,
			checkIn: 1, checkOut: 5,
			wantPrice: 3897.00, wantOutcome: Stay4Get1Applied,
		},
		{
			name: "stay4get1 on a short stay falls through to none, not payday",
			code: "STAY4_GET1", total: 3897.00, nightRate: 1299.00,
			checkIn: 14, checkOut: 17, // straddles day 15, but the code is not PAYDAY
			wantPrice: 3897.00, wantOutcome: NoneApplied,
		},
		{
			name: "payday applies when the stay charges day 15",
			code: "PAYDAY", total: 12990.00, nightRate: 1299.00,
			checkIn: 10, checkOut: 20,
			wantPrice: 12080.70, wantOutcome: PaydayApplied,
		},
		{
			name: "payday applies when the stay charges day 30",
			code: "PAYDAY", total: 2598.00, nightRate: 1299.00,
			checkIn: 29, checkOut: 31,
			wantPrice: 2416.14, wantOutcome: PaydayApplied,
		},
		{
			name: "payday rejected when day 15 is only the checkout",
			code: "PAYDAY", total: 6495.00, nightRate: 1299.00,
			checkIn: 10, checkOut: 15,
			wantPrice: 6495.00, wantOutcome: NoneApplied,
		},
		{
			name: "unknown code leaves the total unchanged",
			code: "HALF_OFF_PLEASE", total: 6495.00, nightRate: 1299.00,
			checkIn: 1, checkOut: 6,
			wantPrice: 6495.00, wantOutcome: NoneApplied,
		},
		{
			name: "empty code leaves the total unchanged",
			code: "", total: 6495.00, nightRate: 1299.00,
			checkIn: 1, checkOut: 6,
			wantPrice: 6495.00, wantOutcome: NoneApplied,
		},
		{
			name: "employee code ignores stay shape entirely",
			code: "I_WORK_HERE", total: 1299.00, nightRate: 1299.00,
			checkIn: 1, checkOut: 2,
			wantPrice: 1169.10, wantOutcome: EmployeeApplied,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := stay.DayRange{CheckIn: tc.checkIn, CheckOut: tc.checkOut}
			got, outcome := Apply(tc.code, tc.total, tc.nightRate, r)
			if outcome != tc.wantOutcome {
				t.Fatalf("outcome: got %v, want %v", outcome, tc.wantOutcome)
			}
			if !approx(got, tc.wantPrice) {
				t.Fatalf("price: got %.2f, want %.2f", got, tc.wantPrice)
			}
		})
	}
}

func TestApply_PriorityOrder(t *testing.T) {
	// A five-night stay over day 15 is structurally eligible for both
	// STAY4_GET1 and PAYDAY; the supplied code alone decides.
	r := stay.DayRange{CheckIn: 12, CheckOut: 17}
	if _, outcome := Apply(CodeStay4Get1, 6495, 1299, r); outcome != Stay4Get1Applied {
		t.Fatalf("got %v, want Stay4Get1Applied", outcome)
	}
	if _, outcome := Apply(CodePayday, 6495, 1299, r); outcome != PaydayApplied {
		t.Fatalf("got %v, want PaydayApplied", outcome)
	}
}
