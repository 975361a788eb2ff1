package domain

import "testing"

func TestToCentsRoundsToNearestCent(t *testing.T) {
	testCases := []struct {
		amount float64
		want   int64
	}{
		{amount: 0, want: 0},
		{amount: 100.50, want: 10050},
		{amount: 0.01, want: 1},
		{amount: 2000.75, want: 200075},
		// 19.99 is not exactly representable in binary; rounding must absorb it.
		{amount: 19.99, want: 1999},
		{amount: 1_000_000, want: 100_000_000},
	}

	for _, tc := range testCases {
		if got := ToCents(tc.amount); got != tc.want {
			t.Errorf("ToCents(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestFromCentsInvertsToCents(t *testing.T) {
	amounts := []float64{0.01, 1, 100.50, 750.50, 2000.75, 999999.99}
	for _, amount := range amounts {
		if got := FromCents(ToCents(amount)); got != amount {
			t.Errorf("FromCents(ToCents(%v)) = %v", amount, got)
		}
	}
}

func TestHasAtMostTwoDecimals(t *testing.T) {
	valid := []float64{0.01, 1, 100.50, 999999.99, 1_000_000}
	for _, amount := range valid {
		if !HasAtMostTwoDecimals(amount) {
			t.Errorf("expected %v to be accepted", amount)
		}
	}

	invalid := []float64{100.555, 0.001, 10.123}
	for _, amount := range invalid {
		if HasAtMostTwoDecimals(amount) {
			t.Errorf("expected %v to be rejected", amount)
		}
	}
}
