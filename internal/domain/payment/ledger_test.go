package payment

import (
	"testing"

	"github.com/gonzalomaurino/canchas-api/internal/domain/booking"
)

func TestOutstanding(t *testing.T) {
	if got := Outstanding(45000, 20000); got != 25000 {
		t.Errorf("Outstanding(45000, 20000) = %v, want 25000", got)
	}
	if got := Outstanding(45000, 45000); got != 0 {
		t.Errorf("Outstanding(45000, 45000) = %v, want 0", got)
	}
	if got := Outstanding(45000, 50000); got != 0 {
		t.Errorf("Outstanding floors at zero, got %v", got)
	}
	if got := Outstanding(45000, 0); got != 45000 {
		t.Errorf("Outstanding(45000, 0) = %v, want 45000", got)
	}
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		total, paid float64
		want        booking.Status
	}{
		{45000, 0, booking.StatusPending},
		{45000, -1, booking.StatusPending},
		{45000, 20000, booking.StatusDeposit},
		{45000, 44999.99, booking.StatusDeposit},
		{45000, 45000, booking.StatusConfirmed},
		{45000, 46000, booking.StatusConfirmed},
	}

	for _, tc := range cases {
		if got := DeriveStatus(tc.total, tc.paid); got != tc.want {
			t.Errorf("DeriveStatus(%v, %v) = %q, want %q",
				tc.total, tc.paid, got, tc.want)
		}
	}
}
