package booking

import (
	"testing"

	"github.com/gonzalomaurino/canchas-api/internal/httperr"
	"github.com/gonzalomaurino/canchas-api/internal/models"
)

func TestParseStatusNormalizes(t *testing.T) {
	cases := map[string]Status{
		"pendiente":    StatusPending,
		"Pendiente":    StatusPending,
		"  SEÑA  ":     StatusDeposit,
		"CONFIRMADA":   StatusConfirmed,
		"cancelada":    StatusCancelled,
		"  Cancelada ": StatusCancelled,
	}

	for raw, want := range cases {
		got, err := ParseStatus(raw)
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", raw, err)
		}
		if got != want {
			t.Errorf("ParseStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "reservada", "pending", "confirmed"} {
		if _, err := ParseStatus(raw); !httperr.IsKind(err, httperr.KindValidation) {
			t.Errorf("ParseStatus(%q) = %v, want validation error", raw, err)
		}
	}
}

func TestProtected(t *testing.T) {
	if !StatusConfirmed.Protected() || !StatusDeposit.Protected() {
		t.Error("confirmada and seña must be protected")
	}
	if StatusPending.Protected() || StatusCancelled.Protected() {
		t.Error("pendiente and cancelada must not be protected")
	}
}

func TestCancel(t *testing.T) {
	b := &models.Booking{Status: string(StatusDeposit)}
	if err := Cancel(b); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if b.Status != string(StatusCancelled) {
		t.Fatalf("status = %q, want cancelada", b.Status)
	}

	if err := Cancel(b); !httperr.IsBusiness(err, "already_cancelled") {
		t.Fatalf("second Cancel = %v, want already_cancelled conflict", err)
	}
}

func TestCancelMixedCaseStored(t *testing.T) {
	b := &models.Booking{Status: "Confirmada"}
	if err := Cancel(b); err != nil {
		t.Fatalf("Cancel on mixed-case stored status: %v", err)
	}
	if b.Status != string(StatusCancelled) {
		t.Fatalf("status = %q, want cancelada", b.Status)
	}
}
