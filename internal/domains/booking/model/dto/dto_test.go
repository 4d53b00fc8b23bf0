package dto_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/booking/model/dto"
)

func TestCheckoutRequest_ParseActualCheckout(t *testing.T) {
	now := time.Date(2026, 3, 4, 11, 30, 0, 0, time.UTC)

	t.Run("omitted date truncates now to midnight", func(t *testing.T) {
		req := dto.CheckoutRequest{}

		got, err := req.ParseActualCheckout(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("explicit date is parsed", func(t *testing.T) {
		req := dto.CheckoutRequest{ActualCheckOut: "2026-03-03"}

		got, err := req.ParseActualCheckout(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("unparseable date errors", func(t *testing.T) {
		req := dto.CheckoutRequest{ActualCheckOut: "yesterday"}

		if _, err := req.ParseActualCheckout(now); err == nil {
			t.Error("expected an error for an unparseable date")
		}
	})
}
