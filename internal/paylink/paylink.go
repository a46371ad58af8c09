// Package paylink turns a booking's outstanding balance into a
// MercadoPago checkout preference the venue can hand to the client.
// Link generation never mutates booking state; the money only counts once
// staff registers the resulting payment.
package paylink

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/gonzalomaurino/canchas-api/internal/httperr"
)

type Service struct {
	prefs preference.Client
}

// New builds the MercadoPago-backed link generator. An empty access token
// returns (nil, nil): the feature is simply off.
func New(accessToken string) (*Service, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Service{prefs: preference.NewClient(cfg)}, nil
}

type Link struct {
	PreferenceID string  `json:"preference_id"`
	URL          string  `json:"url"`
	Amount       float64 `json:"amount"`
}

// CreateForBooking creates a checkout preference for the given amount.
func (s *Service) CreateForBooking(
	ctx context.Context,
	bookingID uint,
	description string,
	amount float64,
) (*Link, error) {

	if amount <= 0 {
		return nil, httperr.Validation(
			"nothing_outstanding",
			"La reserva no tiene saldo pendiente.",
		)
	}

	resource, err := s.prefs.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     description,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
		ExternalReference: fmt.Sprintf("booking-%d", bookingID),
	})
	if err != nil {
		return nil, httperr.Store("paylink_create_failed", err)
	}

	return &Link{
		PreferenceID: resource.ID,
		URL:          resource.InitPoint,
		Amount:       amount,
	}, nil
}
