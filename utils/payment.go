package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrPaymentsDisabled is returned when no processor secret key is configured.
var ErrPaymentsDisabled = errors.New("payment processor is not configured")

// StripeGateway creates card-only PaymentIntents in a fixed currency.
type StripeGateway struct {
	api      *client.API
	currency string
}

// NewStripeGateway returns nil when secretKey is empty.
func NewStripeGateway(secretKey, currency string) *StripeGateway {
	if secretKey == "" {
		return nil
	}
	return &StripeGateway{
		api:      client.New(secretKey, nil),
		currency: currency,
	}
}

// CreateIntent requests a charge intent for amount minor units and returns
// the client secret used to confirm it in the browser.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if g == nil {
		return "", ErrPaymentsDisabled
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}

// MinorUnits converts a price to cents, truncating any fraction of a cent.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}
