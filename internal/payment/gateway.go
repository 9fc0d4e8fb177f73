package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrGateway wraps every failure reported by the payment provider.
var ErrGateway = errors.New("payment gateway error")

// Gateway creates payment intents with an external provider.
type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (string, error)
}

// ToMinorUnits converts a decimal amount to the smallest currency unit,
// truncating any fraction of a cent.
func ToMinorUnits(amount float64) int64 {
	return int64(amount * 100)
}

// StripeGateway talks to Stripe through a private client.
type StripeGateway struct {
	api     *client.API
	timeout time.Duration
}

func NewStripeGateway(secretKey string, timeout time.Duration) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api, timeout: timeout}
}

// CreateIntent returns the client secret of a new card payment intent.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount float64, currency string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(ToMinorUnits(amount)),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return intent.ClientSecret, nil
}
