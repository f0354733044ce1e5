package checkout

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/autosphere/storefront/lib/myerrors"
)

//go:generate mockgen -source=payer.go -package checkout -destination payer_mock.go Payer
type Payer interface {
	CreateCheckoutSession(c context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error)
}

// stripePayer holds its own api client; the global stripe.Key is never set.
type stripePayer struct {
	api *client.API
}

func NewPayer(apiKey string) Payer {
	return newPayerWithBackends(apiKey, nil)
}

func newPayerWithBackends(apiKey string, backends *stripe.Backends) *stripePayer {
	return &stripePayer{
		api: client.New(apiKey, backends),
	}
}

func (p *stripePayer) CreateCheckoutSession(c context.Context, params stripe.CheckoutSessionParams) (stripe.CheckoutSession, error) {
	params.Context = c
	created, err := p.api.CheckoutSessions.New(&params)
	if err != nil {
		return stripe.CheckoutSession{}, myerrors.NewInvalidInputError(fmt.Errorf("error creating stripe session: %s", err))
	}

	return *created, nil
}
