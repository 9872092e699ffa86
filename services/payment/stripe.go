package payment

import (
	"fmt"
	"os"
	"strings"

	"detail-genius/logger"
	serviceModel "detail-genius/models/service"

	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
)

// Client creates Stripe Checkout sessions for booking deposits. When no
// secret key is configured the client is disabled and CreateDepositSession
// returns an empty session id without calling Stripe, which matches running
// the booking flow without payments.
type Client struct {
	secretKey  string
	successURL string
	cancelURL  string
}

func NewClientFromEnv() *Client {
	return &Client{
		secretKey:  strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		successURL: strings.TrimSpace(os.Getenv("STRIPE_SUCCESS_URL")),
		cancelURL:  strings.TrimSpace(os.Getenv("STRIPE_CANCEL_URL")),
	}
}

func (p *Client) Enabled() bool {
	return p.secretKey != ""
}

// CreateDepositSession creates a Checkout session charging the 50% deposit
// for the given service. The appointment uuid rides along as the client
// reference so the webhook side can match the payment back to the booking.
func (p *Client) CreateDepositSession(svc serviceModel.Service, appointmentUuid string) (string, error) {
	if !p.Enabled() {
		return "", nil
	}

	successURL := p.successURL
	if successURL == "" {
		successURL = os.Getenv("FRONTEND_URL") + "/booking/confirmed"
	}
	cancelURL := p.cancelURL
	if cancelURL == "" {
		cancelURL = os.Getenv("FRONTEND_URL") + "/booking"
	}

	// Stripe uses a global API key. Keep usage limited to this call.
	stripe.Key = p.secretKey

	depositCents := int64(svc.DepositAmount() * 100)

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(successURL),
		CancelURL:         stripe.String(cancelURL),
		ClientReferenceID: stripe.String(appointmentUuid),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(depositCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(svc.Name + " — 50% deposit"),
						Description: stripe.String(svc.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"appointment_uuid": appointmentUuid,
			"service_id":       svc.ID,
		},
	}
	// Deterministic idempotency key: a retried submission reuses the session.
	params.IdempotencyKey = stripe.String("deposit:" + appointmentUuid)

	sess, err := checkoutsession.New(params)
	if err != nil {
		logger.Error("stripe checkout session create failed", err)
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	return sess.ID, nil
}
