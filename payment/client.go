package payment

import (
	"context"
	"encoding/json"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"

	"github.com/clipcraft/fulfillment/secretmanager"
)

// Client wraps the stripe API client together with the webhook signing key
// configured for the payment gateway account.
type Client struct {
	*client.API
	webhookSignKey string
}

type stripeSecret struct {
	APIKey         string `json:"api_key"`
	WebhookSignKey string `json:"webhook_sign_key"`
}

// NewClient initializes a stripe client from the payment gateway secret.
func NewClient(ctx context.Context) (*Client, error) {
	secret, err := getStripeSecret(ctx)
	if err != nil {
		return nil, err
	}

	var stripeClient client.API

	stripeClient.Init(secret.APIKey, nil)

	return &Client{
		&stripeClient,
		secret.WebhookSignKey,
	}, nil
}

func getStripeSecret(ctx context.Context) (stripeSecret, error) {
	data, err := secretmanager.AccessSecretLatestVersion(ctx, secretmanager.SecretStripe)
	if err != nil {
		return stripeSecret{}, err
	}

	var secret stripeSecret

	if err := json.Unmarshal(data, &secret); err != nil {
		return stripeSecret{}, err
	}

	return secret, nil
}

// NewCustomer creates a new customer profile on the payment gateway.
func (c *Client) NewCustomer(ctx context.Context, params *stripe.CustomerParams) (*stripe.Customer, error) {
	return c.Customers.New(params)
}

// NewCheckoutSession opens a checkout session on the payment gateway.
func (c *Client) NewCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.CheckoutSessions.New(params)
}

// ConstructEvent reconstructs and authenticates a webhook event from its raw
// payload and signature header using the account's signing key.
func (c *Client) ConstructEvent(payload []byte, signature string) (*stripe.Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSignKey, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, err
	}

	return &event, nil
}
