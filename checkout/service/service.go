package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/clipcraft/fulfillment/checkout/consts"
	"github.com/clipcraft/fulfillment/checkout/dal"
	"github.com/clipcraft/fulfillment/checkout/domain"
	customersIface "github.com/clipcraft/fulfillment/customers/iface"
	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/logger"
)

// SessionCreator opens checkout sessions on the payment gateway.
type SessionCreator interface {
	NewCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type CheckoutOrchestratorService struct {
	loggerProvider logger.Provider
	intentsDAL     dal.CheckoutIntents
	payments       SessionCreator
	customers      customersIface.CustomerDirectory
}

func NewCheckoutOrchestratorService(
	loggerProvider logger.Provider,
	conn *connection.Connection,
	payments SessionCreator,
	customers customersIface.CustomerDirectory,
) *CheckoutOrchestratorService {
	return &CheckoutOrchestratorService{
		loggerProvider,
		dal.NewCheckoutIntentsFirestoreWithClient(conn.Firestore),
		payments,
		customers,
	}
}

// ProcessIntent reacts to a newly created checkout intent: it resolves the
// user's gateway customer, assembles the line items, opens a checkout session
// and writes the session back onto the intent. Processing failures are a
// terminal state of the intent itself (status=error plus the failure message),
// not an error to the trigger; only failures reading or writing the intent
// document propagate to the caller.
func (s *CheckoutOrchestratorService) ProcessIntent(ctx context.Context, intentID string) error {
	l := s.loggerProvider(ctx)

	if intentID == "" {
		return ErrInvalidIntentID
	}

	intent, err := s.intentsDAL.Get(ctx, intentID)
	if err != nil {
		return err
	}

	// Intents are mutated exactly once. A redelivered trigger for an intent
	// that already reached a terminal state is skipped, not re-processed.
	if intent.Status != "" {
		l.Infof("checkout: intent %s already processed (status %s), skipping", intentID, intent.Status)
		return nil
	}

	customerID, err := s.customers.ResolveCustomer(ctx, intent.UserID)
	if err != nil {
		return s.failIntent(ctx, intentID, err)
	}

	params := &stripe.CheckoutSessionParams{
		Customer:   stripe.String(customerID),
		Mode:       stripe.String(intent.Mode),
		SuccessURL: stripe.String(intent.SuccessURL),
		CancelURL:  stripe.String(intent.CancelURL),
		LineItems:  buildLineItems(intent),
	}
	params.SetIdempotencyKey(intentID)

	session, err := s.payments.NewCheckoutSession(ctx, params)
	if err != nil {
		return s.failIntent(ctx, intentID, err)
	}

	return s.intentsDAL.UpdateSession(ctx, intentID, session.ID, session.URL)
}

// failIntent persists the failure as the intent's terminal state. The returned
// error is non-nil only when that write itself fails.
func (s *CheckoutOrchestratorService) failIntent(ctx context.Context, intentID string, cause error) error {
	s.loggerProvider(ctx).Errorf("checkout: intent %s failed: %v", intentID, cause)

	return s.intentsDAL.UpdateError(ctx, intentID, cause.Error())
}

// buildLineItems assembles the session's line items: the base price at
// quantity 1, one item per recognized upsell option, and one item covering all
// requested additional formats. Unrecognized upsell options contribute nothing.
func buildLineItems(intent *domain.CheckoutIntent) []*stripe.CheckoutSessionLineItemParams {
	items := []*stripe.CheckoutSessionLineItemParams{
		{
			Price:    stripe.String(intent.PriceID),
			Quantity: stripe.Int64(1),
		},
	}

	for _, option := range intent.UpsellOptions {
		priceID, ok := consts.UpsellPriceIDs[option]
		if !ok {
			continue
		}

		items = append(items, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(priceID),
			Quantity: stripe.Int64(1),
		})
	}

	if intent.AdditionalFormats > 0 {
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(consts.AdditionalFormatPriceID),
			Quantity: stripe.Int64(intent.AdditionalFormats),
		})
	}

	return items
}
