package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"

	customersDAL "github.com/clipcraft/fulfillment/customers/dal"
	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/logger"
	"github.com/clipcraft/fulfillment/orders/dal"
	"github.com/clipcraft/fulfillment/orders/domain"
)

const checkoutSessionCompleted = "checkout.session.completed"

// EventVerifier reconstructs and authenticates a webhook event from its raw
// payload and signature header.
type EventVerifier interface {
	ConstructEvent(payload []byte, signature string) (*stripe.Event, error)
}

type WebhookService struct {
	loggerProvider logger.Provider
	ordersDAL      dal.Orders
	mappingsDAL    customersDAL.CustomerMappings
	verifier       EventVerifier
}

func NewWebhookService(
	loggerProvider logger.Provider,
	conn *connection.Connection,
	verifier EventVerifier,
) *WebhookService {
	return &WebhookService{
		loggerProvider,
		dal.NewOrdersFirestoreWithClient(conn.Firestore),
		customersDAL.NewCustomerMappingsFirestoreWithClient(conn.Firestore),
		verifier,
	}
}

// HandleEvent verifies the payload before touching any store, then dispatches
// on event type. Only completed checkout sessions create orders; every other
// authenticated event is acknowledged and ignored.
func (s *WebhookService) HandleEvent(ctx context.Context, body []byte, signature string) error {
	l := s.loggerProvider(ctx)

	event, err := s.verifier.ConstructEvent(body, signature)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEvent, err)
	}

	l.Infof("webhook event %s type %s", event.ID, event.Type)

	switch event.Type {
	case checkoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidEvent, err)
		}

		return s.handleCheckoutSessionCompleted(ctx, &session)
	default:
		l.Warningf("unhandled webhook event type: %s", event.Type)
		return nil
	}
}

func (s *WebhookService) handleCheckoutSessionCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	l := s.loggerProvider(ctx)

	if session.Customer == nil || session.Customer.ID == "" {
		return fmt.Errorf("%w: completed session %s carries no customer", ErrInvalidEvent, session.ID)
	}

	mapping, err := s.mappingsDAL.GetByExternalCustomerID(ctx, session.Customer.ID)
	if err != nil {
		if errors.Is(err, customersDAL.ErrCustomerMappingNotFound) {
			l.Warningf("webhook: no mapping for gateway customer %s on session %s, requesting redelivery",
				session.Customer.ID, session.ID)

			return fmt.Errorf("%w: %s", ErrMappingNotFound, session.Customer.ID)
		}

		return err
	}

	order := &domain.Order{
		UserID:      mapping.UserID,
		SessionID:   session.ID,
		OrderNumber: domain.NewOrderNumber(session.ID),
		Amount:      session.AmountTotal,
		Status:      domain.OrderStatusPaid,
	}

	if session.PaymentIntent != nil {
		order.PaymentIntentID = session.PaymentIntent.ID
	}

	if err := s.ordersDAL.Create(ctx, order); err != nil {
		if errors.Is(err, dal.ErrOrderExists) {
			l.Infof("webhook: order for session %s already exists, acknowledging redelivery", session.ID)
			return nil
		}

		return err
	}

	return nil
}
