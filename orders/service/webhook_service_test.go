package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v74"

	customersDAL "github.com/clipcraft/fulfillment/customers/dal"
	customersDALMocks "github.com/clipcraft/fulfillment/customers/dal/mocks"
	customersDomain "github.com/clipcraft/fulfillment/customers/domain"
	"github.com/clipcraft/fulfillment/logger"
	loggerMocks "github.com/clipcraft/fulfillment/logger/mocks"
	"github.com/clipcraft/fulfillment/orders/dal"
	dalMocks "github.com/clipcraft/fulfillment/orders/dal/mocks"
	"github.com/clipcraft/fulfillment/orders/domain"
	"github.com/clipcraft/fulfillment/orders/service/mocks"
)

func completedSessionEvent(t *testing.T, sessionID string) *stripe.Event {
	raw, err := json.Marshal(map[string]interface{}{
		"id":             sessionID,
		"customer":       map[string]interface{}{"id": "cus_1"},
		"payment_intent": map[string]interface{}{"id": "pi_1"},
		"amount_total":   4999,
	})
	if err != nil {
		t.Fatal(err)
	}

	return &stripe.Event{
		ID:   "evt_1",
		Type: checkoutSessionCompleted,
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestWebhookService_HandleEvent(t *testing.T) {
	ctx := context.Background()

	body := []byte(`{"id":"evt_1"}`)
	signature := "t=1,v1=abc"

	type fields struct {
		ordersDAL   *dalMocks.Orders
		mappingsDAL *customersDALMocks.CustomerMappings
		verifier    *mocks.EventVerifier
	}

	tests := []struct {
		name    string
		wantErr error
		on      func(f *fields)
	}{
		{
			name:    "tampered signature rejected before any store access",
			wantErr: ErrInvalidEvent,
			on: func(f *fields) {
				f.verifier.On("ConstructEvent", body, signature).Return(nil, errors.New("signature mismatch"))
			},
		},
		{
			name: "unrecognized event type acknowledged without creating an order",
			on: func(f *fields) {
				f.verifier.On("ConstructEvent", body, signature).Return(&stripe.Event{
					ID:   "evt_1",
					Type: "invoice.paid",
				}, nil)
			},
		},
		{
			name: "completed session creates an order from the mapping",
			on: func(f *fields) {
				f.verifier.On("ConstructEvent", body, signature).Return(completedSessionEvent(t, "cs_1"), nil)
				f.mappingsDAL.On("GetByExternalCustomerID", ctx, "cus_1").Return(&customersDomain.CustomerMapping{
					UserID:             "user-1",
					ExternalCustomerID: "cus_1",
				}, nil)
				f.ordersDAL.On("Create", ctx, mock.MatchedBy(func(order *domain.Order) bool {
					return order.UserID == "user-1" &&
						order.SessionID == "cs_1" &&
						order.OrderNumber == domain.NewOrderNumber("cs_1") &&
						order.PaymentIntentID == "pi_1" &&
						order.Amount == 4999 &&
						order.Status == domain.OrderStatusPaid
				})).Return(nil)
			},
		},
		{
			name:    "missing mapping surfaces retryable error and creates no order",
			wantErr: ErrMappingNotFound,
			on: func(f *fields) {
				f.verifier.On("ConstructEvent", body, signature).Return(completedSessionEvent(t, "cs_1"), nil)
				f.mappingsDAL.On("GetByExternalCustomerID", ctx, "cus_1").Return(nil, customersDAL.ErrCustomerMappingNotFound)
			},
		},
		{
			name: "redelivered event with existing order is acknowledged",
			on: func(f *fields) {
				f.verifier.On("ConstructEvent", body, signature).Return(completedSessionEvent(t, "cs_1"), nil)
				f.mappingsDAL.On("GetByExternalCustomerID", ctx, "cus_1").Return(&customersDomain.CustomerMapping{
					UserID:             "user-1",
					ExternalCustomerID: "cus_1",
				}, nil)
				f.ordersDAL.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(dal.ErrOrderExists)
			},
		},
		{
			name:    "order store failure propagates for redelivery",
			wantErr: errStore,
			on: func(f *fields) {
				f.verifier.On("ConstructEvent", body, signature).Return(completedSessionEvent(t, "cs_1"), nil)
				f.mappingsDAL.On("GetByExternalCustomerID", ctx, "cus_1").Return(&customersDomain.CustomerMapping{
					UserID:             "user-1",
					ExternalCustomerID: "cus_1",
				}, nil)
				f.ordersDAL.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(errStore)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				ordersDAL:   dalMocks.NewOrders(t),
				mappingsDAL: customersDALMocks.NewCustomerMappings(t),
				verifier:    mocks.NewEventVerifier(t),
			}

			if tt.on != nil {
				tt.on(&f)
			}

			s := &WebhookService{
				loggerProvider: logger.FromContext,
				ordersDAL:      f.ordersDAL,
				mappingsDAL:    f.mappingsDAL,
				verifier:       f.verifier,
			}

			err := s.HandleEvent(ctx, body, signature)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

var errStore = errors.New("store unavailable")

func TestWebhookService_HandleEvent_WarnsOnMissingMapping(t *testing.T) {
	ctx := context.Background()

	body := []byte(`{"id":"evt_1"}`)
	signature := "t=1,v1=abc"

	log := &loggerMocks.ILogger{}
	log.On("Infof", mock.Anything, mock.Anything, mock.Anything)
	log.On("Warningf", mock.Anything, "cus_1", "cs_1")

	verifier := mocks.NewEventVerifier(t)
	verifier.On("ConstructEvent", body, signature).Return(completedSessionEvent(t, "cs_1"), nil)

	mappingsDAL := customersDALMocks.NewCustomerMappings(t)
	mappingsDAL.On("GetByExternalCustomerID", ctx, "cus_1").Return(nil, customersDAL.ErrCustomerMappingNotFound)

	s := &WebhookService{
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return log
		},
		ordersDAL:   dalMocks.NewOrders(t),
		mappingsDAL: mappingsDAL,
		verifier:    verifier,
	}

	err := s.HandleEvent(ctx, body, signature)

	assert.ErrorIs(t, err, ErrMappingNotFound)
	log.AssertNumberOfCalls(t, "Warningf", 1)
}

func TestNewOrderNumber(t *testing.T) {
	first := domain.NewOrderNumber("cs_1")
	second := domain.NewOrderNumber("cs_1")
	other := domain.NewOrderNumber("cs_2")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, first)
}
