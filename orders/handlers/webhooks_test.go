package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	testTools "github.com/clipcraft/fulfillment/common/test_tools"
	"github.com/clipcraft/fulfillment/logger"
	"github.com/clipcraft/fulfillment/orders/iface/mocks"
	"github.com/clipcraft/fulfillment/orders/service"
)

func TestWebhooks_WebhookHandler(t *testing.T) {
	body := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	signature := "t=1,v1=abc"

	type fields struct {
		service *mocks.WebhookProcessor
	}

	tests := []struct {
		name    string
		body    []byte
		headers map[string]string
		wantErr bool
		on      func(f *fields)
	}{
		{
			name:    "missing signature header",
			body:    body,
			headers: map[string]string{},
			wantErr: true,
		},
		{
			name:    "invalid event",
			body:    body,
			headers: map[string]string{"Stripe-Signature": signature},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("HandleEvent", mock.AnythingOfType("*gin.Context"), body, signature).
					Return(fmt.Errorf("%w: signature mismatch", service.ErrInvalidEvent))
			},
		},
		{
			name:    "processing failure propagates for redelivery",
			body:    body,
			headers: map[string]string{"Stripe-Signature": signature},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("HandleEvent", mock.AnythingOfType("*gin.Context"), body, signature).
					Return(errors.New("store unavailable"))
			},
		},
		{
			name:    "acknowledged event",
			body:    body,
			headers: map[string]string{"Stripe-Signature": signature},
			wantErr: false,
			on: func(f *fields) {
				f.service.On("HandleEvent", mock.AnythingOfType("*gin.Context"), body, signature).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				service: mocks.NewWebhookProcessor(t),
			}

			if tt.on != nil {
				tt.on(&f)
			}

			h := &Webhooks{
				loggerProvider: logger.FromContext,
				service:        f.service,
			}

			ctx, _ := testTools.GenerateCtxWithBodyAndHeaders(t, tt.body, tt.headers)

			if err := h.WebhookHandler(ctx); (err != nil) != tt.wantErr {
				t.Errorf("Webhooks.WebhookHandler() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
