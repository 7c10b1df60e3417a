package handlers

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/clipcraft/fulfillment/checkout/dal"
	"github.com/clipcraft/fulfillment/checkout/iface/mocks"
	testTools "github.com/clipcraft/fulfillment/common/test_tools"
	"github.com/clipcraft/fulfillment/logger"
)

func TestCheckout_ProcessIntent(t *testing.T) {
	type fields struct {
		service *mocks.CheckoutOrchestrator
	}

	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name    string
		args    args
		wantErr bool
		on      func(f *fields)
	}{
		{
			name: "missing intent id",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, nil, []gin.Param{}),
			},
			wantErr: true,
		},
		{
			name: "intent not found",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, nil, []gin.Param{
					{Key: "intentID", Value: "intent-1"},
				}),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("ProcessIntent", mock.AnythingOfType("*gin.Context"), "intent-1").Return(dal.ErrCheckoutIntentNotFound)
			},
		},
		{
			name: "intent store unreachable",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, nil, []gin.Param{
					{Key: "intentID", Value: "intent-1"},
				}),
			},
			wantErr: true,
			on: func(f *fields) {
				f.service.On("ProcessIntent", mock.AnythingOfType("*gin.Context"), "intent-1").Return(errors.New("store unavailable"))
			},
		},
		{
			name: "success",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, nil, []gin.Param{
					{Key: "intentID", Value: "intent-1"},
				}),
			},
			wantErr: false,
			on: func(f *fields) {
				f.service.On("ProcessIntent", mock.AnythingOfType("*gin.Context"), "intent-1").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				service: mocks.NewCheckoutOrchestrator(t),
			}

			if tt.on != nil {
				tt.on(&f)
			}

			h := &Checkout{
				loggerProvider: logger.FromContext,
				service:        f.service,
			}

			if err := h.ProcessIntent(tt.args.ctx); (err != nil) != tt.wantErr {
				t.Errorf("Checkout.ProcessIntent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
