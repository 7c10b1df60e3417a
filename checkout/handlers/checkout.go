package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipcraft/fulfillment/checkout/dal"
	"github.com/clipcraft/fulfillment/checkout/iface"
	"github.com/clipcraft/fulfillment/checkout/service"
	customersIface "github.com/clipcraft/fulfillment/customers/iface"
	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/framework/web"
	"github.com/clipcraft/fulfillment/logger"
)

type Checkout struct {
	loggerProvider logger.Provider
	service        iface.CheckoutOrchestrator
}

// NewCheckout creates new checkout package handlers
func NewCheckout(
	loggerProvider logger.Provider,
	conn *connection.Connection,
	payments service.SessionCreator,
	customers customersIface.CustomerDirectory,
) *Checkout {
	return &Checkout{
		loggerProvider,
		service.NewCheckoutOrchestratorService(loggerProvider, conn, payments, customers),
	}
}

// ProcessIntent handles the document-created trigger for a checkout intent.
// Processing failures land on the intent itself; only a broken trigger
// (missing id, missing document) or an unreachable intent store surface as
// HTTP errors, the latter so the trigger redelivers.
func (h *Checkout) ProcessIntent(ctx *gin.Context) error {
	intentID := ctx.Param("intentID")
	if intentID == "" {
		return web.NewRequestError(service.ErrInvalidIntentID, http.StatusBadRequest)
	}

	if err := h.service.ProcessIntent(ctx, intentID); err != nil {
		if errors.Is(err, dal.ErrCheckoutIntentNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
