package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/framework/web"
	"github.com/clipcraft/fulfillment/logger"
	"github.com/clipcraft/fulfillment/orders/iface"
	"github.com/clipcraft/fulfillment/orders/service"
)

type webhookAck struct {
	Received bool `json:"received"`
}

type Webhooks struct {
	loggerProvider logger.Provider
	service        iface.WebhookProcessor
}

// NewWebhooks creates new orders package webhook handlers
func NewWebhooks(
	loggerProvider logger.Provider,
	conn *connection.Connection,
	verifier service.EventVerifier,
) *Webhooks {
	return &Webhooks{
		loggerProvider,
		service.NewWebhookService(loggerProvider, conn, verifier),
	}
}

// WebhookHandler handles payment events from the gateway. Signature failures
// get a 400 so the gateway stops redelivering forged or garbled payloads;
// processing failures get a 5xx so it redelivers; everything else is
// acknowledged with {received:true}.
func (h *Webhooks) WebhookHandler(ctx *gin.Context) error {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	signature := ctx.Request.Header.Get("Stripe-Signature")
	if signature == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	if err := h.service.HandleEvent(ctx, body, signature); err != nil {
		if errors.Is(err, service.ErrInvalidEvent) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, webhookAck{Received: true}, http.StatusOK)
}
