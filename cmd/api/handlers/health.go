package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipcraft/fulfillment/framework/web"
)

// Health check used by the platform's liveness probe.
func Health(ctx *gin.Context) error {
	return web.Respond(ctx, map[string]string{"status": "ok"}, http.StatusOK)
}
