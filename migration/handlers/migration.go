package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/framework/web"
	"github.com/clipcraft/fulfillment/logger"
	"github.com/clipcraft/fulfillment/migration/iface"
	"github.com/clipcraft/fulfillment/migration/service"
	ordersDAL "github.com/clipcraft/fulfillment/orders/dal"
)

type Migration struct {
	loggerProvider logger.Provider
	service        iface.AssetMigrator
}

// NewMigration creates new migration package handlers
func NewMigration(loggerProvider logger.Provider, conn *connection.Connection) *Migration {
	return &Migration{
		loggerProvider,
		service.NewMigrationService(loggerProvider, conn),
	}
}

// MigrateOrderAssets handles the document-created trigger for an order.
// Incomplete migrations surface a 5xx so the trigger redelivers and the
// leftover objects get another pass.
func (h *Migration) MigrateOrderAssets(ctx *gin.Context) error {
	orderID := ctx.Param("orderID")
	if orderID == "" {
		return web.NewRequestError(web.ErrBadRequest, http.StatusBadRequest)
	}

	if err := h.service.MigrateOrderAssets(ctx, orderID); err != nil {
		if errors.Is(err, ordersDAL.ErrOrderNotFound) {
			return web.NewRequestError(err, http.StatusNotFound)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
