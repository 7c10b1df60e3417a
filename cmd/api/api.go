package api

import (
	"context"
	"net/http"
	"os"

	checkoutHandlers "github.com/clipcraft/fulfillment/checkout/handlers"
	"github.com/clipcraft/fulfillment/cmd/api/handlers"
	customersService "github.com/clipcraft/fulfillment/customers/service"
	downloadsHandlers "github.com/clipcraft/fulfillment/downloads/handlers"
	fb "github.com/clipcraft/fulfillment/firebase"
	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/framework/mid"
	"github.com/clipcraft/fulfillment/framework/web"
	"github.com/clipcraft/fulfillment/logger"
	migrationHandlers "github.com/clipcraft/fulfillment/migration/handlers"
	ordersHandlers "github.com/clipcraft/fulfillment/orders/handlers"
	"github.com/clipcraft/fulfillment/payment"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	backgroundContext := context.Background()

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics())

	paymentClient, err := payment.NewClient(backgroundContext)
	if err != nil {
		panic(err)
	}

	customerDirectory := customersService.NewCustomerDirectoryService(loggerProvider, a.conn, paymentClient, fb.GetUserEmail)

	checkout := checkoutHandlers.NewCheckout(loggerProvider, a.conn, paymentClient, customerDirectory)
	webhooks := ordersHandlers.NewWebhooks(loggerProvider, a.conn, paymentClient)
	migration := migrationHandlers.NewMigration(loggerProvider, a.conn)
	downloads := downloadsHandlers.NewDownloads(loggerProvider, a.conn)

	app.Get("/health", handlers.Health)

	// Document-created triggers pushed by the event infrastructure.
	app.Post("/events/checkout-intents/:intentID", checkout.ProcessIntent)
	app.Post("/events/orders/:orderID", migration.MigrateOrderAssets)

	// Payment gateway push.
	app.Post("/webhooks/stripe", webhooks.WebhookHandler)

	// Authenticated storefront surface.
	app.Post("/downloads", downloads.IssueDownloadURL, mid.AuthRequired())

	return app
}
