package common

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	// ProjectID is the GCP project the service runs in.
	ProjectID string

	// Production flag indicating if app is running the production backend
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool

	// AssetsBucket is the bucket holding staged and fulfilled order assets.
	AssetsBucket string

	// CtxKeys are the gin context keys set by the auth middleware.
	CtxKeys struct {
		UID   string
		Email string
	}
)

const (
	productionProject = "clipcraft-prod"

	// TestProjectID is used by tests that construct real clients.
	TestProjectID = "clipcraft-dev"

	// GuestUserID is the sentinel user id for checkouts without an account.
	GuestUserID = "guest"

	// GuestEmail is the placeholder billing email used when no identity
	// is available for the checkout user.
	GuestEmail = "guest@clipcraft.io"
)

func init() {
	IsLocalhost = gin.Mode() != gin.ReleaseMode

	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	if ProjectID == "" {
		if !IsLocalhost {
			log.Fatalln("missing GOOGLE_CLOUD_PROJECT environment variable")
		}

		ProjectID = TestProjectID
	}
	Production = ProjectID == productionProject && !IsLocalhost

	AssetsBucket = GetEnv("ASSETS_BUCKET", fmt.Sprintf("%s-order-assets", ProjectID))

	CtxKeys.UID = "uid"
	CtxKeys.Email = "email"
}

// GetEnv returns the value of the environment variable, or the fallback
// value if it is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
