package mid

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clipcraft/fulfillment/common"
	fb "github.com/clipcraft/fulfillment/firebase"
	"github.com/clipcraft/fulfillment/framework/web"
	"github.com/clipcraft/fulfillment/logger"
)

// AuthRequired middleware that auth requests coming from the client app.
// The verified uid and email are stored on the gin context for handlers.
func AuthRequired() web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			l := logger.FromContext(ctx)

			token, err := fb.VerifyIDToken(ctx)
			if err != nil {
				l.Warningf("auth: failed to verify id token: %s", err)
				return web.NewRequestError(web.ErrAuthenticationFailure, http.StatusUnauthorized)
			}

			ctx.Set(common.CtxKeys.UID, token.UID)

			if email, ok := token.Claims["email"].(string); ok {
				ctx.Set(common.CtxKeys.Email, email)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}
