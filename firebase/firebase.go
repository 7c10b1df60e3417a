package firebase

import (
	"context"
	"errors"
	"log"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/clipcraft/fulfillment/common"
)

var (
	// App : Firebase App
	App *firebase.App

	ErrMissingAuthorizationHeader = errors.New("missing authorization header")
)

func init() {
	ctx := context.Background()

	var err error

	App, err = firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID})
	if err != nil {
		log.Fatalln(err)
	}
}

// VerifyIDToken verifies the firebase ID token found on the request
// authorization header, returning the decoded token.
func VerifyIDToken(ctx *gin.Context) (*auth.Token, error) {
	client, err := App.Auth(ctx)
	if err != nil {
		return nil, err
	}

	header := ctx.Request.Header.Get("Authorization")
	if header == "" {
		return nil, ErrMissingAuthorizationHeader
	}

	idToken := strings.TrimPrefix(header, "Bearer ")

	return client.VerifyIDToken(ctx, idToken)
}

// GetUserEmail looks up the email address of the given firebase user.
func GetUserEmail(ctx context.Context, uid string) (string, error) {
	client, err := App.Auth(ctx)
	if err != nil {
		return "", err
	}

	user, err := client.GetUser(ctx, uid)
	if err != nil {
		return "", err
	}

	return user.Email, nil
}
