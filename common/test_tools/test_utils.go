package testtools

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// GenerateCtxWithJSONAndParams returns a gin test context carrying the given
// JSON body and route params.
func GenerateCtxWithJSONAndParams(t *testing.T, data map[string]interface{}, params []gin.Param) *gin.Context {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Params = params
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8080", nil)

	jsonbytes, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(jsonbytes))

	return ctx
}

// GenerateCtxWithBodyAndHeaders returns a gin test context carrying a raw body
// and the given request headers. Used by webhook handler tests where the exact
// payload bytes matter for signature verification.
func GenerateCtxWithBodyAndHeaders(t *testing.T, body []byte, headers map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8080", bytes.NewReader(body))

	for k, v := range headers {
		ctx.Request.Header.Set(k, v)
	}

	return ctx, recorder
}
