package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "whsec_test_signing_key"

func signPayload(payload []byte, key string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(key))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)

	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestClient_ConstructEvent(t *testing.T) {
	c := &Client{webhookSignKey: testSignKey}

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`)

	t.Run("valid signature", func(t *testing.T) {
		event, err := c.ConstructEvent(payload, signPayload(payload, testSignKey, time.Now()))

		require.NoError(t, err)
		assert.Equal(t, "evt_1", event.ID)
		assert.Equal(t, "checkout.session.completed", event.Type)
	})

	t.Run("tampered payload", func(t *testing.T) {
		signature := signPayload(payload, testSignKey, time.Now())
		tampered := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_2"}}}`)

		_, err := c.ConstructEvent(tampered, signature)

		assert.Error(t, err)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		_, err := c.ConstructEvent(payload, signPayload(payload, "whsec_other_key", time.Now()))

		assert.Error(t, err)
	})

	t.Run("stale timestamp", func(t *testing.T) {
		_, err := c.ConstructEvent(payload, signPayload(payload, testSignKey, time.Now().Add(-time.Hour)))

		assert.Error(t, err)
	})
}
