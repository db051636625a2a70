package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"cordonnier/config"
	"cordonnier/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGateway(t *testing.T, baseURL string) service.PaymentGateway {
	t.Helper()

	cfg := &config.Config{
		Stripe: &config.StripeConfig{
			SecretKey:     "sk_test_123",
			WebhookSecret: "whsec_test",
			BaseURL:       baseURL,
		},
	}

	gateway, err := NewStripeGateway(cfg, newDiscardLogger())
	require.NoError(t, err)

	return gateway
}

func TestStripeGateway_CreateCheckoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "chf", r.PostForm.Get("line_items[0][price_data][currency]"))
		assert.Equal(t, "7500", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "1125", r.PostForm.Get("payment_intent_data[application_fee_amount]"))
		assert.Equal(t, "acct_42", r.PostForm.Get("payment_intent_data[transfer_data][destination]"))

		w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.stripe.com/pay/cs_test_1","status":"open","payment_status":"unpaid"}`))
	}))
	defer server.Close()

	gateway := newGateway(t, server.URL)

	session, err := gateway.CreateCheckoutSession(context.Background(), service.CheckoutSessionInput{
		OrderID:            "order-1",
		OrderReference:     "REF-AB12CD34",
		AmountCents:        7500,
		FeeCents:           1125,
		Currency:           "CHF",
		ConnectedAccountID: "acct_42",
		SuccessURL:         "https://example.test/success",
		CancelURL:          "https://example.test/cancel",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", session.ID)
	assert.False(t, session.Paid)
	assert.NotEmpty(t, session.URL)
}

func TestStripeGateway_GetCheckoutSessionPaid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions/cs_test_1", r.URL.Path)
		w.Write([]byte(`{"id":"cs_test_1","status":"complete","payment_status":"paid"}`))
	}))
	defer server.Close()

	gateway := newGateway(t, server.URL)

	session, err := gateway.GetCheckoutSession(context.Background(), "cs_test_1")
	require.NoError(t, err)
	assert.True(t, session.Paid)
	assert.Equal(t, "complete", session.Status)
}

func TestStripeGateway_APIErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"Your card was declined.","type":"card_error"}}`))
	}))
	defer server.Close()

	gateway := newGateway(t, server.URL)

	_, err := gateway.GetCheckoutSession(context.Background(), "cs_test_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card was declined")
}

func TestStripeGateway_ExpressAccountAndLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/accounts":
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "express", r.PostForm.Get("type"))
			w.Write([]byte(`{"id":"acct_42"}`))
		case "/v1/account_links":
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "acct_42", r.PostForm.Get("account"))
			w.Write([]byte(`{"url":"https://connect.stripe.com/setup/x"}`))
		default:
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	gateway := newGateway(t, server.URL)

	accountID, err := gateway.CreateExpressAccount(context.Background(), "atelier@example.ch")
	require.NoError(t, err)
	assert.Equal(t, "acct_42", accountID)

	link, err := gateway.CreateOnboardingLink(context.Background(), accountID, "https://example.test/return", "https://example.test/refresh")
	require.NoError(t, err)
	assert.Equal(t, "https://connect.stripe.com/setup/x", link)
}

func signPayload(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)

	return "t=" + strconv.FormatInt(timestamp, 10) + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func TestStripeGateway_VerifyWebhook(t *testing.T) {
	gateway := newGateway(t, "http://127.0.0.1:0")

	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_test_1"}}}`)
	header := signPayload("whsec_test", time.Now().Unix(), payload)

	event, err := gateway.VerifyWebhook(payload, header)
	require.NoError(t, err)
	assert.Equal(t, "checkout.session.completed", event.Type)
	assert.Equal(t, "cs_test_1", event.SessionID)
}

func TestStripeGateway_VerifyWebhookRejectsBadSignature(t *testing.T) {
	gateway := newGateway(t, "http://127.0.0.1:0")

	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_test_1"}}}`)
	header := signPayload("wrong_secret", time.Now().Unix(), payload)

	_, err := gateway.VerifyWebhook(payload, header)
	assert.Error(t, err)
}

func TestStripeGateway_VerifyWebhookRejectsStaleTimestamp(t *testing.T) {
	gateway := newGateway(t, "http://127.0.0.1:0")

	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_test_1"}}}`)
	header := signPayload("whsec_test", time.Now().Add(-time.Hour).Unix(), payload)

	_, err := gateway.VerifyWebhook(payload, header)
	assert.Error(t, err)
}

func TestStripeGateway_RequiresSecretKey(t *testing.T) {
	_, err := NewStripeGateway(&config.Config{}, newDiscardLogger())
	assert.Error(t, err)
}
