// Package payment implements the PaymentGateway domain service against the
// Stripe REST API.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"cordonnier/config"
	"cordonnier/internal/domain/service"
)

const (
	defaultStripeBaseURL = "https://api.stripe.com"
	stripeTimeout        = 30 * time.Second

	// webhookTolerance bounds the age of a signed webhook payload.
	webhookTolerance = 5 * time.Minute
)

// stripeGateway talks to the Stripe API with form-encoded requests.
type stripeGateway struct {
	secretKey     string
	webhookSecret string
	baseURL       string
	client        *http.Client
	logger        *slog.Logger
	now           func() time.Time
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	baseURL := defaultStripeBaseURL
	if cfg.Stripe.BaseURL != "" {
		baseURL = strings.TrimRight(cfg.Stripe.BaseURL, "/")
	}

	return &stripeGateway{
		secretKey:     cfg.Stripe.SecretKey,
		webhookSecret: cfg.Stripe.WebhookSecret,
		baseURL:       baseURL,
		client:        &http.Client{Timeout: stripeTimeout},
		logger:        logger,
		now:           time.Now,
	}, nil
}

type stripeSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

type stripeAccount struct {
	ID               string `json:"id"`
	ChargesEnabled   bool   `json:"charges_enabled"`
	PayoutsEnabled   bool   `json:"payouts_enabled"`
	DetailsSubmitted bool   `json:"details_submitted"`
}

type stripeAccountLink struct {
	URL string `json:"url"`
}

type stripeError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateCheckoutSession opens a hosted checkout page for an order.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, input service.CheckoutSessionInput) (*service.CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", input.SuccessURL)
	form.Set("cancel_url", input.CancelURL)
	form.Set("client_reference_id", input.OrderID)
	if input.CustomerEmail != "" {
		form.Set("customer_email", input.CustomerEmail)
	}
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(input.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(input.AmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", "Commande "+input.OrderReference)
	form.Set("metadata[order_id]", input.OrderID)
	form.Set("metadata[order_reference]", input.OrderReference)
	if input.ConnectedAccountID != "" {
		form.Set("payment_intent_data[application_fee_amount]", strconv.FormatInt(input.FeeCents, 10))
		form.Set("payment_intent_data[transfer_data][destination]", input.ConnectedAccountID)
	}

	var session stripeSession
	if err := g.post(ctx, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}

	return toCheckoutSession(&session), nil
}

// GetCheckoutSession fetches the current state of a checkout session.
func (g *stripeGateway) GetCheckoutSession(ctx context.Context, sessionID string) (*service.CheckoutSession, error) {
	var session stripeSession
	if err := g.get(ctx, "/v1/checkout/sessions/"+url.PathEscape(sessionID), &session); err != nil {
		return nil, err
	}

	return toCheckoutSession(&session), nil
}

// CreateExpressAccount creates a connected Express account for a cobbler.
func (g *stripeGateway) CreateExpressAccount(ctx context.Context, email string) (string, error) {
	form := url.Values{}
	form.Set("type", "express")
	form.Set("email", email)

	var account stripeAccount
	if err := g.post(ctx, "/v1/accounts", form, &account); err != nil {
		return "", err
	}

	return account.ID, nil
}

// CreateOnboardingLink returns a one-time URL for the account onboarding flow.
func (g *stripeGateway) CreateOnboardingLink(ctx context.Context, accountID, returnURL, refreshURL string) (string, error) {
	form := url.Values{}
	form.Set("account", accountID)
	form.Set("type", "account_onboarding")
	form.Set("return_url", returnURL)
	form.Set("refresh_url", refreshURL)

	var link stripeAccountLink
	if err := g.post(ctx, "/v1/account_links", form, &link); err != nil {
		return "", err
	}

	return link.URL, nil
}

// GetAccountStatus fetches the onboarding state of a connected account.
func (g *stripeGateway) GetAccountStatus(ctx context.Context, accountID string) (*service.AccountStatus, error) {
	var account stripeAccount
	if err := g.get(ctx, "/v1/accounts/"+url.PathEscape(accountID), &account); err != nil {
		return nil, err
	}

	return &service.AccountStatus{
		AccountID:        account.ID,
		ChargesEnabled:   account.ChargesEnabled,
		PayoutsEnabled:   account.PayoutsEnabled,
		DetailsSubmitted: account.DetailsSubmitted,
	}, nil
}

// VerifyWebhook checks the "Stripe-Signature" header scheme (t=...,v1=...)
// against the webhook secret and decodes the event payload.
func (g *stripeGateway) VerifyWebhook(payload []byte, signature string) (*service.WebhookEvent, error) {
	timestamp, signatures, err := parseSignatureHeader(signature)
	if err != nil {
		return nil, err
	}

	age := g.now().Sub(time.Unix(timestamp, 0))
	if age > webhookTolerance || age < -webhookTolerance {
		return nil, errors.New("webhook timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	var matched bool
	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			matched = true

			break
		}
	}
	if !matched {
		return nil, errors.New("webhook signature mismatch")
	}

	var event struct {
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID string `json:"id"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, errors.Wrap(err, "decode webhook payload")
	}

	return &service.WebhookEvent{
		Type:      event.Type,
		SessionID: event.Data.Object.ID,
	}, nil
}

func toCheckoutSession(session *stripeSession) *service.CheckoutSession {
	return &service.CheckoutSession{
		ID:     session.ID,
		URL:    session.URL,
		Status: session.Status,
		Paid:   session.PaymentStatus == "paid",
	}
}

func parseSignatureHeader(header string) (timestamp int64, signatures []string, err error) {
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			timestamp, err = strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, errors.Wrap(err, "parse signature timestamp")
			}
		case "v1":
			signatures = append(signatures, value)
		}
	}

	if timestamp == 0 || len(signatures) == 0 {
		return 0, nil, errors.New("malformed signature header")
	}

	return timestamp, signatures, nil
}

func (g *stripeGateway) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "build stripe request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return g.do(req, out)
}

func (g *stripeGateway) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "build stripe request")
	}

	return g.do(req, out)
}

func (g *stripeGateway) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+g.secretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "stripe request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read stripe response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr stripeError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			g.logger.Error("stripe API error", "status", resp.StatusCode, "type", apiErr.Error.Type, "message", apiErr.Error.Message)

			return errors.Errorf("stripe: %s", apiErr.Error.Message)
		}

		return errors.Errorf("stripe: unexpected status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "decode stripe response")
	}

	return nil
}
