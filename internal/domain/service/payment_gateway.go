package service

import (
	"context"
)

// CheckoutSessionInput carries everything needed to open a hosted checkout page.
type CheckoutSessionInput struct {
	OrderID        string
	OrderReference string
	AmountCents    int64
	FeeCents       int64
	Currency       string
	CustomerEmail  string
	// ConnectedAccountID routes the payment to the cobbler's account.
	// Empty means the platform collects the whole amount.
	ConnectedAccountID string
	SuccessURL         string
	CancelURL          string
}

// CheckoutSession is the gateway's view of a hosted checkout page.
type CheckoutSession struct {
	ID     string
	URL    string
	Status string // "open", "complete", "expired"
	Paid   bool
}

// AccountStatus reports the onboarding state of a connected account.
type AccountStatus struct {
	AccountID        string
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DetailsSubmitted bool
}

// WebhookEvent is a verified event received from the payment provider.
type WebhookEvent struct {
	Type      string
	SessionID string
}

// PaymentGateway abstracts the payment provider (Stripe in production).
type PaymentGateway interface {
	// CreateCheckoutSession opens a hosted checkout page for an order.
	CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (*CheckoutSession, error)

	// GetCheckoutSession fetches the current state of a checkout session.
	GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error)

	// CreateExpressAccount creates a connected account for a cobbler and
	// returns its ID.
	CreateExpressAccount(ctx context.Context, email string) (string, error)

	// CreateOnboardingLink returns a one-time URL where the cobbler completes
	// the account onboarding flow.
	CreateOnboardingLink(ctx context.Context, accountID, returnURL, refreshURL string) (string, error)

	// GetAccountStatus fetches the onboarding state of a connected account.
	GetAccountStatus(ctx context.Context, accountID string) (*AccountStatus, error)

	// VerifyWebhook checks the signature of a webhook payload and decodes the event.
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
