package usecase

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// StartCheckoutInput opens a hosted checkout page for a stored order.
type StartCheckoutInput struct {
	OrderID    uuid.UUID
	SuccessURL string
	CancelURL  string
}

// --- Output DTOs ---

// CheckoutOutput carries the redirect URL of the hosted checkout page.
type CheckoutOutput struct {
	SessionID   string
	CheckoutURL string
}

// OnboardingOutput carries the redirect URL of the account onboarding flow.
type OnboardingOutput struct {
	AccountID     string
	OnboardingURL string
}

// PaymentUsecase defines the interface for payment operations.
type PaymentUsecase interface {
	// StartCheckout creates a checkout session for an unpaid order,
	// splitting the platform commission off the cobbler's share.
	StartCheckout(ctx context.Context, input StartCheckoutInput) (*CheckoutOutput, error)

	// HandleWebhook processes a provider webhook. On checkout completion the
	// order is marked paid.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error

	// ConfirmCheckout polls the session state directly. Fallback for
	// environments where webhooks cannot reach the server.
	ConfirmCheckout(ctx context.Context, sessionID string) (*entity.Order, error)

	// StartOnboarding creates (or reuses) the cobbler's connected account and
	// returns the onboarding URL.
	StartOnboarding(ctx context.Context, cobblerID uuid.UUID, returnURL, refreshURL string) (*OnboardingOutput, error)

	// OnboardingStatus reports whether the cobbler's connected account can
	// receive payouts.
	OnboardingStatus(ctx context.Context, cobblerID uuid.UUID) (*OnboardingStatusOutput, error)
}

// OnboardingStatusOutput reports the payout readiness of a cobbler account.
type OnboardingStatusOutput struct {
	AccountID        string
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DetailsSubmitted bool
}
