package usecase

import (
	"context"
)

// Subscription lifecycle events sent by the billing provider.
const (
	EventInitialPurchase = "INITIAL_PURCHASE"
	EventRenewal         = "RENEWAL"
	EventCancellation    = "CANCELLATION"
	EventExpiration      = "EXPIRATION"
	EventBillingIssue    = "BILLING_ISSUE"
	EventProductChange   = "PRODUCT_CHANGE"
)

// SubscriptionEvent is the event body of a billing webhook.
type SubscriptionEvent struct {
	Type          string `json:"type" validate:"required"`
	AppUserID     string `json:"app_user_id" validate:"required"`
	ProductID     string `json:"product_id"`
	NewProductID  string `json:"new_product_id,omitempty"`
	ExpirationAt  int64  `json:"expiration_at_ms,omitempty"`
	PurchasedAt   int64  `json:"purchased_at_ms,omitempty"`
	Store         string `json:"store,omitempty"`
	Environment   string `json:"environment,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// SubscriptionWebhook is the envelope the billing provider posts.
type SubscriptionWebhook struct {
	APIVersion string             `json:"api_version"`
	Event      *SubscriptionEvent `json:"event" validate:"required"`
}

// WebhookResult tells the provider whether the event changed anything.
type WebhookResult struct {
	Handled bool   `json:"handled"`
	Event   string `json:"event"`
}

// WebhookUsecase applies billing events to user profiles.
type WebhookUsecase interface {
	// HandleSubscriptionEvent is idempotent per event type; unknown types are
	// acknowledged with Handled=false.
	HandleSubscriptionEvent(ctx context.Context, event *SubscriptionEvent) (*WebhookResult, error)
}
