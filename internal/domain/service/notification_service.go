package service

import (
	"context"
)

// PushMessage is a notification sent to every device of a user.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendMulticast sends one message to many device tokens.
	// Returns success count, failure count and the tokens the provider reported as unregistered.
	SendMulticast(ctx context.Context, tokens []string, msg *PushMessage) (successCount, failureCount int, invalidTokens []string, err error)
}
