// Package constants holds provider names and fixed identifiers used across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Store backends for the rate limiter and score cache
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Property registry providers
const (
	RegistryProviderSample = "sample"
	RegistryProviderHTTP   = "http"
)

// Mailbox providers
const (
	MailboxProviderGmail = "gmail"
)

// Event types published to the message queue
const (
	EventTypeSearchCompleted = "search.completed"
)

// Pub/Sub message attribute keys
const (
	AttrEventType = "event_type"
	AttrUserID    = "user_id"
	AttrRequestID = "request_id"
)
