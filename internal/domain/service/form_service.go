package service

import (
	"context"
	"time"

	"foundmoney/internal/domain/entity"
)

// FormFiller maps known user data onto a claim form's fields.
type FormFiller interface {
	// Fill returns a value per field key it could fill. Fields it cannot fill
	// are omitted or left empty.
	Fill(ctx context.Context, fields map[string]entity.FormField, userData map[string]any) (map[string]any, error)
}

// ClaimDocument is everything printed on a generated claim PDF.
type ClaimDocument struct {
	Claim       *entity.ClaimInfo // Nil prints no claim block.
	FormData    map[string]any
	GeneratedAt time.Time
}

// DocumentRenderer renders claim paperwork.
type DocumentRenderer interface {
	RenderClaimForm(ctx context.Context, doc *ClaimDocument) ([]byte, error)
}

// DocumentStore keeps generated documents.
type DocumentStore interface {
	// Put stores data under key and returns a URL the client can download from.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
