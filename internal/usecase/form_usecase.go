package usecase

import (
	"context"

	"foundmoney/internal/domain/entity"

	"github.com/google/uuid"
)

// AutoFillInput is a claim form to pre-fill from the user's profile.
type AutoFillInput struct {
	FormFields   map[string]entity.FormField `json:"form_fields" validate:"required,min=1"`
	MoneyFoundID *uuid.UUID                  `json:"money_found_id,omitempty"`
}

// AutoFillResult reports the filled values. Success is false when a required
// field could not be filled; MissingFields then names them.
type AutoFillResult struct {
	Success       bool           `json:"success"`
	FilledData    map[string]any `json:"filled_data"`
	MissingFields []string       `json:"missing_fields"`
	FormID        *uuid.UUID     `json:"form_id,omitempty"`
}

// GeneratePDFInput is the data printed on a claim document.
type GeneratePDFInput struct {
	FormData     map[string]any    `json:"form_data" validate:"required"`
	MoneyFoundID *uuid.UUID        `json:"money_found_id,omitempty"`
	ClaimInfo    *entity.ClaimInfo `json:"claim_info,omitempty"`
}

// GeneratePDFResult always carries the document. URL is empty when the
// document was not stored.
type GeneratePDFResult struct {
	PDFBase64 string     `json:"pdf_base64"`
	FileName  string     `json:"file_name"`
	URL       string     `json:"url,omitempty"`
	FormID    *uuid.UUID `json:"form_id,omitempty"`
}

// FormUsecase fills and renders claim forms.
type FormUsecase interface {
	AutoFill(ctx context.Context, userID uuid.UUID, input *AutoFillInput) (*AutoFillResult, error)
	GeneratePDF(ctx context.Context, userID uuid.UUID, input *GeneratePDFInput) (*GeneratePDFResult, error)
	GetForm(ctx context.Context, userID, formID uuid.UUID) (*entity.ClaimForm, error)
}
