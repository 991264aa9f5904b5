package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "foundmoney/internal/delivery/context"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
	"foundmoney/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const pdfContentType = "application/pdf"

type formService struct {
	profileRepo    repository.ProfileRepository
	moneyFoundRepo repository.MoneyFoundRepository
	claimFormRepo  repository.ClaimFormRepository
	filler         service.FormFiller
	renderer       service.DocumentRenderer
	store          service.DocumentStore
	logger         *slog.Logger
	now            func() time.Time
}

// FormServiceParams holds the dependencies of the claim form use case.
type FormServiceParams struct {
	fx.In

	Logger         *slog.Logger
	ProfileRepo    repository.ProfileRepository
	MoneyFoundRepo repository.MoneyFoundRepository
	ClaimFormRepo  repository.ClaimFormRepository
	Filler         service.FormFiller
	Renderer       service.DocumentRenderer
	Store          service.DocumentStore
}

// NewFormService creates the claim form use case.
func NewFormService(params FormServiceParams) usecase.FormUsecase {
	return &formService{
		profileRepo:    params.ProfileRepo,
		moneyFoundRepo: params.MoneyFoundRepo,
		claimFormRepo:  params.ClaimFormRepo,
		filler:         params.Filler,
		renderer:       params.Renderer,
		store:          params.Store,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// AutoFill fills the form from the profile. A fully filled form attached to a
// record is saved as a draft.
func (s *formService) AutoFill(ctx context.Context, userID uuid.UUID, input *usecase.AutoFillInput) (*usecase.AutoFillResult, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load profile")
	}

	var record *entity.MoneyFoundRecord
	if input.MoneyFoundID != nil {
		if record, err = s.findRecord(ctx, userID, *input.MoneyFoundID); err != nil {
			return nil, err
		}
	}

	filled, err := s.filler.Fill(ctx, input.FormFields, formUserData(profile, record))
	if err != nil {
		return nil, domainerrors.ErrFormFillFailed.WrapMessage(err.Error())
	}

	result := &usecase.AutoFillResult{
		Success:       true,
		FilledData:    filled,
		MissingFields: missingRequired(input.FormFields, filled),
	}
	if len(result.MissingFields) > 0 {
		result.Success = false

		return result, nil
	}

	if record != nil {
		form := &entity.ClaimForm{
			UserID:       userID,
			MoneyFoundID: record.ID,
			FormData:     filled,
			Status:       entity.ClaimFormDraft,
		}
		if err := s.claimFormRepo.Upsert(ctx, form); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "Failed to save claim form draft",
				slog.String("money_found_id", record.ID.String()),
				slog.Any("error", err),
			)
		} else {
			result.FormID = &form.ID
		}
	}

	return result, nil
}

// GeneratePDF renders the document and, for a known record, stores it and
// marks the form completed. Storage problems leave URL empty.
func (s *formService) GeneratePDF(ctx context.Context, userID uuid.UUID, input *usecase.GeneratePDFInput) (*usecase.GeneratePDFResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	claim := input.ClaimInfo
	var record *entity.MoneyFoundRecord
	if input.MoneyFoundID != nil {
		var err error
		if record, err = s.findRecord(ctx, userID, *input.MoneyFoundID); err != nil {
			return nil, err
		}
		if claim == nil {
			claim = claimInfoFromRecord(record)
		} else if claim.ClaimURL == "" {
			claim.ClaimURL = record.ClaimURL
		}
	}

	now := s.now()
	data, err := s.renderer.RenderClaimForm(ctx, &service.ClaimDocument{
		Claim:       claim,
		FormData:    input.FormData,
		GeneratedAt: now,
	})
	if err != nil {
		return nil, domainerrors.ErrDocumentFailed.WrapMessage(err.Error())
	}

	result := &usecase.GeneratePDFResult{
		PDFBase64: base64.StdEncoding.EncodeToString(data),
		FileName:  fmt.Sprintf("claim_%d.pdf", now.UnixMilli()),
	}
	if record == nil {
		return result, nil
	}

	key := fmt.Sprintf("%s/%s_%d.pdf", userID, record.ID, now.UnixMilli())
	result.FileName = key[strings.LastIndex(key, "/")+1:]

	url, err := s.store.Put(ctx, key, data, pdfContentType)
	if err != nil {
		logger.WarnContext(ctx, "Failed to upload claim document",
			slog.String("key", key),
			slog.Any("error", err),
		)

		return result, nil
	}
	result.URL = url

	form := &entity.ClaimForm{
		UserID:       userID,
		MoneyFoundID: record.ID,
		FormData:     input.FormData,
		DocumentKey:  key,
		DocumentURL:  url,
		Status:       entity.ClaimFormCompleted,
	}
	if err := s.claimFormRepo.Upsert(ctx, form); err != nil {
		logger.WarnContext(ctx, "Failed to save completed claim form",
			slog.String("money_found_id", record.ID.String()),
			slog.Any("error", err),
		)
	} else {
		result.FormID = &form.ID
	}

	return result, nil
}

// GetForm returns a stored form owned by the user.
func (s *formService) GetForm(ctx context.Context, userID, formID uuid.UUID) (*entity.ClaimForm, error) {
	form, err := s.claimFormRepo.FindByID(ctx, userID, formID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimFormNotFound) {
			return nil, domainerrors.ErrFormNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load claim form")
	}

	return form, nil
}

func (s *formService) findRecord(ctx context.Context, userID, recordID uuid.UUID) (*entity.MoneyFoundRecord, error) {
	record, err := s.moneyFoundRepo.FindByID(ctx, userID, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrMoneyFoundNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load money-found record")
	}

	return record, nil
}

// formUserData is everything the filler may copy into a form.
func formUserData(profile *entity.UserProfile, record *entity.MoneyFoundRecord) map[string]any {
	data := map[string]any{
		"first_name": profile.FirstName,
		"last_name":  profile.LastName,
		"full_name":  profile.FullName(),
		"email":      profile.Email,
		"phone":      profile.Phone,
	}

	previous := make([]map[string]any, 0, len(profile.Addresses))
	for _, addr := range profile.Addresses {
		if addr == nil {
			continue
		}
		fields := map[string]any{
			"street":      addr.Street,
			"city":        addr.City,
			"state":       addr.State,
			"postal_code": addr.PostalCode,
		}
		if addr.IsCurrent {
			data["address"] = fields
		} else {
			previous = append(previous, fields)
		}
	}
	if len(previous) > 0 {
		data["previous_addresses"] = previous
	}

	if record != nil {
		data["claim"] = map[string]any{
			"company":     record.CompanyName,
			"description": record.Description,
			"amount":      record.Amount,
			"claim_url":   record.ClaimURL,
		}
	}

	return data
}

// missingRequired lists required fields left empty, sorted by key.
func missingRequired(fields map[string]entity.FormField, filled map[string]any) []string {
	missing := make([]string, 0)
	for key, field := range fields {
		if !field.Required {
			continue
		}
		value, ok := filled[key]
		if !ok || value == nil {
			missing = append(missing, key)

			continue
		}
		if str, isString := value.(string); isString && strings.TrimSpace(str) == "" {
			missing = append(missing, key)
		}
	}
	slices.Sort(missing)

	return missing
}

func claimInfoFromRecord(record *entity.MoneyFoundRecord) *entity.ClaimInfo {
	return &entity.ClaimInfo{
		ID:       record.ID.String(),
		Company:  record.CompanyName,
		Title:    record.Description,
		Amount:   record.Amount,
		ClaimURL: record.ClaimURL,
	}
}
