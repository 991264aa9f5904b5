package postgres

import (
	"context"

	"foundmoney/internal/domain/entity"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// claimFormRepository implements the repository.ClaimFormRepository interface.
type claimFormRepository struct {
	db *gorm.DB
}

// NewClaimFormRepository is the constructor for claimFormRepository.
func NewClaimFormRepository(db *gorm.DB) repository.ClaimFormRepository {
	return &claimFormRepository{
		db: db,
	}
}

// Upsert keeps a single form per (user_id, money_found_id).
func (repo *claimFormRepository) Upsert(ctx context.Context, form *entity.ClaimForm) error {
	formM := fromClaimFormDomain(form)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "money_found_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"form_data", "document_key", "document_url", "status", "updated_at"}),
		}).
		Create(formM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMoneyFoundNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert claim form")
	}

	form.ID = formM.ID
	form.CreatedAt = formM.CreatedAt
	form.UpdatedAt = formM.UpdatedAt

	return nil
}

// FindByID retrieves a form scoped to its owner.
func (repo *claimFormRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.ClaimForm, error) {
	return repo.findOne(ctx, "id = ? AND user_id = ?", id, userID)
}

// FindByRecord retrieves the form attached to a money-found record.
func (repo *claimFormRepository) FindByRecord(ctx context.Context, userID, moneyFoundID uuid.UUID) (*entity.ClaimForm, error) {
	return repo.findOne(ctx, "user_id = ? AND money_found_id = ?", userID, moneyFoundID)
}

func (repo *claimFormRepository) findOne(ctx context.Context, query string, args ...any) (*entity.ClaimForm, error) {
	var formM model.ClaimFormModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&formM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimFormNotFound
		}

		return nil, errors.Wrap(err, "failed to find claim form")
	}

	return toClaimFormDomain(&formM), nil
}

// --- Mapper Functions ---

func toClaimFormDomain(data *model.ClaimFormModel) *entity.ClaimForm {
	if data == nil {
		return nil
	}

	formData := map[string]any(data.FormData)
	if formData == nil {
		formData = map[string]any{}
	}

	return &entity.ClaimForm{
		ID:           data.ID,
		UserID:       data.UserID,
		MoneyFoundID: data.MoneyFoundID,
		FormData:     formData,
		DocumentKey:  data.DocumentKey,
		DocumentURL:  data.DocumentURL,
		Status:       entity.ClaimFormStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromClaimFormDomain(data *entity.ClaimForm) *model.ClaimFormModel {
	if data == nil {
		return nil
	}

	formData := datatypes.JSONMap(data.FormData)
	if formData == nil {
		formData = datatypes.JSONMap{}
	}

	return &model.ClaimFormModel{
		ID:           data.ID,
		UserID:       data.UserID,
		MoneyFoundID: data.MoneyFoundID,
		FormData:     formData,
		DocumentKey:  data.DocumentKey,
		DocumentURL:  data.DocumentURL,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
