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
	"gorm.io/plugin/dbresolver"
)

// refreshedOnRediscovery are the columns an upsert overwrites. Claim progress
// (status, received amount, claimed/received timestamps) is user-owned and kept.
var refreshedOnRediscovery = []string{
	"amount",
	"amount_numeric",
	"company_name",
	"description",
	"eligibility_requirements",
	"claim_url",
	"claim_deadline",
	"match_score",
	"match_reasons",
	"metadata",
	"updated_at",
}

// moneyFoundRepository implements the repository.MoneyFoundRepository interface.
type moneyFoundRepository struct {
	db *gorm.DB
}

// NewMoneyFoundRepository is the constructor for moneyFoundRepository.
func NewMoneyFoundRepository(db *gorm.DB) repository.MoneyFoundRepository {
	return &moneyFoundRepository{
		db: db,
	}
}

// UpsertBatch writes all records in one statement keyed by the natural key,
// then reloads them from the primary so callers see stored IDs and statuses.
func (repo *moneyFoundRepository) UpsertBatch(ctx context.Context, records []*entity.MoneyFoundRecord) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]*model.MoneyFoundModel, 0, len(records))
	for _, record := range records {
		models = append(models, fromMoneyFoundDomain(record))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "source_type"},
				{Name: "external_id"},
			},
			DoUpdates: clause.AssignmentColumns(refreshedOnRediscovery),
		}).
		Create(&models).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert money-found records")
	}

	return repo.reload(ctx, records)
}

func (repo *moneyFoundRepository) reload(ctx context.Context, records []*entity.MoneyFoundRecord) error {
	first := records[0]
	externalIDs := make([]string, 0, len(records))
	for _, record := range records {
		externalIDs = append(externalIDs, record.ExternalID)
	}

	var stored []*model.MoneyFoundModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND source_type = ? AND external_id IN ?", first.UserID, string(first.SourceType), externalIDs).
		Find(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload upserted records")
	}

	byExternalID := make(map[string]*model.MoneyFoundModel, len(stored))
	for _, row := range stored {
		byExternalID[row.SourceType+"/"+row.ExternalID] = row
	}

	for _, record := range records {
		row, ok := byExternalID[string(record.SourceType)+"/"+record.ExternalID]
		if !ok {
			continue
		}
		record.ID = row.ID
		record.Status = entity.RecordStatus(row.Status)
		record.ReceivedAmount = row.ReceivedAmount
		record.ClaimedAt = row.ClaimedAt
		record.ReceivedAt = row.ReceivedAt
		record.CreatedAt = row.CreatedAt
		record.UpdatedAt = row.UpdatedAt
	}

	return nil
}

// ListByUser reads history from a replica when one is configured.
func (repo *moneyFoundRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter repository.MoneyFoundFilter) ([]*entity.MoneyFoundRecord, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("user_id = ?", userID)

	if filter.SourceType != "" {
		query = query.Where("source_type = ?", string(filter.SourceType))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []*model.MoneyFoundModel
	if err := query.
		Order("match_score DESC").
		Order("amount_numeric DESC NULLS LAST").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list money-found records")
	}

	records := make([]*entity.MoneyFoundRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toMoneyFoundDomain(row))
	}

	return records, nil
}

// FindByID retrieves a record scoped to its owner.
func (repo *moneyFoundRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.MoneyFoundRecord, error) {
	var row model.MoneyFoundModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMoneyFoundNotFound
		}

		return nil, errors.Wrap(err, "failed to find money-found record")
	}

	return toMoneyFoundDomain(&row), nil
}

// UpdateStatus is a compare-and-set on the status column.
func (repo *moneyFoundRepository) UpdateStatus(ctx context.Context, record *entity.MoneyFoundRecord, from entity.RecordStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MoneyFoundModel{}).
		Where("id = ? AND user_id = ? AND status = ?", record.ID, record.UserID, string(from)).
		Updates(map[string]any{
			"status":          string(record.Status),
			"claimed_at":      record.ClaimedAt,
			"received_at":     record.ReceivedAt,
			"received_amount": record.ReceivedAmount,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update money-found status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMoneyFoundStatusConflict
	}

	return nil
}

// --- Mapper Functions ---

func toMoneyFoundDomain(data *model.MoneyFoundModel) *entity.MoneyFoundRecord {
	if data == nil {
		return nil
	}

	reasons := []string(data.MatchReasons)
	if reasons == nil {
		reasons = []string{}
	}

	return &entity.MoneyFoundRecord{
		ID:                      data.ID,
		UserID:                  data.UserID,
		SourceType:              entity.SourceType(data.SourceType),
		ExternalID:              data.ExternalID,
		Amount:                  data.Amount,
		AmountNumeric:           data.AmountNumeric,
		CompanyName:             data.CompanyName,
		Description:             data.Description,
		EligibilityRequirements: data.EligibilityRequirements,
		ClaimURL:                data.ClaimURL,
		ClaimDeadline:           data.ClaimDeadline,
		Status:                  entity.RecordStatus(data.Status),
		ReceivedAmount:          data.ReceivedAmount,
		MatchScore:              data.MatchScore,
		MatchReasons:            reasons,
		Metadata:                []byte(data.Metadata),
		ClaimedAt:               data.ClaimedAt,
		ReceivedAt:              data.ReceivedAt,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

func fromMoneyFoundDomain(data *entity.MoneyFoundRecord) *model.MoneyFoundModel {
	if data == nil {
		return nil
	}

	metadata := datatypes.JSON(data.Metadata)
	if len(metadata) == 0 {
		metadata = datatypes.JSON("{}")
	}
	status := data.Status
	if status == "" {
		status = entity.StatusUnclaimed
	}

	return &model.MoneyFoundModel{
		ID:                      data.ID,
		UserID:                  data.UserID,
		SourceType:              string(data.SourceType),
		ExternalID:              data.ExternalID,
		Amount:                  data.Amount,
		AmountNumeric:           data.AmountNumeric,
		CompanyName:             data.CompanyName,
		Description:             data.Description,
		EligibilityRequirements: data.EligibilityRequirements,
		ClaimURL:                data.ClaimURL,
		ClaimDeadline:           data.ClaimDeadline,
		Status:                  string(status),
		ReceivedAmount:          data.ReceivedAmount,
		MatchScore:              data.MatchScore,
		MatchReasons:            datatypes.JSONSlice[string](data.MatchReasons),
		Metadata:                metadata,
		ClaimedAt:               data.ClaimedAt,
		ReceivedAt:              data.ReceivedAt,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}
