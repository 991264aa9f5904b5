package postgres

import (
	"context"

	"foundmoney/internal/domain/entity"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// emailScanRepository implements the repository.EmailScanRepository interface.
type emailScanRepository struct {
	db *gorm.DB
}

// NewEmailScanRepository is the constructor for emailScanRepository.
func NewEmailScanRepository(db *gorm.DB) repository.EmailScanRepository {
	return &emailScanRepository{db: db}
}

// Create records one scan run.
func (repo *emailScanRepository) Create(ctx context.Context, scan *entity.EmailScan) error {
	scanM := &model.EmailScanModel{
		ID:                 scan.ID,
		UserID:             scan.UserID,
		EmailsScanned:      scan.EmailsScanned,
		OpportunitiesFound: scan.OpportunitiesFound,
		Status:             string(scan.Status),
		ErrorMessage:       scan.ErrorMessage,
		StartedAt:          scan.StartedAt,
		CompletedAt:        scan.CompletedAt,
	}

	if err := repo.db.WithContext(ctx).Create(scanM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record email scan")
	}
	scan.ID = scanM.ID

	return nil
}

// analyticsRepository implements the repository.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// CreateBatch inserts all events in a single statement.
func (repo *analyticsRepository) CreateBatch(ctx context.Context, events []*entity.AnalyticsEvent) error {
	if len(events) == 0 {
		return nil
	}

	models := make([]*model.AnalyticsEventModel, 0, len(events))
	for _, event := range events {
		properties := datatypes.JSONMap(event.Properties)
		if properties == nil {
			properties = datatypes.JSONMap{}
		}
		models = append(models, &model.AnalyticsEventModel{
			ID:         event.ID,
			UserID:     event.UserID,
			EventName:  event.Name,
			Properties: properties,
			CreatedAt:  event.OccurredAt,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record analytics events")
	}

	for i, m := range models {
		events[i].ID = m.ID
	}

	return nil
}
