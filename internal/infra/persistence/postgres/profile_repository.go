// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"foundmoney/internal/domain/entity"
	domainerrors "foundmoney/internal/domain/errors"
	"foundmoney/internal/domain/repository"
	"foundmoney/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile and preloads its addresses.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_current DESC, created_at ASC")
		}).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// SaveMailboxGrant stores the OAuth tokens and flips the connected flag.
func (repo *profileRepository) SaveMailboxGrant(ctx context.Context, userID uuid.UUID, grant *entity.MailboxGrant) error {
	var expiry *time.Time
	if !grant.Expiry.IsZero() {
		expiry = &grant.Expiry
	}

	updates := map[string]any{
		"gmail_connected":    true,
		"gmail_access_token": grant.AccessToken,
		"gmail_token_expiry": expiry,
	}
	// Google only returns a refresh token on first consent; keep the stored one otherwise.
	if grant.RefreshToken != "" {
		updates["gmail_refresh_token"] = grant.RefreshToken
	}

	return repo.updateProfile(ctx, userID, updates, "failed to save mailbox grant")
}

// ClearMailboxGrant forgets stored tokens.
func (repo *profileRepository) ClearMailboxGrant(ctx context.Context, userID uuid.UUID) error {
	return repo.updateProfile(ctx, userID, map[string]any{
		"gmail_connected":     false,
		"gmail_access_token":  "",
		"gmail_refresh_token": "",
		"gmail_token_expiry":  nil,
	}, "failed to clear mailbox grant")
}

// UpdateSubscription applies a billing change.
func (repo *profileRepository) UpdateSubscription(ctx context.Context, userID uuid.UUID, update repository.SubscriptionUpdate) error {
	updates := make(map[string]any, 3)
	if update.Status != "" {
		updates["subscription_status"] = string(update.Status)
	}
	if update.ExpiresAt != nil {
		updates["subscription_expires_at"] = *update.ExpiresAt
	}
	if update.Tier != "" {
		updates["subscription_tier"] = string(update.Tier)
	}

	return repo.updateProfile(ctx, userID, updates, "failed to update subscription")
}

func (repo *profileRepository) updateProfile(ctx context.Context, userID uuid.UUID, updates map[string]any, details string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", userID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	profile := &entity.UserProfile{
		ID:                    data.ID,
		FirstName:             data.FirstName,
		LastName:              data.LastName,
		Email:                 data.Email,
		Phone:                 data.Phone,
		MailboxConnected:      data.GmailConnected,
		SubscriptionStatus:    entity.SubscriptionStatus(data.SubscriptionStatus),
		SubscriptionTier:      entity.SubscriptionTier(data.SubscriptionTier),
		SubscriptionExpiresAt: data.SubscriptionExpiresAt,
		TrialEndsAt:           data.TrialEndsAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}

	if data.GmailAccessToken != "" || data.GmailRefreshToken != "" {
		grant := &entity.MailboxGrant{
			AccessToken:  data.GmailAccessToken,
			RefreshToken: data.GmailRefreshToken,
		}
		if data.GmailTokenExpiry != nil {
			grant.Expiry = *data.GmailTokenExpiry
		}
		profile.Mailbox = grant
	}

	profile.Addresses = make([]*entity.Address, 0, len(data.Addresses))
	for _, addrM := range data.Addresses {
		profile.Addresses = append(profile.Addresses, toAddressDomain(addrM))
	}

	return profile
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		UserID:     data.UserID,
		Label:      data.Label,
		Street:     data.Street,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		IsCurrent:  data.IsCurrent,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
