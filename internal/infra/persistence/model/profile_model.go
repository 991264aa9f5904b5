package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. ID is the identity provider's user ID.
type ProfileModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName             string    `gorm:"type:varchar(100)"`
	LastName              string    `gorm:"type:varchar(100)"`
	Email                 string    `gorm:"type:varchar(255)"`
	Phone                 string    `gorm:"type:varchar(50)"`
	GmailConnected        bool      `gorm:"not null;default:false"`
	GmailAccessToken      string    `gorm:"type:text"`
	GmailRefreshToken     string    `gorm:"type:text"`
	GmailTokenExpiry      *time.Time
	SubscriptionStatus    string `gorm:"type:varchar(20);not null;default:'free'"`
	SubscriptionTier      string `gorm:"type:varchar(20)"`
	SubscriptionExpiresAt *time.Time
	TrialEndsAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Addresses []*AddressModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// AddressModel mirrors the 'addresses' table.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Label      string    `gorm:"type:varchar(50)"`
	Street     string    `gorm:"type:varchar(255)"`
	City       string    `gorm:"type:varchar(100)"`
	State      string    `gorm:"type:varchar(2)"`
	PostalCode string    `gorm:"type:varchar(20)"`
	IsCurrent  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}

// All lists every persisted model in dependency order.
func All() []any {
	return []any{
		&ProfileModel{},
		&AddressModel{},
		&MoneyFoundModel{},
		&ClaimFormModel{},
		&EmailScanModel{},
		&AnalyticsEventModel{},
		&UserDeviceModel{},
	}
}
