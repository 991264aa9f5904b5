package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MoneyFoundModel mirrors the 'money_found' table.
// (user_id, source_type, external_id) is unique so re-discovered
// opportunities are upserted instead of duplicated.
type MoneyFoundModel struct {
	ID                      uuid.UUID                   `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID                  uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_money_found_natural_key,priority:1"`
	SourceType              string                      `gorm:"type:varchar(32);not null;uniqueIndex:idx_money_found_natural_key,priority:2"`
	ExternalID              string                      `gorm:"type:varchar(255);not null;uniqueIndex:idx_money_found_natural_key,priority:3"`
	Amount                  string                      `gorm:"type:varchar(100)"`
	AmountNumeric           *float64                    `gorm:"type:numeric(12,2)"`
	CompanyName             string                      `gorm:"type:varchar(255);not null"`
	Description             string                      `gorm:"type:text"`
	EligibilityRequirements string                      `gorm:"type:text"`
	ClaimURL                string                      `gorm:"type:text"`
	ClaimDeadline           *time.Time                  `gorm:"type:date"`
	Status                  string                      `gorm:"type:varchar(20);not null;default:'unclaimed';index"`
	ReceivedAmount          *float64                    `gorm:"type:numeric(12,2)"`
	MatchScore              int                         `gorm:"not null;default:0"`
	MatchReasons            datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Metadata                datatypes.JSON              `gorm:"type:jsonb;not null;default:'{}'"`
	ClaimedAt               *time.Time
	ReceivedAt              *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (MoneyFoundModel) TableName() string {
	return "money_found"
}
