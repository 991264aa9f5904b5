package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClaimFormModel mirrors the 'claim_forms' table, one row per (user, record).
type ClaimFormModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_claim_forms_user_record,priority:1"`
	MoneyFoundID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_claim_forms_user_record,priority:2"`
	FormData     datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	DocumentKey  string            `gorm:"type:text"`
	DocumentURL  string            `gorm:"type:text"`
	Status       string            `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClaimFormModel) TableName() string {
	return "claim_forms"
}
