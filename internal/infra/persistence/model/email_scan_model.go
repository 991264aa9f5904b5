package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EmailScanModel mirrors the 'email_scans' table.
type EmailScanModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	EmailsScanned      int       `gorm:"not null;default:0"`
	OpportunitiesFound int       `gorm:"not null;default:0"`
	Status             string    `gorm:"type:varchar(20);not null"`
	ErrorMessage       string    `gorm:"type:text"`
	StartedAt          time.Time
	CompletedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailScanModel) TableName() string {
	return "email_scans"
}

// AnalyticsEventModel mirrors the 'analytics_events' table.
type AnalyticsEventModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID     *uuid.UUID        `gorm:"type:uuid;index"`
	EventName  string            `gorm:"type:varchar(100);not null;index"`
	Properties datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnalyticsEventModel) TableName() string {
	return "analytics_events"
}
