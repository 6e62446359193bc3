package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HealingProgress tracks one detected issue over time. IssueName is copied
// from the scan at creation and never synced back; percentage and status are
// settable independently of each other.
type HealingProgress struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	RelatedScanID      *uuid.UUID     `gorm:"type:uuid" json:"related_scan_id,omitempty"`
	IssueName          string         `json:"issue_name"`
	ProgressPercentage int            `gorm:"default:0" json:"progress_percentage"`
	Status             string         `gorm:"default:'active'" json:"status"` // "active", "improving", "resolved"
	StartDate          time.Time      `gorm:"type:date" json:"start_date"`
	Notes              *string        `gorm:"type:text" json:"notes,omitempty"`
	Photos             datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"photos"`

	User        *User     `gorm:"foreignKey:UserID"`
	RelatedScan *SkinScan `gorm:"foreignKey:RelatedScanID"`
	Timestamp
}
