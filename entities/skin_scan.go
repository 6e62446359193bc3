package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SkinScan is immutable after creation: there is no update path, only
// deletion, which cascades to the healing progress records derived from it.
type SkinScan struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID                 uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	ScanDate               time.Time      `gorm:"type:timestamp" json:"scan_date"`
	ImageURL               string         `json:"image_url"`
	DetectedIssues         datatypes.JSON `gorm:"type:jsonb" json:"detected_issues"`
	OverallSkinHealthScore int            `json:"overall_skin_health_score"`
	Recommendations        datatypes.JSON `gorm:"type:jsonb" json:"recommendations"`
	AnalysisNotes          string         `gorm:"type:text" json:"analysis_notes,omitempty"`

	User            *User              `gorm:"foreignKey:UserID"`
	ProgressRecords []*HealingProgress `gorm:"foreignKey:RelatedScanID;constraint:OnDelete:CASCADE"`
	Timestamp
}
