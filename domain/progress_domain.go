package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

const (
	ProgressStatusActive    = "active"
	ProgressStatusImproving = "improving"
	ProgressStatusResolved  = "resolved"
)

var ValidProgressStatuses = []string{
	ProgressStatusActive,
	ProgressStatusImproving,
	ProgressStatusResolved,
}

var (
	MessageSuccessGetProgressSummary  = "progress summary retrieved successfully"
	MessageSuccessGetActiveProgress   = "active progress retrieved successfully"
	MessageSuccessGetResolvedProgress = "resolved progress retrieved successfully"
	MessageSuccessUpdateProgress      = "progress updated successfully"
	MessageSuccessAddProgressPhoto    = "progress photo added successfully"
	MessageSuccessGetHealingPlan      = "healing plan retrieved successfully"
	MessageSuccessDeleteProgress      = "progress record deleted successfully"

	MessageFailedGetProgressSummary = "failed to fetch progress summary"
	MessageFailedGetProgress        = "failed to fetch progress"
	MessageFailedUpdateProgress     = "failed to update progress"
	MessageFailedAddProgressPhoto   = "failed to add progress photo"
	MessageFailedGetHealingPlan     = "failed to generate healing plan"
	MessageFailedDeleteProgress     = "failed to delete progress record"

	ErrProgressNotFound  = errors.New("progress record not found")
	ErrInvalidPercentage = errors.New("progress_percentage must be between 0 and 100")
	ErrInvalidStatus     = errors.New("status must be one of: active, improving, resolved")
	ErrNoFieldsToUpdate  = errors.New("at least one field (progress_percentage, status, notes) must be provided")
)

type (
	ProgressPhoto struct {
		URL   string    `json:"url"`
		Date  time.Time `json:"date"`
		Notes *string   `json:"notes,omitempty"`
	}

	// OptionalString distinguishes an absent JSON field from an explicit
	// null, so a partial update can clear a column with "notes": null.
	OptionalString struct {
		Present bool
		Value   *string
	}

	UpdateProgressRequest struct {
		ProgressPercentage *int           `json:"progress_percentage" validate:"omitempty,min=0,max=100"`
		Status             *string        `json:"status" validate:"omitempty,oneof=active improving resolved"`
		Notes              OptionalString `json:"notes"`
	}

	AddProgressPhotoRequest struct {
		Photo    []byte
		MimeType string
		Notes    *string
	}

	HealingPlanRequest struct {
		IssueName string `json:"issue_name"`
	}

	ProgressResponse struct {
		ID                 string          `json:"id"`
		RelatedScanID      *string         `json:"related_scan_id,omitempty"`
		IssueName          string          `json:"issue_name"`
		ProgressPercentage int             `json:"progress_percentage"`
		Status             string          `json:"status"`
		StartDate          time.Time       `json:"start_date"`
		LastUpdated        time.Time       `json:"last_updated"`
		Notes              *string         `json:"notes,omitempty"`
		Photos             []ProgressPhoto `json:"photos"`
	}

	ProgressSummaryResponse struct {
		ActiveIssues   int `json:"activeIssues"`
		AvgProgress    int `json:"avgProgress"`
		ResolvedIssues int `json:"resolvedIssues"`
	}

	DailyRoutine struct {
		Morning []string `json:"morning"`
		Evening []string `json:"evening"`
	}

	HealingPlan struct {
		Overview         string       `json:"overview"`
		CommonCauses     []string     `json:"commonCauses"`
		DailyRoutine     DailyRoutine `json:"dailyRoutine"`
		Ingredients      []string     `json:"ingredients"`
		LifestyleChanges []string     `json:"lifestyleChanges"`
	}
)

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
