package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubmitScan   = "scan completed successfully"
	MessageSuccessGetScans     = "scans retrieved successfully"
	MessageSuccessGetScan      = "scan retrieved successfully"
	MessageSuccessDeleteScan   = "scan deleted successfully"
	MessageSuccessGetScanStats = "scan statistics retrieved successfully"

	MessageFailedSubmitScan   = "failed to process scan"
	MessageFailedGetScans     = "failed to retrieve scans"
	MessageFailedDeleteScan   = "failed to delete scan"
	MessageFailedGetScanStats = "failed to retrieve scan statistics"

	ErrImageRequired      = errors.New("image file is required")
	ErrInvalidImageFormat = errors.New("invalid file type, allowed types: image/jpeg, image/jpg, image/png, image/webp")
	ErrImageTooLarge      = errors.New("file too large, maximum size: 10MB")
	ErrScanNotFound       = errors.New("scan not found")
	ErrAnalysisFailed     = errors.New("skin analysis failed")
)

type (
	DetectedIssue struct {
		Name        string  `json:"name"`
		Severity    string  `json:"severity"` // "mild", "moderate", "severe"
		Location    string  `json:"location"`
		Description string  `json:"description"`
		Score       int     `json:"score"`      // 0-100, higher = more severe
		Confidence  float64 `json:"confidence"` // 0.0-1.0
	}

	Recommendation struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Category    string   `json:"category"` // "skincare", "lifestyle", "diet", "medical"
		Priority    string   `json:"priority"` // "high", "medium", "low"
		Ingredients []string `json:"ingredients,omitempty"`
	}

	SkinAnalysisResult struct {
		OverallScore    int                    `json:"overallScore"`
		Issues          []DetectedIssue        `json:"issues"`
		Recommendations []Recommendation       `json:"recommendations"`
		Metadata        map[string]interface{} `json:"metadata"`
	}

	SubmitScanRequest struct {
		Image    []byte
		MimeType string
	}

	ScanResponse struct {
		ID                     string           `json:"id"`
		ScanDate               time.Time        `json:"scan_date"`
		ImageURL               string           `json:"image_url"`
		OverallSkinHealthScore int              `json:"overall_skin_health_score"`
		DetectedIssues         []DetectedIssue  `json:"detected_issues"`
		Recommendations        []Recommendation `json:"recommendations"`
	}

	SubmitScanResponse struct {
		Scan            ScanResponse       `json:"scan"`
		ProgressRecords []ProgressResponse `json:"progress_records"`
	}

	ScanSummaryResponse struct {
		ID                     string    `json:"id"`
		ScanDate               time.Time `json:"scan_date"`
		ImageURL               string    `json:"image_url"`
		OverallSkinHealthScore int       `json:"overall_skin_health_score"`
		IssuesCount            int       `json:"issues_count"`
	}

	ScanDetailResponse struct {
		ID                     string           `json:"id"`
		ScanDate               time.Time        `json:"scan_date"`
		ImageURL               string           `json:"image_url"`
		OverallSkinHealthScore int              `json:"overall_skin_health_score"`
		DetectedIssues         []DetectedIssue  `json:"detected_issues"`
		Recommendations        []Recommendation `json:"recommendations"`
		AnalysisNotes          string           `json:"analysis_notes,omitempty"`
		CreatedAt              time.Time        `json:"created_at"`
	}

	ScanStatsResponse struct {
		TotalScans          int `json:"totalScans"`
		AverageScore        int `json:"averageScore"`
		TotalIssuesDetected int `json:"totalIssuesDetected"`
	}
)
