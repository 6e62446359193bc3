package scan

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/entities"
	"SkinSense-Backend/internal/utils/storage"
	"SkinSense-Backend/pkg/analysis"
	"SkinSense-Backend/pkg/progress"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	ScanService interface {
		SubmitScan(ctx context.Context, req domain.SubmitScanRequest, userID string) (domain.SubmitScanResponse, error)
		GetUserScans(ctx context.Context, userID string, limit, offset int) ([]domain.ScanSummaryResponse, error)
		GetScanByID(ctx context.Context, id string, userID string) (domain.ScanDetailResponse, error)
		DeleteScan(ctx context.Context, id string, userID string) error
		GetUserScanStats(ctx context.Context, userID string) (domain.ScanStatsResponse, error)
	}

	scanService struct {
		scanRepository ScanRepository
		analyzer       analysis.SkinAnalyzer
		s3             storage.AwsS3
	}
)

func NewScanService(scanRepository ScanRepository, analyzer analysis.SkinAnalyzer, s3 storage.AwsS3) ScanService {
	return &scanService{
		scanRepository: scanRepository,
		analyzer:       analyzer,
		s3:             s3,
	}
}

// SubmitScan runs the intake pipeline in strict order: validate, analyze,
// upload, persist. Validation happens before any external call so a bad
// upload never touches the analyzer, the object store, or the database.
// Analysis is awaited before anything is persisted: a scan is never stored
// without its result.
func (s *scanService) SubmitScan(ctx context.Context, req domain.SubmitScanRequest, userID string) (domain.SubmitScanResponse, error) {
	if err := storage.ValidateImage(req.Image, req.MimeType); err != nil {
		return domain.SubmitScanResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubmitScanResponse{}, domain.ErrParseUUID
	}

	result, err := s.analyzer.Analyze(ctx, req.Image, req.MimeType)
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisFailed) {
			return domain.SubmitScanResponse{}, err
		}
		return domain.SubmitScanResponse{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}

	objectKey, err := s.s3.UploadBytes(req.Image, req.MimeType, storage.FolderScanImages, userID)
	if err != nil {
		return domain.SubmitScanResponse{}, err
	}
	imageURL := s.s3.GetPublicLinkKey(objectKey)

	issuesJSON, err := json.Marshal(result.Issues)
	if err != nil {
		return domain.SubmitScanResponse{}, err
	}
	recommendationsJSON, err := json.Marshal(result.Recommendations)
	if err != nil {
		return domain.SubmitScanResponse{}, err
	}
	metadataJSON, err := json.Marshal(result.Metadata)
	if err != nil {
		return domain.SubmitScanResponse{}, err
	}

	scanID := uuid.New()
	now := time.Now()

	skinScan := &entities.SkinScan{
		ID:                     scanID,
		UserID:                 userUUID,
		ScanDate:               now,
		ImageURL:               imageURL,
		DetectedIssues:         datatypes.JSON(issuesJSON),
		OverallSkinHealthScore: result.OverallScore,
		Recommendations:        datatypes.JSON(recommendationsJSON),
		AnalysisNotes:          string(metadataJSON),
	}

	records := make([]*entities.HealingProgress, 0, len(result.Issues))
	for _, issue := range result.Issues {
		relatedScanID := scanID
		var notes *string
		if issue.Description != "" {
			description := issue.Description
			notes = &description
		}
		records = append(records, &entities.HealingProgress{
			ID:                 uuid.New(),
			UserID:             userUUID,
			RelatedScanID:      &relatedScanID,
			IssueName:          issue.Name,
			ProgressPercentage: 0,
			Status:             domain.ProgressStatusActive,
			StartDate:          time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
			Notes:              notes,
			Photos:             datatypes.JSON([]byte("[]")),
		})
	}

	if err := s.scanRepository.CreateScanWithProgress(ctx, skinScan, records); err != nil {
		// The persisted state stays consistent; only the uploaded object
		// needs cleaning up, and losing it is tolerable.
		_ = s.s3.DeleteFile(objectKey)
		return domain.SubmitScanResponse{}, err
	}

	progressResponses := make([]domain.ProgressResponse, 0, len(records))
	for _, record := range records {
		progressResponses = append(progressResponses, progress.ToProgressResponse(record))
	}

	return domain.SubmitScanResponse{
		Scan: domain.ScanResponse{
			ID:                     skinScan.ID.String(),
			ScanDate:               skinScan.ScanDate,
			ImageURL:               skinScan.ImageURL,
			OverallSkinHealthScore: skinScan.OverallSkinHealthScore,
			DetectedIssues:         result.Issues,
			Recommendations:        result.Recommendations,
		},
		ProgressRecords: progressResponses,
	}, nil
}

func (s *scanService) GetUserScans(ctx context.Context, userID string, limit, offset int) ([]domain.ScanSummaryResponse, error) {
	scans, err := s.scanRepository.GetUserScans(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ScanSummaryResponse, 0, len(scans))
	for _, scan := range scans {
		summaries = append(summaries, domain.ScanSummaryResponse{
			ID:                     scan.ID.String(),
			ScanDate:               scan.ScanDate,
			ImageURL:               scan.ImageURL,
			OverallSkinHealthScore: scan.OverallSkinHealthScore,
			IssuesCount:            len(decodeIssues(scan.DetectedIssues)),
		})
	}

	return summaries, nil
}

func (s *scanService) GetScanByID(ctx context.Context, id string, userID string) (domain.ScanDetailResponse, error) {
	scan, err := s.scanRepository.GetScanByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScanDetailResponse{}, domain.ErrScanNotFound
		}
		return domain.ScanDetailResponse{}, err
	}

	var recommendations []domain.Recommendation
	_ = json.Unmarshal(scan.Recommendations, &recommendations)

	return domain.ScanDetailResponse{
		ID:                     scan.ID.String(),
		ScanDate:               scan.ScanDate,
		ImageURL:               scan.ImageURL,
		OverallSkinHealthScore: scan.OverallSkinHealthScore,
		DetectedIssues:         decodeIssues(scan.DetectedIssues),
		Recommendations:        recommendations,
		AnalysisNotes:          scan.AnalysisNotes,
		CreatedAt:              scan.CreatedAt,
	}, nil
}

func (s *scanService) DeleteScan(ctx context.Context, id string, userID string) error {
	scan, err := s.scanRepository.GetScanByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrScanNotFound
		}
		return err
	}

	rows, err := s.scanRepository.DeleteScan(ctx, id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrScanNotFound
	}

	if scan.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(scan.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return nil
}

func (s *scanService) GetUserScanStats(ctx context.Context, userID string) (domain.ScanStatsResponse, error) {
	scans, err := s.scanRepository.GetAllUserScans(ctx, userID)
	if err != nil {
		return domain.ScanStatsResponse{}, err
	}

	if len(scans) == 0 {
		return domain.ScanStatsResponse{}, nil
	}

	totalScore := 0
	totalIssues := 0
	for _, scan := range scans {
		totalScore += scan.OverallSkinHealthScore
		totalIssues += len(decodeIssues(scan.DetectedIssues))
	}

	return domain.ScanStatsResponse{
		TotalScans:          len(scans),
		AverageScore:        int(math.Round(float64(totalScore) / float64(len(scans)))),
		TotalIssuesDetected: totalIssues,
	}, nil
}

func decodeIssues(raw []byte) []domain.DetectedIssue {
	var issues []domain.DetectedIssue
	_ = json.Unmarshal(raw, &issues)
	return issues
}
