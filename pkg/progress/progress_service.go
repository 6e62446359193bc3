package progress

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/entities"
	"SkinSense-Backend/internal/utils/storage"
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
)

type (
	ProgressService interface {
		GetProgressSummary(ctx context.Context, userID string) (domain.ProgressSummaryResponse, error)
		GetActiveProgress(ctx context.Context, userID string) ([]domain.ProgressResponse, error)
		GetResolvedProgress(ctx context.Context, userID string) ([]domain.ProgressResponse, error)
		UpdateProgress(ctx context.Context, id string, userID string, req domain.UpdateProgressRequest) (domain.ProgressResponse, error)
		AddProgressPhoto(ctx context.Context, id string, userID string, req domain.AddProgressPhotoRequest) (domain.ProgressResponse, error)
		DeleteProgress(ctx context.Context, id string, userID string) error
		GetHealingPlan(issueName string) domain.HealingPlan
	}

	progressService struct {
		progressRepository ProgressRepository
		s3                 storage.AwsS3
	}
)

func NewProgressService(progressRepository ProgressRepository, s3 storage.AwsS3) ProgressService {
	return &progressService{
		progressRepository: progressRepository,
		s3:                 s3,
	}
}

// GetProgressSummary aggregates over all of the owner's records. The average
// only covers non-resolved records and is 0 when there are none.
func (s *progressService) GetProgressSummary(ctx context.Context, userID string) (domain.ProgressSummaryResponse, error) {
	records, err := s.progressRepository.GetUserProgress(ctx, userID)
	if err != nil {
		return domain.ProgressSummaryResponse{}, err
	}

	summary := domain.ProgressSummaryResponse{}
	sum := 0
	for _, record := range records {
		if record.Status == domain.ProgressStatusResolved {
			summary.ResolvedIssues++
			continue
		}
		summary.ActiveIssues++
		sum += record.ProgressPercentage
	}

	if summary.ActiveIssues > 0 {
		summary.AvgProgress = int(math.Round(float64(sum) / float64(summary.ActiveIssues)))
	}

	return summary, nil
}

func (s *progressService) GetActiveProgress(ctx context.Context, userID string) ([]domain.ProgressResponse, error) {
	records, err := s.progressRepository.GetActiveProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProgressResponses(records), nil
}

func (s *progressService) GetResolvedProgress(ctx context.Context, userID string) ([]domain.ProgressResponse, error) {
	records, err := s.progressRepository.GetResolvedProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProgressResponses(records), nil
}

// UpdateProgress applies a partial merge of the three writable fields.
// Percentage and status are validated but never coupled: setting
// status=resolved does not touch the percentage, and vice versa.
func (s *progressService) UpdateProgress(ctx context.Context, id string, userID string, req domain.UpdateProgressRequest) (domain.ProgressResponse, error) {
	updates := map[string]interface{}{}

	if req.ProgressPercentage != nil {
		if *req.ProgressPercentage < 0 || *req.ProgressPercentage > 100 {
			return domain.ProgressResponse{}, domain.ErrInvalidPercentage
		}
		updates["progress_percentage"] = *req.ProgressPercentage
	}

	if req.Status != nil {
		if !isValidStatus(*req.Status) {
			return domain.ProgressResponse{}, domain.ErrInvalidStatus
		}
		updates["status"] = *req.Status
	}

	if req.Notes.Present {
		// An explicit null clears the column; Value is a typed nil then.
		updates["notes"] = req.Notes.Value
	}

	if len(updates) == 0 {
		return domain.ProgressResponse{}, domain.ErrNoFieldsToUpdate
	}

	rows, err := s.progressRepository.UpdateProgressFields(ctx, id, userID, updates)
	if err != nil {
		return domain.ProgressResponse{}, err
	}
	if rows == 0 {
		return domain.ProgressResponse{}, domain.ErrProgressNotFound
	}

	record, err := s.progressRepository.GetProgressByID(ctx, id, userID)
	if err != nil {
		return domain.ProgressResponse{}, err
	}

	return ToProgressResponse(record), nil
}

func (s *progressService) AddProgressPhoto(ctx context.Context, id string, userID string, req domain.AddProgressPhotoRequest) (domain.ProgressResponse, error) {
	if err := storage.ValidateImage(req.Photo, req.MimeType); err != nil {
		return domain.ProgressResponse{}, err
	}

	objectKey, err := s.s3.UploadBytes(req.Photo, req.MimeType, storage.FolderProgressPhotos, userID)
	if err != nil {
		return domain.ProgressResponse{}, err
	}

	photo := domain.ProgressPhoto{
		URL:   s.s3.GetPublicLinkKey(objectKey),
		Date:  time.Now(),
		Notes: req.Notes,
	}

	photoJSON, err := json.Marshal(photo)
	if err != nil {
		return domain.ProgressResponse{}, err
	}

	rows, err := s.progressRepository.AppendProgressPhoto(ctx, id, userID, photoJSON)
	if err != nil {
		return domain.ProgressResponse{}, err
	}
	if rows == 0 {
		// The upload stays behind as an orphan; acceptable, same as scans.
		return domain.ProgressResponse{}, domain.ErrProgressNotFound
	}

	record, err := s.progressRepository.GetProgressByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProgressResponse{}, domain.ErrProgressNotFound
		}
		return domain.ProgressResponse{}, err
	}

	return ToProgressResponse(record), nil
}

// DeleteProgress is idempotent: deleting a record that is already gone is
// success, not an error.
func (s *progressService) DeleteProgress(ctx context.Context, id string, userID string) error {
	_, err := s.progressRepository.DeleteProgress(ctx, id, userID)
	return err
}

func (s *progressService) GetHealingPlan(issueName string) domain.HealingPlan {
	if plan, ok := healingPlanTemplates[issueName]; ok {
		return plan
	}
	return healingPlanTemplates["Acne"]
}

func isValidStatus(status string) bool {
	for _, valid := range domain.ValidProgressStatuses {
		if status == valid {
			return true
		}
	}
	return false
}

// ToProgressResponse is shared with the scan package, which returns the
// freshly created records from the intake pipeline.
func ToProgressResponse(record *entities.HealingProgress) domain.ProgressResponse {
	var photos []domain.ProgressPhoto
	if err := json.Unmarshal(record.Photos, &photos); err != nil || photos == nil {
		photos = []domain.ProgressPhoto{}
	}

	var relatedScanID *string
	if record.RelatedScanID != nil {
		id := record.RelatedScanID.String()
		relatedScanID = &id
	}

	return domain.ProgressResponse{
		ID:                 record.ID.String(),
		RelatedScanID:      relatedScanID,
		IssueName:          record.IssueName,
		ProgressPercentage: record.ProgressPercentage,
		Status:             record.Status,
		StartDate:          record.StartDate,
		LastUpdated:        record.UpdatedAt,
		Notes:              record.Notes,
		Photos:             photos,
	}
}

func toProgressResponses(records []*entities.HealingProgress) []domain.ProgressResponse {
	responses := make([]domain.ProgressResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, ToProgressResponse(record))
	}
	return responses
}
