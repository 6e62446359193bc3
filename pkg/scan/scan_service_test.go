package scan

import (
	"SkinSense-Backend/domain"
	"SkinSense-Backend/entities"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fakeAnalyzer struct {
	result domain.SkinAnalysisResult
	err    error
	calls  int
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ []byte, _ string) (domain.SkinAnalysisResult, error) {
	f.calls++
	if f.err != nil {
		return domain.SkinAnalysisResult{}, f.err
	}
	return f.result, nil
}

type fakeS3 struct {
	uploads   int
	deleted   []string
	uploadErr error
}

func (f *fakeS3) UploadBytes(_ []byte, contentType string, folder string, ownerID string) (string, error) {
	f.uploads++
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return fmt.Sprintf("%s/%s/object-%d.jpg", folder, ownerID, f.uploads), nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	parts := strings.SplitN(link, ".amazonaws.com/", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

type fakeScanRepository struct {
	scans     map[string]*entities.SkinScan
	created   []*entities.HealingProgress
	createErr error
	calls     int
}

func newFakeScanRepository() *fakeScanRepository {
	return &fakeScanRepository{scans: map[string]*entities.SkinScan{}}
}

func (f *fakeScanRepository) CreateScanWithProgress(_ context.Context, scan *entities.SkinScan, records []*entities.HealingProgress) error {
	f.calls++
	if f.createErr != nil {
		return f.createErr
	}
	f.scans[scan.ID.String()] = scan
	f.created = append(f.created, records...)
	return nil
}

func (f *fakeScanRepository) GetScanByID(_ context.Context, id string, userID string) (*entities.SkinScan, error) {
	scan, ok := f.scans[id]
	if !ok || scan.UserID.String() != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return scan, nil
}

func (f *fakeScanRepository) GetUserScans(_ context.Context, userID string, limit, offset int) ([]*entities.SkinScan, error) {
	return f.GetAllUserScans(context.Background(), userID)
}

func (f *fakeScanRepository) GetAllUserScans(_ context.Context, userID string) ([]*entities.SkinScan, error) {
	var out []*entities.SkinScan
	for _, scan := range f.scans {
		if scan.UserID.String() == userID {
			out = append(out, scan)
		}
	}
	return out, nil
}

func (f *fakeScanRepository) DeleteScan(_ context.Context, id string, userID string) (int64, error) {
	scan, ok := f.scans[id]
	if !ok || scan.UserID.String() != userID {
		return 0, nil
	}
	delete(f.scans, id)
	return 1, nil
}

func analysisFixture() domain.SkinAnalysisResult {
	return domain.SkinAnalysisResult{
		OverallScore: 72,
		Issues: []domain.DetectedIssue{
			{Name: "Acne", Severity: "moderate", Location: "forehead", Description: "Moderate acne detected on forehead area with some inflammation", Score: 65, Confidence: 0.87},
			{Name: "Dark Spots", Severity: "mild", Location: "cheeks", Description: "Light hyperpigmentation visible on both cheeks", Score: 42, Confidence: 0.92},
			{Name: "Fine Lines", Severity: "mild", Location: "around eyes", Description: "Early signs of fine lines around the eye area", Score: 38, Confidence: 0.78},
		},
		Recommendations: []domain.Recommendation{
			{Title: "Apply sunscreen daily (SPF 30+)", Category: "skincare", Priority: "high"},
		},
		Metadata: map[string]interface{}{"mock_mode": true},
	}
}

func TestSubmitScanCreatesTrackerPerIssue(t *testing.T) {
	repo := newFakeScanRepository()
	analyzer := &fakeAnalyzer{result: analysisFixture()}
	s3 := &fakeS3{}
	service := NewScanService(repo, analyzer, s3)

	userID := uuid.New().String()
	resp, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{
		Image:    []byte("fake-image-bytes"),
		MimeType: "image/jpeg",
	}, userID)
	if err != nil {
		t.Fatalf("SubmitScan returned error: %v", err)
	}

	if len(resp.ProgressRecords) != 3 {
		t.Fatalf("expected 3 progress records, got %d", len(resp.ProgressRecords))
	}
	if len(repo.created) != 3 {
		t.Fatalf("expected 3 persisted records, got %d", len(repo.created))
	}
	if repo.calls != 1 {
		t.Errorf("expected one persistence call, got %d", repo.calls)
	}

	for i, record := range resp.ProgressRecords {
		if record.ProgressPercentage != 0 {
			t.Errorf("record %d: expected percentage 0, got %d", i, record.ProgressPercentage)
		}
		if record.Status != domain.ProgressStatusActive {
			t.Errorf("record %d: expected status active, got %q", i, record.Status)
		}
		if record.RelatedScanID == nil || *record.RelatedScanID != resp.Scan.ID {
			t.Errorf("record %d: expected related scan id %q", i, resp.Scan.ID)
		}
		if len(record.Photos) != 0 {
			t.Errorf("record %d: expected empty photos, got %d", i, len(record.Photos))
		}
	}

	names := map[string]bool{}
	for _, record := range resp.ProgressRecords {
		names[record.IssueName] = true
	}
	for _, want := range []string{"Acne", "Dark Spots", "Fine Lines"} {
		if !names[want] {
			t.Errorf("missing tracker for issue %q", want)
		}
	}

	if resp.Scan.OverallSkinHealthScore != 72 {
		t.Errorf("expected overall score 72, got %d", resp.Scan.OverallSkinHealthScore)
	}
}

func TestSubmitScanValidatesBeforeAnyExternalCall(t *testing.T) {
	cases := []struct {
		name    string
		image   []byte
		mime    string
		wantErr error
	}{
		{"empty image", nil, "image/jpeg", domain.ErrImageRequired},
		{"bad mime", []byte("data"), "application/pdf", domain.ErrInvalidImageFormat},
		{"too large", make([]byte, 10*1024*1024+1), "image/png", domain.ErrImageTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeScanRepository()
			analyzer := &fakeAnalyzer{result: analysisFixture()}
			s3 := &fakeS3{}
			service := NewScanService(repo, analyzer, s3)

			_, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{
				Image:    tc.image,
				MimeType: tc.mime,
			}, uuid.New().String())

			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if analyzer.calls != 0 {
				t.Errorf("analyzer called %d times on invalid input", analyzer.calls)
			}
			if s3.uploads != 0 {
				t.Errorf("upload called %d times on invalid input", s3.uploads)
			}
			if repo.calls != 0 {
				t.Errorf("repository called %d times on invalid input", repo.calls)
			}
		})
	}
}

func TestSubmitScanAnalyzerFailure(t *testing.T) {
	repo := newFakeScanRepository()
	analyzer := &fakeAnalyzer{err: errors.New("model unavailable")}
	s3 := &fakeS3{}
	service := NewScanService(repo, analyzer, s3)

	_, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{
		Image:    []byte("data"),
		MimeType: "image/jpeg",
	}, uuid.New().String())

	if !errors.Is(err, domain.ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
	if s3.uploads != 0 {
		t.Errorf("nothing should be uploaded when analysis fails, got %d uploads", s3.uploads)
	}
	if repo.calls != 0 {
		t.Errorf("nothing should be persisted when analysis fails, got %d calls", repo.calls)
	}
}

func TestSubmitScanPersistFailureCleansUpUpload(t *testing.T) {
	repo := newFakeScanRepository()
	repo.createErr = errors.New("db down")
	analyzer := &fakeAnalyzer{result: analysisFixture()}
	s3 := &fakeS3{}
	service := NewScanService(repo, analyzer, s3)

	_, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{
		Image:    []byte("data"),
		MimeType: "image/jpeg",
	}, uuid.New().String())

	if err == nil {
		t.Fatal("expected error when persistence fails")
	}
	if len(s3.deleted) != 1 {
		t.Fatalf("expected one cleanup delete, got %d", len(s3.deleted))
	}
}

func TestSubmitScanRejectsMalformedUserID(t *testing.T) {
	service := NewScanService(newFakeScanRepository(), &fakeAnalyzer{result: analysisFixture()}, &fakeS3{})

	_, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{
		Image:    []byte("data"),
		MimeType: "image/jpeg",
	}, "not-a-uuid")

	if !errors.Is(err, domain.ErrParseUUID) {
		t.Fatalf("expected ErrParseUUID, got %v", err)
	}
}

func TestGetScanByIDHidesOtherUsersScans(t *testing.T) {
	repo := newFakeScanRepository()
	owner := uuid.New()
	scanID := uuid.New()
	repo.scans[scanID.String()] = &entities.SkinScan{
		ID:             scanID,
		UserID:         owner,
		DetectedIssues: datatypes.JSON([]byte(`[]`)),
	}
	service := NewScanService(repo, &fakeAnalyzer{}, &fakeS3{})

	if _, err := service.GetScanByID(context.Background(), scanID.String(), owner.String()); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}

	_, err := service.GetScanByID(context.Background(), scanID.String(), uuid.New().String())
	if !errors.Is(err, domain.ErrScanNotFound) {
		t.Fatalf("expected ErrScanNotFound for other user, got %v", err)
	}
}

func TestDeleteScanRemovesStoredImage(t *testing.T) {
	repo := newFakeScanRepository()
	owner := uuid.New()
	scanID := uuid.New()
	repo.scans[scanID.String()] = &entities.SkinScan{
		ID:       scanID,
		UserID:   owner,
		ImageURL: "https://bucket.s3.region.amazonaws.com/scan-images/" + owner.String() + "/obj.jpg",
	}
	s3 := &fakeS3{}
	service := NewScanService(repo, &fakeAnalyzer{}, s3)

	if err := service.DeleteScan(context.Background(), scanID.String(), owner.String()); err != nil {
		t.Fatalf("DeleteScan returned error: %v", err)
	}
	if len(repo.scans) != 0 {
		t.Error("scan row should be gone")
	}
	if len(s3.deleted) != 1 || s3.deleted[0] != "scan-images/"+owner.String()+"/obj.jpg" {
		t.Errorf("unexpected deleted keys: %v", s3.deleted)
	}
}

func TestDeleteScanNotFound(t *testing.T) {
	service := NewScanService(newFakeScanRepository(), &fakeAnalyzer{}, &fakeS3{})

	err := service.DeleteScan(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, domain.ErrScanNotFound) {
		t.Fatalf("expected ErrScanNotFound, got %v", err)
	}
}

func TestGetUserScanStats(t *testing.T) {
	repo := newFakeScanRepository()
	owner := uuid.New()

	service := NewScanService(repo, &fakeAnalyzer{}, &fakeS3{})

	stats, err := service.GetUserScanStats(context.Background(), owner.String())
	if err != nil {
		t.Fatalf("stats on empty history failed: %v", err)
	}
	if stats.TotalScans != 0 || stats.AverageScore != 0 || stats.TotalIssuesDetected != 0 {
		t.Fatalf("expected zero stats for empty history, got %+v", stats)
	}

	first := uuid.New()
	second := uuid.New()
	repo.scans[first.String()] = &entities.SkinScan{
		ID:                     first,
		UserID:                 owner,
		OverallSkinHealthScore: 65,
		DetectedIssues:         datatypes.JSON([]byte(`[{"name":"Acne"},{"name":"Redness"},{"name":"Dark Spots"}]`)),
	}
	repo.scans[second.String()] = &entities.SkinScan{
		ID:                     second,
		UserID:                 owner,
		OverallSkinHealthScore: 72,
		DetectedIssues:         datatypes.JSON([]byte(`[{"name":"Fine Lines"},{"name":"Enlarged Pores"}]`)),
	}

	stats, err = service.GetUserScanStats(context.Background(), owner.String())
	if err != nil {
		t.Fatalf("GetUserScanStats returned error: %v", err)
	}
	if stats.TotalScans != 2 {
		t.Errorf("expected 2 scans, got %d", stats.TotalScans)
	}
	if stats.AverageScore != 69 {
		t.Errorf("expected average 69 (rounded), got %d", stats.AverageScore)
	}
	if stats.TotalIssuesDetected != 5 {
		t.Errorf("expected 5 issues, got %d", stats.TotalIssuesDetected)
	}
}
