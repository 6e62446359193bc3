package analysis

import (
	"SkinSense-Backend/domain"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

type httpAnalyzer struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPAnalyzer posts the image to the configured analyzer endpoint. The
// call is synchronous and may take seconds; the orchestrator waits for it
// before persisting anything.
func NewHTTPAnalyzer(baseURL string, apiKey string) SkinAnalyzer {
	return &httpAnalyzer{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (a *httpAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) (domain.SkinAnalysisResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", "scan."+extensionFor(mimeType))
	if err != nil {
		return domain.SkinAnalysisResult{}, err
	}
	if _, err = part.Write(image); err != nil {
		return domain.SkinAnalysisResult{}, err
	}
	if err = writer.Close(); err != nil {
		return domain.SkinAnalysisResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/analyze", body)
	if err != nil {
		return domain.SkinAnalysisResult{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return domain.SkinAnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.SkinAnalysisResult{}, fmt.Errorf("%w: %s - %s", domain.ErrAnalysisFailed, resp.Status, string(bodyBytes))
	}

	var result domain.SkinAnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.SkinAnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}

	if result.Metadata == nil {
		result.Metadata = map[string]interface{}{}
	}

	return result, nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	default:
		return "jpg"
	}
}
