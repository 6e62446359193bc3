package analysis

import (
	"SkinSense-Backend/domain"
	"context"
)

// SkinAnalyzer turns a facial photo into a structured assessment. The
// orchestrator only depends on this contract; whether the result comes from
// a real model endpoint or the mock generator is a wiring decision.
type SkinAnalyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (domain.SkinAnalysisResult, error)
}
