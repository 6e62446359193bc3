package analysis

import (
	"SkinSense-Backend/domain"
	"context"
	"math/rand"
	"sync"
)

// issueCatalog is the fixed set the mock analyzer samples from. Scores and
// confidences match the catalog the model team uses for demos.
var issueCatalog = []domain.DetectedIssue{
	{
		Name:        "Acne",
		Severity:    "moderate",
		Location:    "forehead",
		Description: "Moderate acne detected on forehead area with some inflammation",
		Score:       65,
		Confidence:  0.87,
	},
	{
		Name:        "Dark Spots",
		Severity:    "mild",
		Location:    "cheeks",
		Description: "Light hyperpigmentation visible on both cheeks",
		Score:       42,
		Confidence:  0.92,
	},
	{
		Name:        "Fine Lines",
		Severity:    "mild",
		Location:    "around eyes",
		Description: "Early signs of fine lines around the eye area",
		Score:       38,
		Confidence:  0.78,
	},
	{
		Name:        "Enlarged Pores",
		Severity:    "moderate",
		Location:    "nose and cheeks",
		Description: "Visible enlarged pores in T-zone area",
		Score:       55,
		Confidence:  0.85,
	},
	{
		Name:        "Redness",
		Severity:    "mild",
		Location:    "cheeks",
		Description: "Mild redness indicating possible sensitivity or irritation",
		Score:       35,
		Confidence:  0.81,
	},
}

var recommendationCatalog = []domain.Recommendation{
	{
		Title:       "Use a gentle cleanser twice daily",
		Description: "Choose a pH-balanced, non-comedogenic cleanser to remove impurities without stripping natural oils",
		Category:    "skincare",
		Priority:    "high",
		Ingredients: []string{"Salicylic Acid", "Glycolic Acid", "Niacinamide"},
	},
	{
		Title:       "Apply sunscreen daily (SPF 30+)",
		Description: "UV protection is crucial for preventing hyperpigmentation and premature aging",
		Category:    "skincare",
		Priority:    "high",
		Ingredients: []string{"Zinc Oxide", "Titanium Dioxide"},
	},
	{
		Title:       "Stay hydrated",
		Description: "Drink at least 8 glasses of water daily to maintain skin hydration from within",
		Category:    "lifestyle",
		Priority:    "medium",
	},
	{
		Title:       "Get adequate sleep (7-9 hours)",
		Description: "Quality sleep allows skin to repair and regenerate, improving overall skin health",
		Category:    "lifestyle",
		Priority:    "medium",
	},
	{
		Title:       "Consider vitamin C serum",
		Description: "Vitamin C helps brighten skin and reduce dark spots over time",
		Category:    "skincare",
		Priority:    "medium",
		Ingredients: []string{"L-Ascorbic Acid", "Vitamin E", "Ferulic Acid"},
	},
}

type mockAnalyzer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockAnalyzer returns an analyzer that generates a plausible assessment
// without calling any external model: overall score in 60-90, 2-4 issues
// sampled from the fixed catalog. Deterministic for a given seed.
func NewMockAnalyzer(seed int64) SkinAnalyzer {
	return &mockAnalyzer{rng: rand.New(rand.NewSource(seed))}
}

func (m *mockAnalyzer) Analyze(_ context.Context, _ []byte, _ string) (domain.SkinAnalysisResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	numIssues := m.rng.Intn(3) + 2 // 2-4

	picked := m.rng.Perm(len(issueCatalog))[:numIssues]
	issues := make([]domain.DetectedIssue, 0, numIssues)
	for _, idx := range picked {
		issues = append(issues, issueCatalog[idx])
	}

	recommendations := make([]domain.Recommendation, len(recommendationCatalog))
	copy(recommendations, recommendationCatalog)

	return domain.SkinAnalysisResult{
		OverallScore:    m.rng.Intn(31) + 60, // 60-90
		Issues:          issues,
		Recommendations: recommendations,
		Metadata: map[string]interface{}{
			"analysis_version":   "1.0.0",
			"processing_time_ms": m.rng.Intn(2000) + 1000,
			"mock_mode":          true,
		},
	}, nil
}
