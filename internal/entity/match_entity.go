package entity

import "fmt"

// Recommendation classifies how an idea relates to the service catalog.
type Recommendation string

const (
	RecommendationExistingService Recommendation = "existing_service"
	RecommendationDevelopExisting Recommendation = "develop_existing"
	RecommendationNewService      Recommendation = "new_service"
)

func ParseRecommendation(s string) (Recommendation, error) {
	switch Recommendation(s) {
	case RecommendationExistingService, RecommendationDevelopExisting, RecommendationNewService:
		return Recommendation(s), nil
	}
	return "", fmt.Errorf("invalid recommendation: %q", s)
}

type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// DevelopmentImpact maps a recommendation to the expected development effort:
// an unmet need implies a new build, a partial match an extension.
func (r Recommendation) DevelopmentImpact() Impact {
	switch r {
	case RecommendationNewService:
		return ImpactHigh
	case RecommendationDevelopExisting:
		return ImpactMedium
	case RecommendationExistingService:
		return ImpactLow
	}
	return ImpactMedium
}

// ServiceMatch is one catalog service scored against an idea.
type ServiceMatch struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	MatchScore  float64 `json:"match_score"`
}
