package dto

import (
	"time"

	"innovation-hub-be/pkg/ai/gap"
)

// AnalysisStatsResponse is the gap/coverage report plus the catalog index's
// last-modified time so clients can tell when matches predate the catalog.
type AnalysisStatsResponse struct {
	Overview           gap.Overview          `json:"overview"`
	TopMatchedServices []gap.ServiceDemand   `json:"top_matched_services"`
	DevelopmentNeeds   []gap.DevelopmentNeed `json:"development_needs"`
	Gaps               []gap.Gap             `json:"gaps"`
	AvgConfidence      float64               `json:"ai_confidence_avg"`
	IndexLastModified  *time.Time            `json:"index_last_modified"`
}
