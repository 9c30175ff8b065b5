package gap

import (
	"testing"

	"github.com/google/uuid"

	"innovation-hub-be/internal/entity"
)

func analyzedIdea(title string, rec entity.Recommendation, priority entity.Priority, confidence float64, tags []string, services ...entity.ServiceMatch) *entity.Idea {
	return &entity.Idea{
		Id:       uuid.New(),
		Title:    title,
		Priority: priority,
		Tags:     tags,
		Analysis: &entity.IdeaAnalysis{
			Recommendation:   rec,
			Confidence:       confidence,
			Impact:           rec.DevelopmentImpact(),
			MatchingServices: services,
		},
	}
}

func TestBuildOverviewBucketsSumToAnalyzedTotal(t *testing.T) {
	ideas := []*entity.Idea{
		analyzedIdea("a", entity.RecommendationExistingService, entity.PriorityLow, 0.9, nil),
		analyzedIdea("b", entity.RecommendationExistingService, entity.PriorityLow, 0.8, nil),
		analyzedIdea("c", entity.RecommendationDevelopExisting, entity.PriorityMedium, 0.7, nil),
		analyzedIdea("d", entity.RecommendationNewService, entity.PriorityHigh, 0.6, nil),
		{Id: uuid.New(), Title: "unanalyzed"},
	}

	report := BuildReport(ideas)

	o := report.Overview
	if o.TotalIdeasAnalyzed != 4 {
		t.Errorf("TotalIdeasAnalyzed = %d, want 4", o.TotalIdeasAnalyzed)
	}
	if got := o.ExistingServiceCount + o.DevelopExistingCount + o.NewServiceCount; got != o.TotalIdeasAnalyzed {
		t.Errorf("buckets sum to %d, want %d", got, o.TotalIdeasAnalyzed)
	}
	if o.ExistingServiceCount != 2 || o.DevelopExistingCount != 1 || o.NewServiceCount != 1 {
		t.Errorf("overview = %+v", o)
	}
}

func TestTopMatchedServicesRanksByDemand(t *testing.T) {
	library := entity.ServiceMatch{Name: "Library", MatchScore: 0.8}
	parks := entity.ServiceMatch{Name: "Parks", MatchScore: 0.5}

	ideas := []*entity.Idea{
		analyzedIdea("a", entity.RecommendationExistingService, entity.PriorityLow, 0.9, nil, library),
		analyzedIdea("b", entity.RecommendationExistingService, entity.PriorityLow, 0.9, nil, library, parks),
		analyzedIdea("c", entity.RecommendationDevelopExisting, entity.PriorityLow, 0.9, nil, entity.ServiceMatch{Name: "Library", MatchScore: 0.4}),
	}

	report := BuildReport(ideas)

	if len(report.TopMatchedServices) != 2 {
		t.Fatalf("got %d services, want 2", len(report.TopMatchedServices))
	}
	top := report.TopMatchedServices[0]
	if top.ServiceName != "Library" || top.IdeaCount != 3 {
		t.Errorf("top service = %+v, want Library with 3 ideas", top)
	}
	wantAvg := (0.8 + 0.8 + 0.4) / 3
	if diff := top.AvgMatchScore - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AvgMatchScore = %v, want %v", top.AvgMatchScore, wantAvg)
	}
	if len(top.SampleIdeas) != 3 {
		t.Errorf("SampleIdeas = %d, want 3", len(top.SampleIdeas))
	}
}

func TestDevelopmentNeedsSortByPriorityThenImpact(t *testing.T) {
	ideas := []*entity.Idea{
		analyzedIdea("low new", entity.RecommendationNewService, entity.PriorityLow, 0.5, nil),
		analyzedIdea("high existing", entity.RecommendationExistingService, entity.PriorityHigh, 0.5, nil),
		analyzedIdea("high new", entity.RecommendationNewService, entity.PriorityHigh, 0.5, nil),
		analyzedIdea("medium develop", entity.RecommendationDevelopExisting, entity.PriorityMedium, 0.5, nil),
	}

	report := BuildReport(ideas)

	got := make([]string, len(report.DevelopmentNeeds))
	for i, n := range report.DevelopmentNeeds {
		got[i] = n.Title
	}
	want := []string{"high new", "high existing", "medium develop", "low new"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFindGapsNeedsTwoIdeasPerTag(t *testing.T) {
	ideas := []*entity.Idea{
		analyzedIdea("a", entity.RecommendationNewService, entity.PriorityHigh, 0.5, []string{"parkering", "app"}),
		analyzedIdea("b", entity.RecommendationNewService, entity.PriorityLow, 0.5, []string{"parkering"}),
		analyzedIdea("c", entity.RecommendationNewService, entity.PriorityLow, 0.5, []string{"ensam-tagg"}),
		// covered ideas never form gaps even with shared tags
		analyzedIdea("d", entity.RecommendationExistingService, entity.PriorityLow, 0.5, []string{"app"}),
	}

	report := BuildReport(ideas)

	if len(report.Gaps) != 1 {
		t.Fatalf("got %d gaps, want 1: %+v", len(report.Gaps), report.Gaps)
	}
	g := report.Gaps[0]
	if g.AreaKeywords[0] != "parkering" || g.IdeaCount != 2 {
		t.Errorf("gap = %+v", g)
	}
}

func TestAverageConfidenceIgnoresUnanalyzed(t *testing.T) {
	ideas := []*entity.Idea{
		analyzedIdea("a", entity.RecommendationNewService, entity.PriorityLow, 0.8, nil),
		analyzedIdea("b", entity.RecommendationNewService, entity.PriorityLow, 0.6, nil),
		{Id: uuid.New(), Title: "unanalyzed"},
	}

	report := BuildReport(ideas)

	want := 0.7
	if diff := report.AvgConfidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AvgConfidence = %v, want %v", report.AvgConfidence, want)
	}
}

func TestBuildReportEmptyInput(t *testing.T) {
	report := BuildReport(nil)

	if report.Overview.TotalIdeasAnalyzed != 0 {
		t.Errorf("TotalIdeasAnalyzed = %d", report.Overview.TotalIdeasAnalyzed)
	}
	if report.AvgConfidence != 0 {
		t.Errorf("AvgConfidence = %v", report.AvgConfidence)
	}
	if len(report.TopMatchedServices) != 0 || len(report.Gaps) != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}
