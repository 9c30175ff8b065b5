package entity

import "testing"

func TestParseIdeaStatus(t *testing.T) {
	for _, st := range []IdeaStatus{
		IdeaStatusNew, IdeaStatusUnderReview, IdeaStatusApproved,
		IdeaStatusInDevelopment, IdeaStatusImplemented, IdeaStatusRejected,
	} {
		if got, err := ParseIdeaStatus(string(st)); err != nil || got != st {
			t.Errorf("ParseIdeaStatus(%s) = %v, %v", st, got, err)
		}
	}
	if _, err := ParseIdeaStatus("archived"); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestIdeaStatusIsTerminal(t *testing.T) {
	if !IdeaStatusImplemented.IsTerminal() || !IdeaStatusRejected.IsTerminal() {
		t.Error("implemented and rejected are closed statuses")
	}
	if IdeaStatusNew.IsTerminal() || IdeaStatusInDevelopment.IsTerminal() {
		t.Error("open statuses reported as terminal")
	}
}

func TestParseTargetGroup(t *testing.T) {
	// These literals have to match the request validator's oneof set, or
	// the value passes validation and then fails parsing with a 400.
	for _, tg := range []string{"citizens", "businesses", "employees", "other_orgs"} {
		if got, err := ParseTargetGroup(tg); err != nil || string(got) != tg {
			t.Errorf("ParseTargetGroup(%s) = %v, %v", tg, got, err)
		}
	}
	if _, err := ParseTargetGroup("other_organizations"); err == nil {
		t.Error("expected error for unknown target group")
	}
}

func TestRecommendationDevelopmentImpact(t *testing.T) {
	tests := []struct {
		rec  Recommendation
		want Impact
	}{
		{RecommendationNewService, ImpactHigh},
		{RecommendationDevelopExisting, ImpactMedium},
		{RecommendationExistingService, ImpactLow},
	}
	for _, tt := range tests {
		if got := tt.rec.DevelopmentImpact(); got != tt.want {
			t.Errorf("%s.DevelopmentImpact() = %v, want %v", tt.rec, got, tt.want)
		}
	}
}
