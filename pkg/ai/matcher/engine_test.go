package matcher

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/pkg/embedding"
)

type fakeEmbedder struct {
	values []float32
	err    error
}

func (f *fakeEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.Response{Embedding: embedding.ResponseEmbedding{Values: f.values}}, nil
}

type fakeSearcher struct {
	chunks []*entity.ScoredChunk
	err    error
}

func (f *fakeSearcher) SearchSimilar(ctx context.Context, emb []float32, limit int, source entity.DocumentSource) ([]*entity.ScoredChunk, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.chunks, nil
}

func chunk(service, content string, similarity float64) *entity.ScoredChunk {
	return &entity.ScoredChunk{
		Chunk: &entity.DocumentChunk{
			DocumentName: service,
			ServiceName:  service,
			Content:      content,
			Source:       entity.SourceServiceCatalog,
		},
		Similarity: similarity,
	}
}

func TestMatchClassification(t *testing.T) {
	tests := []struct {
		name           string
		chunks         []*entity.ScoredChunk
		wantRec        entity.Recommendation
		wantConfidence float64
	}{
		{
			name:           "strong match means existing service",
			chunks:         []*entity.ScoredChunk{chunk("Waste Pickup", "Curbside waste collection", 0.82)},
			wantRec:        entity.RecommendationExistingService,
			wantConfidence: 0.82,
		},
		{
			name:           "existing threshold is inclusive",
			chunks:         []*entity.ScoredChunk{chunk("Waste Pickup", "Curbside waste collection", 0.60)},
			wantRec:        entity.RecommendationExistingService,
			wantConfidence: 0.60,
		},
		{
			name:           "partial match means develop existing",
			chunks:         []*entity.ScoredChunk{chunk("Waste Pickup", "Curbside waste collection", 0.45)},
			wantRec:        entity.RecommendationDevelopExisting,
			wantConfidence: 0.45,
		},
		{
			name:           "develop threshold is inclusive",
			chunks:         []*entity.ScoredChunk{chunk("Waste Pickup", "Curbside waste collection", 0.30)},
			wantRec:        entity.RecommendationDevelopExisting,
			wantConfidence: 0.30,
		},
		{
			name:           "just below develop threshold means new service",
			chunks:         []*entity.ScoredChunk{chunk("Waste Pickup", "Curbside waste collection", 0.2999)},
			wantRec:        entity.RecommendationNewService,
			wantConfidence: 0.2999,
		},
		{
			name:           "empty catalog means new service",
			chunks:         nil,
			wantRec:        entity.RecommendationNewService,
			wantConfidence: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(
				&fakeEmbedder{values: []float32{0.1, 0.2}},
				&fakeSearcher{chunks: tt.chunks},
			)

			result, err := engine.Match(context.Background(), "Idea title", "Idea description")
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if result.Recommendation != tt.wantRec {
				t.Errorf("Recommendation = %v, want %v", result.Recommendation, tt.wantRec)
			}
			if result.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", result.Confidence, tt.wantConfidence)
			}
			if result.Reasoning == "" {
				t.Error("Reasoning should not be empty")
			}
		})
	}
}

func TestMatchAggregatesMaxScorePerService(t *testing.T) {
	engine := NewEngine(
		&fakeEmbedder{values: []float32{0.1}},
		&fakeSearcher{chunks: []*entity.ScoredChunk{
			chunk("Library", "Public library services", 0.71),
			chunk("Parks", "Park maintenance", 0.55),
			chunk("Library", "Library opening hours", 0.40),
		}},
	)

	result, err := engine.Match(context.Background(), "Book lending app", "")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if len(result.MatchingServices) != 2 {
		t.Fatalf("expected 2 aggregated services, got %d", len(result.MatchingServices))
	}
	if result.MatchingServices[0].Name != "Library" || result.MatchingServices[0].MatchScore != 0.71 {
		t.Errorf("top match = %+v, want Library with 0.71", result.MatchingServices[0])
	}
	if result.MatchingServices[1].Name != "Parks" {
		t.Errorf("second match = %+v, want Parks", result.MatchingServices[1])
	}
	if result.Confidence != 0.71 {
		t.Errorf("Confidence = %v, want top score 0.71", result.Confidence)
	}
}

func TestMatchTieKeepsSearchOrder(t *testing.T) {
	engine := NewEngine(
		&fakeEmbedder{values: []float32{0.1}},
		&fakeSearcher{chunks: []*entity.ScoredChunk{
			chunk("First", "a", 0.50),
			chunk("Second", "b", 0.50),
		}},
	)

	result, err := engine.Match(context.Background(), "tie", "")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if result.MatchingServices[0].Name != "First" {
		t.Errorf("tie broken against search order: got %s first", result.MatchingServices[0].Name)
	}
}

func TestMatchLimitsReportedServices(t *testing.T) {
	var chunks []*entity.ScoredChunk
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, n := range names {
		chunks = append(chunks, chunk(n, "svc", 0.70-float64(i)*0.05))
	}

	engine := NewEngine(&fakeEmbedder{values: []float32{0.1}}, &fakeSearcher{chunks: chunks})

	result, err := engine.Match(context.Background(), "many matches", "")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if len(result.MatchingServices) != maxReportedServices {
		t.Errorf("reported %d services, want %d", len(result.MatchingServices), maxReportedServices)
	}
}

func TestMatchCarriesServiceCategory(t *testing.T) {
	low := chunk("Library", "Library opening hours", 0.40)
	low.Chunk.ServiceCategory = "Kultur och fritid"
	high := chunk("Library", "Public library services", 0.71)
	high.Chunk.ServiceCategory = "Kultur och fritid"
	other := chunk("Parks", "Park maintenance", 0.55)
	other.Chunk.ServiceCategory = "Miljö och teknik"

	engine := NewEngine(
		&fakeEmbedder{values: []float32{0.1}},
		&fakeSearcher{chunks: []*entity.ScoredChunk{low, other, high}},
	)

	result, err := engine.Match(context.Background(), "Book lending app", "")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	if result.MatchingServices[0].Category != "Kultur och fritid" {
		t.Errorf("top match category = %q, want %q", result.MatchingServices[0].Category, "Kultur och fritid")
	}
	if result.MatchingServices[1].Category != "Miljö och teknik" {
		t.Errorf("second match category = %q, want %q", result.MatchingServices[1].Category, "Miljö och teknik")
	}
}

func TestPreviewCutsOnRuneBoundary(t *testing.T) {
	// Shift a run of two-byte Swedish vowels by 0..3 ASCII bytes so the
	// cut point lands mid-rune for at least one of the offsets.
	for pad := 0; pad < 4; pad++ {
		long := strings.Repeat("x", pad) + strings.Repeat("ö", descriptionPreview)

		got := preview(long)
		if !utf8.ValidString(got) {
			t.Fatalf("pad %d: preview returned invalid UTF-8: %q", pad, got)
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("pad %d: long preview should end with ellipsis, got %q", pad, got)
		}
		if len(got) > descriptionPreview+len("...") {
			t.Errorf("pad %d: preview length = %d, want at most %d", pad, len(got), descriptionPreview+len("..."))
		}
	}

	short := "kort beskrivning om återvinning"
	if preview(short) != short {
		t.Errorf("short content should pass through unchanged")
	}
}

func TestMatchConfidenceClamped(t *testing.T) {
	engine := NewEngine(
		&fakeEmbedder{values: []float32{0.1}},
		&fakeSearcher{chunks: []*entity.ScoredChunk{chunk("Svc", "x", 1.0000002)}},
	)

	result, err := engine.Match(context.Background(), "exact duplicate", "")
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if result.Confidence > 1 {
		t.Errorf("Confidence = %v, want <= 1", result.Confidence)
	}
}
