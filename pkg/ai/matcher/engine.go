package matcher

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/pkg/embedding"
)

const (
	DefaultTopK              = 10
	DefaultExistingThreshold = 0.60
	DefaultDevelopThreshold  = 0.30

	maxReportedServices = 5
	descriptionPreview  = 200
)

// ChunkSearcher finds indexed chunks by vector similarity. Satisfied by the
// document chunk repository.
type ChunkSearcher interface {
	SearchSimilar(ctx context.Context, embedding []float32, limit int, source entity.DocumentSource) ([]*entity.ScoredChunk, error)
}

// Result is the outcome of matching one idea against the service catalog.
type Result struct {
	Recommendation   entity.Recommendation
	Confidence       float64
	MatchingServices []entity.ServiceMatch
	Reasoning        string
}

// Engine classifies ideas against the indexed service catalog. An idea whose
// best catalog match scores at or above the existing threshold is covered by
// an existing service, at or above the develop threshold it calls for
// extending one, below that it needs a new service.
type Engine struct {
	embedder          embedding.Provider
	searcher          ChunkSearcher
	topK              int
	existingThreshold float64
	developThreshold  float64
}

func NewEngine(embedder embedding.Provider, searcher ChunkSearcher) *Engine {
	return &Engine{
		embedder:          embedder,
		searcher:          searcher,
		topK:              DefaultTopK,
		existingThreshold: DefaultExistingThreshold,
		developThreshold:  DefaultDevelopThreshold,
	}
}

func NewEngineWithThresholds(embedder embedding.Provider, searcher ChunkSearcher, topK int, existing, develop float64) *Engine {
	e := NewEngine(embedder, searcher)
	if topK > 0 {
		e.topK = topK
	}
	if existing > 0 {
		e.existingThreshold = existing
	}
	if develop > 0 {
		e.developThreshold = develop
	}
	return e
}

func (e *Engine) Match(ctx context.Context, title, description string) (*Result, error) {
	query := strings.TrimSpace(title)
	if desc := strings.TrimSpace(description); desc != "" {
		if query != "" {
			query += ". "
		}
		query += desc
	}

	embedRes, err := e.embedder.Generate(ctx, query, embedding.TaskTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("embed idea: %w", err)
	}

	chunks, err := e.searcher.SearchSimilar(ctx, embedRes.Embedding.Values, e.topK, entity.SourceServiceCatalog)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}

	matches := aggregateByService(chunks)
	if len(matches) == 0 {
		return &Result{
			Recommendation:   entity.RecommendationNewService,
			Confidence:       0,
			MatchingServices: []entity.ServiceMatch{},
			Reasoning:        "No catalog services matched the idea. The service catalog may be empty.",
		}, nil
	}

	top := matches[0]
	recommendation := e.classify(top.MatchScore)

	if len(matches) > maxReportedServices {
		matches = matches[:maxReportedServices]
	}

	return &Result{
		Recommendation:   recommendation,
		Confidence:       clamp01(top.MatchScore),
		MatchingServices: matches,
		Reasoning:        e.explain(recommendation, top),
	}, nil
}

func (e *Engine) classify(score float64) entity.Recommendation {
	switch {
	case score >= e.existingThreshold:
		return entity.RecommendationExistingService
	case score >= e.developThreshold:
		return entity.RecommendationDevelopExisting
	default:
		return entity.RecommendationNewService
	}
}

func (e *Engine) explain(rec entity.Recommendation, top entity.ServiceMatch) string {
	switch rec {
	case entity.RecommendationExistingService:
		return fmt.Sprintf("The idea closely matches the existing service %q (similarity %.2f). It is likely already covered.", top.Name, top.MatchScore)
	case entity.RecommendationDevelopExisting:
		return fmt.Sprintf("The idea partially overlaps the service %q (similarity %.2f). Extending that service could cover it.", top.Name, top.MatchScore)
	default:
		return fmt.Sprintf("No catalog service comes close (best match %q at %.2f). The idea calls for a new service.", top.Name, top.MatchScore)
	}
}

// aggregateByService keeps the best-scoring chunk per service and returns the
// services ordered by score descending. Ties keep search order, which the
// store already ranks by similarity.
func aggregateByService(chunks []*entity.ScoredChunk) []entity.ServiceMatch {
	type agg struct {
		match entity.ServiceMatch
		order int
	}

	byName := make(map[string]*agg)
	var names []string

	for i, sc := range chunks {
		if sc == nil || sc.Chunk == nil {
			continue
		}
		name := sc.Chunk.ServiceName
		if name == "" {
			name = sc.Chunk.DocumentName
		}
		if name == "" {
			continue
		}

		existing, ok := byName[name]
		if !ok {
			byName[name] = &agg{
				match: entity.ServiceMatch{
					Name:        name,
					Description: preview(sc.Chunk.Content),
					Category:    sc.Chunk.ServiceCategory,
					MatchScore:  sc.Similarity,
				},
				order: i,
			}
			names = append(names, name)
			continue
		}
		if sc.Similarity > existing.match.MatchScore {
			existing.match.MatchScore = sc.Similarity
			existing.match.Description = preview(sc.Chunk.Content)
			existing.match.Category = sc.Chunk.ServiceCategory
		}
	}

	matches := make([]entity.ServiceMatch, 0, len(names))
	orders := make(map[string]int, len(names))
	for _, name := range names {
		matches = append(matches, byName[name].match)
		orders[name] = byName[name].order
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return orders[matches[i].Name] < orders[matches[j].Name]
	})

	return matches
}

func preview(content string) string {
	content = strings.TrimSpace(content)
	if len(content) <= descriptionPreview {
		return content
	}
	// Cut on a rune boundary so multibyte text is never split mid-character.
	cut := descriptionPreview
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return strings.TrimSpace(content[:cut]) + "..."
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
