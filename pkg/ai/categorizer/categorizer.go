package categorizer

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/pkg/llm"
)

// Category taxonomy is fixed; the model picks by id so free-text drift
// cannot invent new categories.
var categories = map[int]struct {
	Name     string
	Keywords []string
}{
	1: {"Digital transformation", []string{"digital", "teknologi", "ai", "automation", "system"}},
	2: {"Medborgarservice", []string{"medborgare", "service", "tjänst", "kundtjänst", "användar"}},
	3: {"Miljö och klimat", []string{"miljö", "klimat", "hållbar", "grön", "energi"}},
	4: {"Processer och effektivitet", []string{"process", "effektiv", "förbättr", "optimering", "kostnad"}},
	5: {"Innovation och utveckling", []string{"innovation", "utveckling", "forskning", "ny", "kreativ"}},
}

const defaultCategoryId = 5

const maxTags = 5

// Result is the LLM-derived enrichment of an idea. Confidence reflects how
// many fields the model answered in a parseable way, not model certainty.
type Result struct {
	Category   string
	Priority   entity.Priority
	Sentiment  string
	Tags       []string
	Confidence float64
}

type Categorizer struct {
	provider llm.LLMProvider
}

func NewCategorizer(provider llm.LLMProvider) *Categorizer {
	return &Categorizer{provider: provider}
}

type modelAnswer struct {
	Category  json.Number `json:"category"`
	Priority  string      `json:"priority"`
	Sentiment string      `json:"sentiment"`
	Tags      []string    `json:"tags"`
}

func (c *Categorizer) Analyze(ctx context.Context, title, description string) (*Result, error) {
	prompt := buildPrompt(title, description)

	raw, err := c.provider.Generate(ctx, prompt, llm.WithTemperature(0.1))
	if err != nil {
		return nil, fmt.Errorf("categorize idea: %w", err)
	}

	return parseAnswer(raw, description), nil
}

func buildPrompt(title, description string) string {
	var sb strings.Builder
	sb.WriteString("You are analyzing an employee idea submitted to a municipal innovation hub.\n\n")
	sb.WriteString(fmt.Sprintf("Title: %s\nDescription: %s\n\n", title, description))
	sb.WriteString("Categories:\n")
	for id := 1; id <= 5; id++ {
		sb.WriteString(fmt.Sprintf("%d. %s\n", id, categories[id].Name))
	}
	sb.WriteString(`
Respond with ONLY a JSON object, no prose, no code fences:
{"category": <1-5>, "priority": "low"|"medium"|"high", "sentiment": "<one short sentence>", "tags": ["<up to 5 short lowercase tags>"]}`)
	return sb.String()
}

// parseAnswer never fails: each field that cannot be parsed falls back to a
// default, and the miss lowers the confidence score.
func parseAnswer(raw, description string) *Result {
	result := &Result{
		Category: categories[defaultCategoryId].Name,
		Priority: entity.PriorityMedium,
		Tags:     []string{},
	}

	cleaned := stripCodeFences(raw)
	parsed := 0
	const fieldCount = 4

	var answer modelAnswer
	if err := json.Unmarshal([]byte(extractJSONObject(cleaned)), &answer); err == nil {
		if id, err := strconv.Atoi(answer.Category.String()); err == nil && id >= 1 && id <= 5 {
			result.Category = categories[id].Name
			parsed++
		} else if name := matchCategoryByKeyword(answer.Category.String()); name != "" {
			result.Category = name
			parsed++
		}

		if p, err := entity.ParsePriority(strings.ToLower(strings.TrimSpace(answer.Priority))); err == nil {
			result.Priority = p
			parsed++
		}

		if s := strings.TrimSpace(answer.Sentiment); s != "" {
			result.Sentiment = s
			parsed++
		}

		if tags := NormalizeTags(answer.Tags); len(tags) > 0 {
			result.Tags = tags
			parsed++
		}
	} else {
		// Not JSON at all. Salvage what keyword matching can find.
		if name := matchCategoryByKeyword(cleaned); name != "" {
			result.Category = name
			parsed++
		}
		result.Priority = priorityFromText(cleaned)
	}

	if parsed == 0 {
		// Nothing usable from the model, lean on the idea text itself.
		if name := matchCategoryByKeyword(description); name != "" {
			result.Category = name
		}
	}

	result.Confidence = float64(parsed) / float64(fieldCount)
	return result
}

func matchCategoryByKeyword(text string) string {
	lower := strings.ToLower(text)
	for id := 1; id <= 5; id++ {
		for _, kw := range categories[id].Keywords {
			if strings.Contains(lower, kw) {
				return categories[id].Name
			}
		}
	}
	return ""
}

func priorityFromText(text string) entity.Priority {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "high") || strings.Contains(lower, "hög"):
		return entity.PriorityHigh
	case strings.Contains(lower, "low") || strings.Contains(lower, "låg"):
		return entity.PriorityLow
	default:
		return entity.PriorityMedium
	}
}

var tagPattern = regexp.MustCompile(`^[a-zåäö-]+$`)

// NormalizeTags lowercases, hyphenates and deduplicates tags, dropping
// anything outside 2-20 characters. At most five tags survive.
func NormalizeTags(tags []string) []string {
	var valid []string
	seen := make(map[string]bool)

	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		tag = strings.Join(strings.Fields(tag), "-")
		if len(tag) < 2 || len(tag) > 20 {
			continue
		}
		if !tagPattern.MatchString(tag) {
			continue
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		valid = append(valid, tag)
		if len(valid) == maxTags {
			break
		}
	}

	return valid
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// extractJSONObject pulls the first {...} span out of surrounding prose.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
