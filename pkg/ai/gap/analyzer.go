package gap

import (
	"sort"

	"github.com/google/uuid"

	"innovation-hub-be/internal/entity"
)

const (
	topServicesLimit      = 10
	developmentNeedsLimit = 50
	gapLimit              = 5
	sampleIdeasPerService = 5
	sampleIdeasPerGap     = 3
	minIdeasPerGap        = 2
)

// Overview counts analyzed ideas per recommendation bucket. The three
// buckets always sum to TotalIdeasAnalyzed.
type Overview struct {
	ExistingServiceCount int `json:"existing_service_count"`
	DevelopExistingCount int `json:"develop_existing_count"`
	NewServiceCount      int `json:"new_service_count"`
	TotalIdeasAnalyzed   int `json:"total_ideas_analyzed"`
}

type IdeaRef struct {
	Id       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Priority entity.Priority `json:"priority"`
}

// ServiceDemand ranks a catalog service by how many ideas matched it.
type ServiceDemand struct {
	ServiceName   string    `json:"service_name"`
	Category      string    `json:"service_category,omitempty"`
	IdeaCount     int       `json:"idea_count"`
	AvgMatchScore float64   `json:"avg_match_score"`
	SampleIdeas   []IdeaRef `json:"sample_ideas"`
}

type DevelopmentNeed struct {
	IdeaId         uuid.UUID             `json:"idea_id"`
	Title          string                `json:"title"`
	Priority       entity.Priority       `json:"priority"`
	Recommendation entity.Recommendation `json:"service_recommendation"`
	MatchScore     float64               `json:"match_score"`
	Impact         entity.Impact         `json:"impact"`
}

// Gap is a cluster of uncovered ideas sharing a tag.
type Gap struct {
	AreaKeywords []string  `json:"area_keywords"`
	IdeaCount    int       `json:"idea_count"`
	SampleIdeas  []IdeaRef `json:"sample_ideas"`
}

type Report struct {
	Overview           Overview          `json:"overview"`
	TopMatchedServices []ServiceDemand   `json:"top_matched_services"`
	DevelopmentNeeds   []DevelopmentNeed `json:"development_needs"`
	Gaps               []Gap             `json:"gaps"`
	AvgConfidence      float64           `json:"ai_confidence_avg"`
}

// BuildReport aggregates gap and coverage figures over the full idea set.
// Ideas without an analysis only lower the analyzed total, they never skew
// the buckets.
func BuildReport(ideas []*entity.Idea) *Report {
	return &Report{
		Overview:           buildOverview(ideas),
		TopMatchedServices: topMatchedServices(ideas),
		DevelopmentNeeds:   developmentNeeds(ideas),
		Gaps:               findGaps(ideas),
		AvgConfidence:      averageConfidence(ideas),
	}
}

func buildOverview(ideas []*entity.Idea) Overview {
	var o Overview
	for _, idea := range ideas {
		if idea.Analysis == nil {
			continue
		}
		o.TotalIdeasAnalyzed++
		switch idea.Analysis.Recommendation {
		case entity.RecommendationExistingService:
			o.ExistingServiceCount++
		case entity.RecommendationDevelopExisting:
			o.DevelopExistingCount++
		case entity.RecommendationNewService:
			o.NewServiceCount++
		}
	}
	return o
}

func topMatchedServices(ideas []*entity.Idea) []ServiceDemand {
	type agg struct {
		demand     ServiceDemand
		scoreTotal float64
		order      int
	}

	byName := make(map[string]*agg)
	var names []string

	for _, idea := range ideas {
		if idea.Analysis == nil {
			continue
		}
		for _, svc := range idea.Analysis.MatchingServices {
			if svc.Name == "" {
				continue
			}
			a, ok := byName[svc.Name]
			if !ok {
				a = &agg{
					demand: ServiceDemand{
						ServiceName: svc.Name,
						Category:    svc.Category,
						SampleIdeas: []IdeaRef{},
					},
					order: len(names),
				}
				byName[svc.Name] = a
				names = append(names, svc.Name)
			}
			a.demand.IdeaCount++
			a.scoreTotal += svc.MatchScore
			if len(a.demand.SampleIdeas) < sampleIdeasPerService {
				a.demand.SampleIdeas = append(a.demand.SampleIdeas, ideaRef(idea))
			}
		}
	}

	demands := make([]ServiceDemand, 0, len(names))
	orders := make(map[string]int, len(names))
	for _, name := range names {
		a := byName[name]
		a.demand.AvgMatchScore = a.scoreTotal / float64(a.demand.IdeaCount)
		demands = append(demands, a.demand)
		orders[name] = a.order
	}

	sort.SliceStable(demands, func(i, j int) bool {
		if demands[i].IdeaCount != demands[j].IdeaCount {
			return demands[i].IdeaCount > demands[j].IdeaCount
		}
		return orders[demands[i].ServiceName] < orders[demands[j].ServiceName]
	})

	if len(demands) > topServicesLimit {
		demands = demands[:topServicesLimit]
	}
	return demands
}

var priorityRank = map[entity.Priority]int{
	entity.PriorityHigh:   3,
	entity.PriorityMedium: 2,
	entity.PriorityLow:    1,
}

var impactRank = map[entity.Impact]int{
	entity.ImpactHigh:   3,
	entity.ImpactMedium: 2,
	entity.ImpactLow:    1,
}

func developmentNeeds(ideas []*entity.Idea) []DevelopmentNeed {
	var needs []DevelopmentNeed

	for _, idea := range ideas {
		if idea.Analysis == nil {
			continue
		}

		matchScore := 0.0
		for _, svc := range idea.Analysis.MatchingServices {
			if svc.MatchScore > matchScore {
				matchScore = svc.MatchScore
			}
		}

		impact := idea.Analysis.Impact
		if impact == "" {
			impact = entity.ImpactMedium
		}

		needs = append(needs, DevelopmentNeed{
			IdeaId:         idea.Id,
			Title:          idea.Title,
			Priority:       idea.Priority,
			Recommendation: idea.Analysis.Recommendation,
			MatchScore:     matchScore,
			Impact:         impact,
		})
	}

	sort.SliceStable(needs, func(i, j int) bool {
		if priorityRank[needs[i].Priority] != priorityRank[needs[j].Priority] {
			return priorityRank[needs[i].Priority] > priorityRank[needs[j].Priority]
		}
		return impactRank[needs[i].Impact] > impactRank[needs[j].Impact]
	})

	if len(needs) > developmentNeedsLimit {
		needs = needs[:developmentNeedsLimit]
	}
	return needs
}

// findGaps clusters uncovered ideas (new_service recommendation) by shared
// tag. A tag needs at least two ideas to count as a gap.
func findGaps(ideas []*entity.Idea) []Gap {
	byTag := make(map[string][]IdeaRef)
	var tagOrder []string

	for _, idea := range ideas {
		if idea.Analysis == nil || idea.Analysis.Recommendation != entity.RecommendationNewService {
			continue
		}
		for _, tag := range idea.Tags {
			if _, ok := byTag[tag]; !ok {
				tagOrder = append(tagOrder, tag)
			}
			byTag[tag] = append(byTag[tag], ideaRef(idea))
		}
	}

	var gaps []Gap
	orders := make(map[string]int)
	for i, tag := range tagOrder {
		refs := byTag[tag]
		if len(refs) < minIdeasPerGap {
			continue
		}
		samples := refs
		if len(samples) > sampleIdeasPerGap {
			samples = samples[:sampleIdeasPerGap]
		}
		gaps = append(gaps, Gap{
			AreaKeywords: []string{tag},
			IdeaCount:    len(refs),
			SampleIdeas:  samples,
		})
		orders[tag] = i
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].IdeaCount != gaps[j].IdeaCount {
			return gaps[i].IdeaCount > gaps[j].IdeaCount
		}
		return orders[gaps[i].AreaKeywords[0]] < orders[gaps[j].AreaKeywords[0]]
	})

	if len(gaps) > gapLimit {
		gaps = gaps[:gapLimit]
	}
	return gaps
}

func averageConfidence(ideas []*entity.Idea) float64 {
	var total float64
	var count int
	for _, idea := range ideas {
		if idea.Analysis == nil || idea.Analysis.Confidence == 0 {
			continue
		}
		total += idea.Analysis.Confidence
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func ideaRef(idea *entity.Idea) IdeaRef {
	return IdeaRef{
		Id:       idea.Id,
		Title:    idea.Title,
		Priority: idea.Priority,
	}
}
