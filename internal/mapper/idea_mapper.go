package mapper

import (
	"encoding/json"
	"time"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type IdeaMapper struct{}

func NewIdeaMapper() *IdeaMapper {
	return &IdeaMapper{}
}

func (m *IdeaMapper) ToEntity(i *model.Idea) *entity.Idea {
	if i == nil {
		return nil
	}

	var deletedAt *time.Time
	if i.DeletedAt.Valid {
		t := i.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	tags := make([]string, len(i.Tags))
	for idx, tag := range i.Tags {
		tags[idx] = tag.Name
	}

	e := &entity.Idea{
		Id:          i.Id,
		Title:       i.Title,
		Description: i.Description,
		Type:        entity.IdeaType(i.Type),
		Status:      entity.IdeaStatus(i.Status),
		Priority:    entity.Priority(i.Priority),
		TargetGroup: entity.TargetGroup(i.TargetGroup),
		Category:    i.Category,
		Tags:        tags,
		VoteCount:   i.VoteCount,
		SubmitterId: i.SubmitterId,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   i.DeletedAt.Valid,
	}

	if i.AnalyzedAt != nil {
		analysis := &entity.IdeaAnalysis{
			AnalyzedAt: *i.AnalyzedAt,
		}
		if i.AiSentiment != nil {
			analysis.Sentiment = *i.AiSentiment
		}
		if i.AiConfidence != nil {
			analysis.Confidence = *i.AiConfidence
		}
		if i.AiNotes != nil {
			analysis.Notes = *i.AiNotes
		}
		if i.Recommendation != nil {
			analysis.Recommendation = entity.Recommendation(*i.Recommendation)
		}
		if i.ServiceConfidence != nil {
			analysis.ServiceConfidence = *i.ServiceConfidence
		}
		if i.ServiceReasoning != nil {
			analysis.Reasoning = *i.ServiceReasoning
		}
		if i.Impact != nil {
			analysis.Impact = entity.Impact(*i.Impact)
		}
		if len(i.MatchingServices) > 0 {
			// Corrupt JSON leaves the match list empty rather than failing the read
			_ = json.Unmarshal(i.MatchingServices, &analysis.MatchingServices)
		}
		e.Analysis = analysis
	}

	return e
}

func (m *IdeaMapper) ToModel(e *entity.Idea) *model.Idea {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	tags := make([]model.Tag, len(e.Tags))
	for idx, name := range e.Tags {
		tags[idx] = model.Tag{Name: name}
	}

	i := &model.Idea{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		Type:        string(e.Type),
		Status:      string(e.Status),
		Priority:    string(e.Priority),
		TargetGroup: string(e.TargetGroup),
		Category:    e.Category,
		Tags:        tags,
		VoteCount:   e.VoteCount,
		SubmitterId: e.SubmitterId,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}

	if a := e.Analysis; a != nil {
		sentiment := a.Sentiment
		confidence := a.Confidence
		notes := a.Notes
		recommendation := string(a.Recommendation)
		serviceConfidence := a.ServiceConfidence
		reasoning := a.Reasoning
		impact := string(a.Impact)
		analyzedAt := a.AnalyzedAt

		i.AiSentiment = &sentiment
		i.AiConfidence = &confidence
		i.AiNotes = &notes
		i.Recommendation = &recommendation
		i.ServiceConfidence = &serviceConfidence
		i.ServiceReasoning = &reasoning
		i.Impact = &impact
		i.AnalyzedAt = &analyzedAt

		if a.MatchingServices != nil {
			raw, err := json.Marshal(a.MatchingServices)
			if err == nil {
				i.MatchingServices = datatypes.JSON(raw)
			}
		}
	}

	return i
}

func (m *IdeaMapper) ToEntities(ideas []*model.Idea) []*entity.Idea {
	entities := make([]*entity.Idea, len(ideas))
	for idx, i := range ideas {
		entities[idx] = m.ToEntity(i)
	}
	return entities
}

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}
	return &entity.Comment{
		Id:        c.Id,
		IdeaId:    c.IdeaId,
		AuthorId:  c.AuthorId,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (m *CommentMapper) ToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}
	return &model.Comment{
		Id:        c.Id,
		IdeaId:    c.IdeaId,
		AuthorId:  c.AuthorId,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

type VoteMapper struct{}

func NewVoteMapper() *VoteMapper {
	return &VoteMapper{}
}

func (m *VoteMapper) ToEntity(v *model.Vote) *entity.Vote {
	if v == nil {
		return nil
	}
	return &entity.Vote{
		Id:        v.Id,
		IdeaId:    v.IdeaId,
		UserId:    v.UserId,
		CreatedAt: v.CreatedAt,
	}
}

func (m *VoteMapper) ToModel(v *entity.Vote) *model.Vote {
	if v == nil {
		return nil
	}
	return &model.Vote{
		Id:        v.Id,
		IdeaId:    v.IdeaId,
		UserId:    v.UserId,
		CreatedAt: v.CreatedAt,
	}
}
