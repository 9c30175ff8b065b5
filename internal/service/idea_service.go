package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/pkg/apperror"
	"innovation-hub-be/internal/pkg/logger"
	"innovation-hub-be/internal/pkg/mailer"
	"innovation-hub-be/internal/repository/memory"
	"innovation-hub-be/internal/repository/specification"
	"innovation-hub-be/internal/repository/unitofwork"
	"innovation-hub-be/pkg/ai/categorizer"
	"innovation-hub-be/pkg/ai/matcher"
	"innovation-hub-be/pkg/events"
	pktNats "innovation-hub-be/pkg/nats"
	"innovation-hub-be/pkg/store"
)

type IIdeaService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateIdeaRequest) (*dto.CreateIdeaResponse, error)
	List(ctx context.Context, req *dto.ListIdeasRequest) (*dto.ListIdeasResponse, error)
	Stats(ctx context.Context) (*dto.IdeaStatsResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.IdeaResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, req *dto.UpdateIdeaStatusRequest) (*dto.IdeaResponse, error)
	Analyze(ctx context.Context, ideaId uuid.UUID) (*dto.IdeaResponse, error)
	ToggleVote(ctx context.Context, userId, ideaId uuid.UUID) (*dto.VoteResponse, error)
	VoteStatus(ctx context.Context, userId, ideaId uuid.UUID) (*dto.VoteStatusResponse, error)
	ListComments(ctx context.Context, ideaId uuid.UUID) ([]*dto.CommentResponse, error)
	AddComment(ctx context.Context, userId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
}

type ideaService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	matchEngine      *matcher.Engine
	categorizer      *categorizer.Categorizer
	analysisGuard    *memory.AnalysisGuard
	voteCache        *store.VoteCache
	emailService     mailer.IEmailService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewIdeaService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	matchEngine *matcher.Engine,
	cat *categorizer.Categorizer,
	analysisGuard *memory.AnalysisGuard,
	voteCache *store.VoteCache,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IIdeaService {
	return &ideaService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		matchEngine:      matchEngine,
		categorizer:      cat,
		analysisGuard:    analysisGuard,
		voteCache:        voteCache,
		emailService:     emailService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *ideaService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateIdeaRequest) (*dto.CreateIdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ideaType, err := entity.ParseIdeaType(req.Type)
	if err != nil {
		return nil, apperror.Validationf("%v", err)
	}
	targetGroup, err := entity.ParseTargetGroup(req.TargetGroup)
	if err != nil {
		return nil, apperror.Validationf("%v", err)
	}
	priority := entity.PriorityMedium
	if req.Priority != "" {
		if priority, err = entity.ParsePriority(req.Priority); err != nil {
			return nil, apperror.Validationf("%v", err)
		}
	}

	idea := entity.Idea{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Type:        ideaType,
		Status:      entity.IdeaStatusNew,
		Priority:    priority,
		TargetGroup: targetGroup,
		SubmitterId: userId,
		CreatedAt:   time.Now(),
	}

	if err := uow.IdeaRepository().Create(ctx, &idea); err != nil {
		return nil, err
	}

	msgPayload := dto.PublishAnalyzeIdeaMessage{IdeaId: idea.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewIdeaCreated(idea.Id, userId, idea.Title))

	return &dto.CreateIdeaResponse{Id: idea.Id, Status: string(idea.Status)}, nil
}

func (s *ideaService) List(ctx context.Context, req *dto.ListIdeasRequest) (*dto.ListIdeasResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs, err := buildIdeaFilters(req)
	if err != nil {
		return nil, err
	}

	total, err := uow.IdeaRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	listSpecs := append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)

	ideas, err := uow.IdeaRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.IdeaResponse, 0, len(ideas))
	for _, idea := range ideas {
		res = append(res, toIdeaResponse(idea))
	}

	return &dto.ListIdeasResponse{
		Ideas:    res,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func buildIdeaFilters(req *dto.ListIdeasRequest) ([]specification.Specification, error) {
	var specs []specification.Specification

	if req.Status != "" {
		if _, err := entity.ParseIdeaStatus(req.Status); err != nil {
			return nil, apperror.Validationf("%v", err)
		}
		specs = append(specs, specification.WithStatus{Status: req.Status})
	}
	if req.Type != "" {
		if _, err := entity.ParseIdeaType(req.Type); err != nil {
			return nil, apperror.Validationf("%v", err)
		}
		specs = append(specs, specification.WithType{Type: req.Type})
	}
	if req.Priority != "" {
		if _, err := entity.ParsePriority(req.Priority); err != nil {
			return nil, apperror.Validationf("%v", err)
		}
		specs = append(specs, specification.WithPriority{Priority: req.Priority})
	}
	if req.TargetGroup != "" {
		if _, err := entity.ParseTargetGroup(req.TargetGroup); err != nil {
			return nil, apperror.Validationf("%v", err)
		}
		specs = append(specs, specification.WithTargetGroup{TargetGroup: req.TargetGroup})
	}
	if req.Category != "" {
		specs = append(specs, specification.WithCategory{Category: req.Category})
	}
	if req.Tag != "" {
		specs = append(specs, specification.WithTag{Tag: req.Tag})
	}
	if req.Search != "" {
		specs = append(specs, specification.TitleOrDescriptionContains{Search: req.Search})
	}

	return specs, nil
}

func (s *ideaService) Stats(ctx context.Context) (*dto.IdeaStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.IdeaRepository()

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.IdeaStatsResponse{
		Total:      total,
		ByStatus:   map[string]int64{},
		ByType:     map[string]int64{},
		ByPriority: map[string]int64{},
	}

	for _, st := range []entity.IdeaStatus{
		entity.IdeaStatusNew, entity.IdeaStatusUnderReview, entity.IdeaStatusApproved,
		entity.IdeaStatusInDevelopment, entity.IdeaStatusImplemented, entity.IdeaStatusRejected,
	} {
		n, err := repo.Count(ctx, specification.WithStatus{Status: string(st)})
		if err != nil {
			return nil, err
		}
		stats.ByStatus[string(st)] = n
		if !st.IsTerminal() {
			stats.Open += n
		}
	}

	for _, ty := range []entity.IdeaType{
		entity.IdeaTypeIdea, entity.IdeaTypeProblem, entity.IdeaTypeNeed, entity.IdeaTypeImprovement,
	} {
		n, err := repo.Count(ctx, specification.WithType{Type: string(ty)})
		if err != nil {
			return nil, err
		}
		stats.ByType[string(ty)] = n
	}

	for _, p := range []entity.Priority{entity.PriorityLow, entity.PriorityMedium, entity.PriorityHigh} {
		n, err := repo.Count(ctx, specification.WithPriority{Priority: string(p)})
		if err != nil {
			return nil, err
		}
		stats.ByPriority[string(p)] = n
	}

	return stats, nil
}

func (s *ideaService) Show(ctx context.Context, id uuid.UUID) (*dto.IdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := s.mustFindIdea(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return toIdeaResponse(idea), nil
}

func (s *ideaService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := s.mustFindIdea(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	ideaType, err := entity.ParseIdeaType(req.Type)
	if err != nil {
		return nil, apperror.Validationf("%v", err)
	}
	targetGroup, err := entity.ParseTargetGroup(req.TargetGroup)
	if err != nil {
		return nil, apperror.Validationf("%v", err)
	}

	idea.Title = req.Title
	idea.Description = req.Description
	idea.Type = ideaType
	idea.TargetGroup = targetGroup
	if req.Priority != "" {
		priority, err := entity.ParsePriority(req.Priority)
		if err != nil {
			return nil, apperror.Validationf("%v", err)
		}
		idea.Priority = priority
	}
	now := time.Now()
	idea.UpdatedAt = &now

	if err := uow.IdeaRepository().Update(ctx, idea); err != nil {
		return nil, err
	}

	return toIdeaResponse(idea), nil
}

func (s *ideaService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.mustFindIdea(ctx, uow, id); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Votes, comments and tag links go with the idea.
	if err := uow.IdeaRepository().HardDelete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *ideaService) UpdateStatus(ctx context.Context, req *dto.UpdateIdeaStatusRequest) (*dto.IdeaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := s.mustFindIdea(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	next, err := entity.ParseIdeaStatus(req.Status)
	if err != nil {
		return nil, apperror.Validationf("%v", err)
	}

	if next == idea.Status {
		return toIdeaResponse(idea), nil
	}

	previous := idea.Status
	idea.Status = next
	now := time.Now()
	idea.UpdatedAt = &now

	if err := uow.IdeaRepository().Update(ctx, idea); err != nil {
		return nil, err
	}

	s.notifySubmitter(ctx, uow, idea, previous)
	s.publishEvent(ctx, events.NewIdeaStatusChanged(idea.Id, string(previous), string(next)))

	return toIdeaResponse(idea), nil
}

// notifySubmitter mails the idea's author about a status change. Failures
// are logged, the transition stands either way.
func (s *ideaService) notifySubmitter(ctx context.Context, uow unitofwork.UnitOfWork, idea *entity.Idea, from entity.IdeaStatus) {
	if s.emailService == nil {
		return
	}
	submitter, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: idea.SubmitterId})
	if err != nil || submitter == nil {
		s.log.Warn("idea", "Cannot resolve submitter for status mail", map[string]interface{}{
			"idea_id": idea.Id, "error": err,
		})
		return
	}

	go func(email, title, from, to string) {
		if err := s.emailService.SendIdeaStatusChanged(email, title, from, to); err != nil {
			s.log.Warn("idea", "Status mail failed", map[string]interface{}{"error": err.Error()})
		}
	}(submitter.Email, idea.Title, string(from), string(idea.Status))
}

// Analyze runs categorization and catalog matching for one idea. A second
// call while a run is in flight is rejected. The matching step is required,
// the LLM categorization enriches best effort.
func (s *ideaService) Analyze(ctx context.Context, ideaId uuid.UUID) (*dto.IdeaResponse, error) {
	if !s.analysisGuard.TryAcquire(ideaId) {
		return nil, apperror.ErrAnalysisInProgress
	}
	defer s.analysisGuard.Release(ideaId)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := s.mustFindIdea(ctx, uow, ideaId)
	if err != nil {
		return nil, err
	}

	matchResult, err := s.matchEngine.Match(ctx, idea.Title, idea.Description)
	if err != nil {
		return nil, apperror.Providerf("catalog matching failed: %v", err)
	}

	catResult, err := s.categorizer.Analyze(ctx, idea.Title, idea.Description)
	if err != nil {
		s.log.Warn("idea", "Categorization failed, keeping match result only", map[string]interface{}{
			"idea_id": ideaId, "error": err.Error(),
		})
		catResult = nil
	}

	analysis := &entity.IdeaAnalysis{
		Recommendation:    matchResult.Recommendation,
		ServiceConfidence: matchResult.Confidence,
		Reasoning:         matchResult.Reasoning,
		MatchingServices:  matchResult.MatchingServices,
		Impact:            matchResult.Recommendation.DevelopmentImpact(),
		AnalyzedAt:        time.Now(),
	}

	var newTags []string
	if catResult != nil {
		analysis.Sentiment = catResult.Sentiment
		analysis.Confidence = catResult.Confidence
		idea.Category = &catResult.Category
		idea.Priority = catResult.Priority
		newTags = catResult.Tags
	}
	analysis.Notes = buildAnalysisNotes(idea, analysis)
	idea.Analysis = analysis

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.IdeaRepository().Update(ctx, idea); err != nil {
		return nil, err
	}
	if len(newTags) > 0 {
		if err := uow.IdeaRepository().AddTags(ctx, idea.Id, newTags); err != nil {
			return nil, err
		}
		idea.Tags = mergeTags(idea.Tags, newTags)
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewIdeaAnalyzed(idea.Id, string(analysis.Recommendation), analysis.ServiceConfidence))

	return toIdeaResponse(idea), nil
}

func buildAnalysisNotes(idea *entity.Idea, analysis *entity.IdeaAnalysis) string {
	var notes []string

	if idea.Category != nil {
		notes = append(notes, fmt.Sprintf("Categorized as: %s", *idea.Category))
	}
	notes = append(notes, fmt.Sprintf("Priority: %s", idea.Priority))
	if analysis.Sentiment != "" {
		notes = append(notes, fmt.Sprintf("Sentiment: %s", analysis.Sentiment))
	}

	switch analysis.Recommendation {
	case entity.RecommendationExistingService:
		notes = append(notes, "Service need: covered by an existing service")
	case entity.RecommendationDevelopExisting:
		notes = append(notes, "Service need: extend an existing service")
	case entity.RecommendationNewService:
		notes = append(notes, "Service need: a new service is required")
	}

	if analysis.Confidence > 0 {
		notes = append(notes, fmt.Sprintf("AI analysis reliability: %d%%", int(analysis.Confidence*100)))
	}

	return strings.Join(notes, " | ")
}

func mergeTags(existing, added []string) []string {
	seen := make(map[string]bool, len(existing))
	merged := append([]string{}, existing...)
	for _, t := range existing {
		seen[t] = true
	}
	for _, t := range added {
		if !seen[t] {
			seen[t] = true
			merged = append(merged, t)
		}
	}
	return merged
}

func (s *ideaService) ToggleVote(ctx context.Context, userId, ideaId uuid.UUID) (*dto.VoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	idea, err := s.mustFindIdea(ctx, uow, ideaId)
	if err != nil {
		return nil, err
	}

	existing, err := uow.VoteRepository().FindByIdeaAndUser(ctx, ideaId, userId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	var voted bool
	var count int

	if existing != nil {
		if err := uow.VoteRepository().Delete(ctx, existing.Id); err != nil {
			return nil, err
		}
		if count, err = uow.IdeaRepository().AdjustVoteCount(ctx, ideaId, -1); err != nil {
			return nil, err
		}
		voted = false
	} else {
		vote := &entity.Vote{
			Id:        uuid.New(),
			IdeaId:    ideaId,
			UserId:    userId,
			CreatedAt: time.Now(),
		}
		if err := uow.VoteRepository().Create(ctx, vote); err != nil {
			// Unique index on (idea_id, user_id): a concurrent toggle won.
			return nil, apperror.Conflictf("vote already registered")
		}
		if count, err = uow.IdeaRepository().AdjustVoteCount(ctx, ideaId, 1); err != nil {
			return nil, err
		}
		voted = true
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.voteCache != nil {
		var cacheErr error
		if voted {
			cacheErr = s.voteCache.MarkVoted(ctx, userId, ideaId)
		} else {
			cacheErr = s.voteCache.MarkUnvoted(ctx, userId, ideaId)
		}
		if cacheErr != nil {
			s.log.Warn("idea", "Vote cache write failed", map[string]interface{}{"error": cacheErr.Error()})
		}
	}

	return &dto.VoteResponse{IdeaId: idea.Id, Voted: voted, VoteCount: count}, nil
}

func (s *ideaService) VoteStatus(ctx context.Context, userId, ideaId uuid.UUID) (*dto.VoteStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.mustFindIdea(ctx, uow, ideaId); err != nil {
		return nil, err
	}

	votes, err := uow.VoteRepository().CountByIdea(ctx, ideaId)
	if err != nil {
		return nil, err
	}

	var voted bool
	fromCache := false
	if s.voteCache != nil {
		cached, hit, err := s.voteCache.IsVoted(ctx, userId, ideaId)
		if err != nil {
			s.log.Warn("idea", "Vote cache read failed", map[string]interface{}{"error": err.Error()})
		} else if hit {
			voted = cached
			fromCache = true
		}
	}

	if !fromCache {
		vote, err := uow.VoteRepository().FindByIdeaAndUser(ctx, ideaId, userId)
		if err != nil {
			return nil, err
		}
		voted = vote != nil

		if s.voteCache != nil {
			var cacheErr error
			if voted {
				cacheErr = s.voteCache.MarkVoted(ctx, userId, ideaId)
			} else {
				cacheErr = s.voteCache.MarkUnvoted(ctx, userId, ideaId)
			}
			if cacheErr != nil {
				s.log.Warn("idea", "Vote cache write failed", map[string]interface{}{"error": cacheErr.Error()})
			}
		}
	}

	return &dto.VoteStatusResponse{IdeaId: ideaId, Voted: voted, Votes: int(votes)}, nil
}

func (s *ideaService) ListComments(ctx context.Context, ideaId uuid.UUID) ([]*dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.mustFindIdea(ctx, uow, ideaId); err != nil {
		return nil, err
	}

	comments, err := uow.CommentRepository().FindAllByIdea(ctx, ideaId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		res = append(res, &dto.CommentResponse{
			Id:         c.Id,
			IdeaId:     c.IdeaId,
			AuthorId:   c.AuthorId,
			AuthorName: c.AuthorName,
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
		})
	}
	return res, nil
}

func (s *ideaService) AddComment(ctx context.Context, userId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.mustFindIdea(ctx, uow, req.IdeaId); err != nil {
		return nil, err
	}

	author, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	authorName := "Unknown"
	if author != nil {
		authorName = author.Name
	}

	comment := &entity.Comment{
		Id:         uuid.New(),
		IdeaId:     req.IdeaId,
		AuthorId:   userId,
		AuthorName: authorName,
		Content:    req.Content,
		CreatedAt:  time.Now(),
	}

	if err := uow.CommentRepository().Create(ctx, comment); err != nil {
		return nil, err
	}

	return &dto.CommentResponse{
		Id:         comment.Id,
		IdeaId:     comment.IdeaId,
		AuthorId:   comment.AuthorId,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt,
	}, nil
}

func (s *ideaService) mustFindIdea(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Idea, error) {
	idea, err := uow.IdeaRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, apperror.NotFoundf("idea %s", id)
	}
	return idea, nil
}

func (s *ideaService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	// Events feed auxiliary consumers, a publish failure never fails the request.
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("idea", "Failed to publish event", map[string]interface{}{
			"event": evt.EventType(), "error": err.Error(),
		})
	}
}

func toIdeaResponse(idea *entity.Idea) *dto.IdeaResponse {
	res := &dto.IdeaResponse{
		Id:          idea.Id,
		Title:       idea.Title,
		Description: idea.Description,
		Type:        string(idea.Type),
		Status:      string(idea.Status),
		Priority:    string(idea.Priority),
		TargetGroup: string(idea.TargetGroup),
		Category:    idea.Category,
		Tags:        idea.Tags,
		VoteCount:   idea.VoteCount,
		SubmitterId: idea.SubmitterId,
		CreatedAt:   idea.CreatedAt,
		UpdatedAt:   idea.UpdatedAt,
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	if a := idea.Analysis; a != nil {
		res.Analysis = &dto.IdeaAnalysisResponse{
			Sentiment:         a.Sentiment,
			Confidence:        a.Confidence,
			Notes:             a.Notes,
			Recommendation:    string(a.Recommendation),
			ServiceConfidence: a.ServiceConfidence,
			Reasoning:         a.Reasoning,
			MatchingServices:  a.MatchingServices,
			Impact:            string(a.Impact),
			AnalyzedAt:        a.AnalyzedAt,
		}
		if res.Analysis.MatchingServices == nil {
			res.Analysis.MatchingServices = []entity.ServiceMatch{}
		}
	}
	return res
}
