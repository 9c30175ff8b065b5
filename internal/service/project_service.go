package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/pkg/apperror"
	"innovation-hub-be/internal/repository/specification"
	"innovation-hub-be/internal/repository/unitofwork"
)

type IProjectService interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	List(ctx context.Context) (*dto.ListProjectsResponse, error)
	Stats(ctx context.Context) (*dto.ProjectStatsResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	Update(ctx context.Context, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LinkIdea(ctx context.Context, req *dto.LinkIdeaRequest) (*dto.ProjectResponse, error)
	UnlinkIdea(ctx context.Context, projectId, ideaId uuid.UUID) (*dto.ProjectResponse, error)
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory) IProjectService {
	return &projectService{
		uowFactory: uowFactory,
	}
}

func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projectType, err := entity.ParseProjectType(req.Type)
	if err != nil {
		return nil, apperror.Validationf("%v", err)
	}
	status := entity.ProjectStatusProposed
	if req.Status != "" {
		if status, err = entity.ParseProjectStatus(req.Status); err != nil {
			return nil, apperror.Validationf("%v", err)
		}
	}

	project := &entity.Project{
		Id:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		Status:          status,
		Type:            projectType,
		PlannedStart:    req.PlannedStart,
		PlannedEnd:      req.PlannedEnd,
		EstimatedBudget: req.EstimatedBudget,
		FundingSource:   req.FundingSource,
		OwnerDepartment: req.OwnerDepartment,
		ContactEmail:    req.ContactEmail,
		ProjectManager:  req.ProjectManager,
		CreatedAt:       time.Now(),
	}

	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

func (s *projectService) List(ctx context.Context) (*dto.ListProjectsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ProjectRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := uow.ProjectRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		res = append(res, toProjectResponse(p))
	}
	return &dto.ListProjectsResponse{Projects: res, Total: total}, nil
}

func (s *projectService) Stats(ctx context.Context) (*dto.ProjectStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.ProjectStatsResponse{
		ByStatus: map[string]int64{},
		ByType:   map[string]int64{},
	}
	for _, p := range projects {
		stats.TotalProjects++
		stats.ByStatus[string(p.Status)]++
		stats.ByType[string(p.Type)]++
		if p.EstimatedBudget != nil {
			stats.TotalBudget += *p.EstimatedBudget
		}
		stats.IdeasLinked += int64(len(p.IdeaIds))
	}
	return stats, nil
}

func (s *projectService) Show(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := s.mustFindProject(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Update(ctx context.Context, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := s.mustFindProject(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	projectType, err := entity.ParseProjectType(req.Type)
	if err != nil {
		return nil, apperror.Validationf("%v", err)
	}
	if req.Status != "" {
		status, err := entity.ParseProjectStatus(req.Status)
		if err != nil {
			return nil, apperror.Validationf("%v", err)
		}
		project.Status = status
	}

	project.Name = req.Name
	project.Description = req.Description
	project.Type = projectType
	project.PlannedStart = req.PlannedStart
	project.PlannedEnd = req.PlannedEnd
	project.EstimatedBudget = req.EstimatedBudget
	project.FundingSource = req.FundingSource
	project.OwnerDepartment = req.OwnerDepartment
	project.ContactEmail = req.ContactEmail
	project.ProjectManager = req.ProjectManager
	now := time.Now()
	project.UpdatedAt = &now

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.mustFindProject(ctx, uow, id); err != nil {
		return err
	}
	return uow.ProjectRepository().Delete(ctx, id)
}

func (s *projectService) LinkIdea(ctx context.Context, req *dto.LinkIdeaRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := s.mustFindProject(ctx, uow, req.ProjectId)
	if err != nil {
		return nil, err
	}

	idea, err := uow.IdeaRepository().FindOne(ctx, specification.ByID{ID: req.IdeaId})
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, apperror.NotFoundf("idea %s", req.IdeaId)
	}

	for _, linked := range project.IdeaIds {
		if linked == req.IdeaId {
			return nil, apperror.Conflictf("idea already linked to project")
		}
	}

	if err := uow.ProjectRepository().LinkIdea(ctx, project.Id, req.IdeaId); err != nil {
		return nil, err
	}
	project.IdeaIds = append(project.IdeaIds, req.IdeaId)

	return toProjectResponse(project), nil
}

func (s *projectService) UnlinkIdea(ctx context.Context, projectId, ideaId uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	project, err := s.mustFindProject(ctx, uow, projectId)
	if err != nil {
		return nil, err
	}

	found := false
	remaining := project.IdeaIds[:0]
	for _, linked := range project.IdeaIds {
		if linked == ideaId {
			found = true
			continue
		}
		remaining = append(remaining, linked)
	}
	if !found {
		return nil, apperror.NotFoundf("idea %s is not linked to project %s", ideaId, projectId)
	}

	if err := uow.ProjectRepository().UnlinkIdea(ctx, projectId, ideaId); err != nil {
		return nil, err
	}
	project.IdeaIds = remaining

	return toProjectResponse(project), nil
}

func (s *projectService) mustFindProject(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Project, error) {
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperror.NotFoundf("project %s", id)
	}
	return project, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	ideaIds := p.IdeaIds
	if ideaIds == nil {
		ideaIds = []uuid.UUID{}
	}
	return &dto.ProjectResponse{
		Id:              p.Id,
		Name:            p.Name,
		Description:     p.Description,
		Status:          string(p.Status),
		Type:            string(p.Type),
		PlannedStart:    p.PlannedStart,
		PlannedEnd:      p.PlannedEnd,
		EstimatedBudget: p.EstimatedBudget,
		FundingSource:   p.FundingSource,
		OwnerDepartment: p.OwnerDepartment,
		ContactEmail:    p.ContactEmail,
		ProjectManager:  p.ProjectManager,
		IdeaIds:         ideaIds,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
