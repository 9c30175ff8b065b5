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

type ITaxonomyService interface {
	ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	ListTags(ctx context.Context) (*dto.ListTagsResponse, error)
}

type taxonomyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaxonomyService(uowFactory unitofwork.RepositoryFactory) ITaxonomyService {
	return &taxonomyService{
		uowFactory: uowFactory,
	}
}

func (s *taxonomyService) ListCategories(ctx context.Context) (*dto.ListCategoriesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, toCategoryResponse(c))
	}
	return &dto.ListCategoriesResponse{Categories: res, Total: int64(len(res))}, nil
}

func (s *taxonomyService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CategoryRepository().FindOne(ctx, specification.Filter("name", req.Name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflictf("category %q already exists", req.Name)
	}

	color := req.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	category := &entity.Category{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
		CreatedAt:   time.Now(),
	}
	if err := uow.CategoryRepository().Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func (s *taxonomyService) ListTags(ctx context.Context) (*dto.ListTagsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, &dto.TagResponse{Id: t.Id, Name: t.Name, CreatedAt: t.CreatedAt})
	}
	return &dto.ListTagsResponse{Tags: res, Total: int64(len(res))}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
	}
}
