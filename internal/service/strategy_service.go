package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/pkg/apperror"
	"innovation-hub-be/internal/repository/specification"
	"innovation-hub-be/internal/repository/unitofwork"
)

type IStrategyService interface {
	Create(ctx context.Context, req *dto.CreateStrategyDocumentRequest) (*dto.StrategyDocumentResponse, error)
	List(ctx context.Context) (*dto.ListStrategyDocumentsResponse, error)
	Stats(ctx context.Context) (*dto.StrategyStatsResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.StrategyDocumentResponse, error)
	Update(ctx context.Context, req *dto.UpdateStrategyDocumentRequest) (*dto.StrategyDocumentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type strategyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStrategyService(uowFactory unitofwork.RepositoryFactory) IStrategyService {
	return &strategyService{
		uowFactory: uowFactory,
	}
}

func (s *strategyService) Create(ctx context.Context, req *dto.CreateStrategyDocumentRequest) (*dto.StrategyDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docType, err := entity.ParseStrategyDocumentType(req.Type)
	if err != nil {
		return nil, apperror.Validationf("%v", err)
	}

	doc := &entity.StrategyDocument{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Type:        docType,
		Level:       entity.StrategyLevel(req.Level),
		Source:      req.Source,
		ExternalRef: req.ExternalRef,
		ValidFrom:   req.ValidFrom,
		ValidTo:     req.ValidTo,
		CreatedAt:   time.Now(),
	}

	if err := uow.StrategyDocumentRepository().Create(ctx, doc); err != nil {
		return nil, err
	}
	return toStrategyDocumentResponse(doc), nil
}

func (s *strategyService) List(ctx context.Context) (*dto.ListStrategyDocumentsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.StrategyDocumentRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := uow.StrategyDocumentRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.StrategyDocumentResponse, 0, len(docs))
	for _, doc := range docs {
		res = append(res, toStrategyDocumentResponse(doc))
	}
	return &dto.ListStrategyDocumentsResponse{Documents: res, Total: total}, nil
}

func (s *strategyService) Stats(ctx context.Context) (*dto.StrategyStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.StrategyDocumentRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &dto.StrategyStatsResponse{
		ByType:  map[string]int64{},
		ByLevel: map[string]int64{},
	}
	for _, doc := range docs {
		stats.TotalDocuments++
		stats.ByType[string(doc.Type)]++
		stats.ByLevel[strconv.Itoa(int(doc.Level))]++
		// A document with no end date, or one still inside its validity
		// window, counts as active.
		if doc.ValidTo == nil || doc.ValidTo.After(now) {
			stats.ActiveCount++
		}
	}
	return stats, nil
}

func (s *strategyService) Show(ctx context.Context, id uuid.UUID) (*dto.StrategyDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := s.mustFindDocument(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return toStrategyDocumentResponse(doc), nil
}

func (s *strategyService) Update(ctx context.Context, req *dto.UpdateStrategyDocumentRequest) (*dto.StrategyDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := s.mustFindDocument(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	docType, err := entity.ParseStrategyDocumentType(req.Type)
	if err != nil {
		return nil, apperror.Validationf("%v", err)
	}

	doc.Title = req.Title
	doc.Description = req.Description
	doc.Type = docType
	doc.Level = entity.StrategyLevel(req.Level)
	doc.Source = req.Source
	doc.ExternalRef = req.ExternalRef
	doc.ValidFrom = req.ValidFrom
	doc.ValidTo = req.ValidTo
	now := time.Now()
	doc.UpdatedAt = &now

	if err := uow.StrategyDocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}
	return toStrategyDocumentResponse(doc), nil
}

func (s *strategyService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.mustFindDocument(ctx, uow, id); err != nil {
		return err
	}
	return uow.StrategyDocumentRepository().Delete(ctx, id)
}

func (s *strategyService) mustFindDocument(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.StrategyDocument, error) {
	doc, err := uow.StrategyDocumentRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NotFoundf("strategy document %s", id)
	}
	return doc, nil
}

func toStrategyDocumentResponse(doc *entity.StrategyDocument) *dto.StrategyDocumentResponse {
	return &dto.StrategyDocumentResponse{
		Id:          doc.Id,
		Title:       doc.Title,
		Description: doc.Description,
		Type:        string(doc.Type),
		Level:       int(doc.Level),
		Source:      doc.Source,
		ExternalRef: doc.ExternalRef,
		ValidFrom:   doc.ValidFrom,
		ValidTo:     doc.ValidTo,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
