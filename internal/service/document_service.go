package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/pkg/apperror"
	"innovation-hub-be/internal/pkg/logger"
	"innovation-hub-be/internal/repository/specification"
	"innovation-hub-be/internal/repository/unitofwork"
	"innovation-hub-be/pkg/catalog"
	"innovation-hub-be/pkg/embedding"
	"innovation-hub-be/pkg/events"
	pktNats "innovation-hub-be/pkg/nats"
	"innovation-hub-be/pkg/utils"
)

// Chunking geometry for uploaded documents. Catalog services are small and
// indexed whole, one document per service.
const (
	chunkSize    = 1500
	chunkOverlap = 200

	defaultSearchLimit = 10
)

type IDocumentService interface {
	Upload(ctx context.Context, req *dto.UploadDocumentRequest) (*dto.UploadDocumentResponse, error)
	UploadServiceCatalog(ctx context.Context, htmlContent string) (*dto.UploadCatalogResponse, error)
	List(ctx context.Context) (*dto.ListDocumentsResponse, error)
	Stats(ctx context.Context) (*dto.DocumentStatsResponse, error)
	Search(ctx context.Context, req *dto.SearchDocumentsRequest) (*dto.SearchDocumentsResponse, error)
	Delete(ctx context.Context, name string) (*dto.DeleteDocumentResponse, error)
	Clear(ctx context.Context) (*dto.ClearDocumentsResponse, error)
}

type documentService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	eventPublisher    *pktNats.Publisher
	log               logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
		log:               log,
	}
}

func (s *documentService) Upload(ctx context.Context, req *dto.UploadDocumentRequest) (*dto.UploadDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chunks := utils.SplitText(req.Content, chunkSize, chunkOverlap)

	newChunks := make([]*entity.DocumentChunk, 0, len(chunks))
	for i, chunk := range chunks {
		res, err := s.embeddingProvider.Generate(ctx, chunk, embedding.TaskTypeDocument)
		if err != nil {
			return nil, apperror.Providerf("embedding chunk %d of %q: %v", i, req.Name, err)
		}
		newChunks = append(newChunks, &entity.DocumentChunk{
			Id:           uuid.New(),
			DocumentName: req.Name,
			ChunkIndex:   i,
			TotalChunks:  len(chunks),
			Content:      chunk,
			Embedding:    res.Embedding.Values,
			Source:       entity.SourceUpload,
			CreatedAt:    time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Re-upload replaces the previous version of the document.
	if _, err := uow.DocumentChunkRepository().DeleteByDocumentName(ctx, req.Name); err != nil {
		return nil, err
	}
	if err := uow.DocumentChunkRepository().CreateBulk(ctx, newChunks); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("document", "Document indexed", map[string]interface{}{
		"name": req.Name, "chunks": len(newChunks),
	})

	return &dto.UploadDocumentResponse{Name: req.Name, ChunkCount: len(newChunks)}, nil
}

// UploadServiceCatalog replaces the indexed catalog with the services found
// in the exported HTML table. Every service becomes its own document so
// matches map back to a named service.
func (s *documentService) UploadServiceCatalog(ctx context.Context, htmlContent string) (*dto.UploadCatalogResponse, error) {
	services, err := catalog.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, apperror.Validationf("catalog parse failed: %v", err)
	}
	if len(services) == 0 {
		return nil, apperror.Validationf("catalog contains no services")
	}

	newChunks := make([]*entity.DocumentChunk, 0, len(services))
	for _, svc := range services {
		res, err := s.embeddingProvider.Generate(ctx, svc.EmbeddingText(), embedding.TaskTypeDocument)
		if err != nil {
			return nil, apperror.Providerf("embedding service %q: %v", svc.Name, err)
		}
		newChunks = append(newChunks, &entity.DocumentChunk{
			Id:              uuid.New(),
			DocumentName:    svc.Name,
			ChunkIndex:      0,
			TotalChunks:     1,
			Content:         svc.EmbeddingText(),
			Embedding:       res.Embedding.Values,
			Source:          entity.SourceServiceCatalog,
			ServiceName:     svc.Name,
			ServiceCategory: svc.Category,
			StartDate:       svc.StartDate,
			CreatedAt:       time.Now(),
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	old, err := uow.DocumentChunkRepository().FindAll(ctx, specification.BySource{Source: string(entity.SourceServiceCatalog)})
	if err != nil {
		return nil, err
	}
	for _, chunk := range old {
		if err := uow.DocumentChunkRepository().Delete(ctx, chunk.Id); err != nil {
			return nil, err
		}
	}

	if err := uow.DocumentChunkRepository().CreateBulk(ctx, newChunks); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewCatalogIndexed(len(services))); err != nil {
			s.log.Warn("document", "Failed to publish catalog event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.log.Info("document", "Service catalog indexed", map[string]interface{}{
		"services": len(services),
	})

	return &dto.UploadCatalogResponse{ServiceCount: len(services), ChunkCount: len(newChunks)}, nil
}

func (s *documentService) List(ctx context.Context) (*dto.ListDocumentsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chunks, err := uow.DocumentChunkRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	type docAgg struct {
		info  dto.DocumentInfo
		order int
	}
	byName := make(map[string]*docAgg)
	var names []string

	for _, chunk := range chunks {
		agg, ok := byName[chunk.DocumentName]
		if !ok {
			agg = &docAgg{
				info: dto.DocumentInfo{
					Name:      chunk.DocumentName,
					Source:    string(chunk.Source),
					CreatedAt: chunk.CreatedAt,
				},
				order: len(names),
			}
			byName[chunk.DocumentName] = agg
			names = append(names, chunk.DocumentName)
		}
		agg.info.ChunkCount++
		if chunk.CreatedAt.After(agg.info.CreatedAt) {
			agg.info.CreatedAt = chunk.CreatedAt
		}
	}

	docs := make([]dto.DocumentInfo, 0, len(names))
	for _, name := range names {
		docs = append(docs, byName[name].info)
	}
	sort.SliceStable(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })

	return &dto.ListDocumentsResponse{Documents: docs}, nil
}

func (s *documentService) Stats(ctx context.Context) (*dto.DocumentStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.DocumentChunkRepository()

	chunkCount, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	docCount, err := repo.CountDistinctDocuments(ctx)
	if err != nil {
		return nil, err
	}
	lastModified, err := repo.LastModified(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DocumentStatsResponse{
		DocumentCount: docCount,
		ChunkCount:    chunkCount,
		LastModified:  lastModified,
	}, nil
}

func (s *documentService) Search(ctx context.Context, req *dto.SearchDocumentsRequest) (*dto.SearchDocumentsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	res, err := s.embeddingProvider.Generate(ctx, req.Query, embedding.TaskTypeQuery)
	if err != nil {
		return nil, apperror.Providerf("embedding query: %v", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.DocumentChunkRepository().SearchSimilar(ctx, res.Embedding.Values, limit, entity.DocumentSource(req.Source))
	if err != nil {
		return nil, err
	}

	results := make([]dto.SearchDocumentsResult, 0, len(scored))
	for _, sc := range scored {
		results = append(results, dto.SearchDocumentsResult{
			DocumentName: sc.Chunk.DocumentName,
			Content:      sc.Chunk.Content,
			Similarity:   sc.Similarity,
			Source:       string(sc.Chunk.Source),
		})
	}

	return &dto.SearchDocumentsResponse{Results: results}, nil
}

func (s *documentService) Delete(ctx context.Context, name string) (*dto.DeleteDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	deleted, err := uow.DocumentChunkRepository().DeleteByDocumentName(ctx, name)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, apperror.NotFoundf("document %q", name)
	}

	return &dto.DeleteDocumentResponse{Name: name, DeletedChunks: deleted}, nil
}

func (s *documentService) Clear(ctx context.Context) (*dto.ClearDocumentsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.DocumentChunkRepository().Clear(ctx); err != nil {
		return nil, err
	}

	return &dto.ClearDocumentsResponse{Cleared: true}, nil
}
