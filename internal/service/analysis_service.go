package service

import (
	"context"

	"innovation-hub-be/internal/dto"
	"innovation-hub-be/internal/repository/specification"
	"innovation-hub-be/internal/repository/unitofwork"
	"innovation-hub-be/pkg/ai/gap"
)

type IAnalysisService interface {
	Stats(ctx context.Context) (*dto.AnalysisStatsResponse, error)
}

type analysisService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAnalysisService(uowFactory unitofwork.RepositoryFactory) IAnalysisService {
	return &analysisService{
		uowFactory: uowFactory,
	}
}

// Stats aggregates the gap/coverage report over analyzed ideas. The catalog
// index's last-modified time is attached so clients can spot analyses that
// predate the current catalog.
func (s *analysisService) Stats(ctx context.Context) (*dto.AnalysisStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ideas, err := uow.IdeaRepository().FindAll(ctx, specification.Analyzed{})
	if err != nil {
		return nil, err
	}

	report := gap.BuildReport(ideas)

	lastModified, err := uow.DocumentChunkRepository().LastModified(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AnalysisStatsResponse{
		Overview:           report.Overview,
		TopMatchedServices: report.TopMatchedServices,
		DevelopmentNeeds:   report.DevelopmentNeeds,
		Gaps:               report.Gaps,
		AvgConfidence:      report.AvgConfidence,
		IndexLastModified:  lastModified,
	}, nil
}
