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

type IFundingService interface {
	Create(ctx context.Context, req *dto.CreateFundingCallRequest) (*dto.FundingCallResponse, error)
	List(ctx context.Context) (*dto.ListFundingCallsResponse, error)
	Stats(ctx context.Context) (*dto.FundingStatsResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.FundingCallResponse, error)
	Update(ctx context.Context, req *dto.UpdateFundingCallRequest) (*dto.FundingCallResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fundingService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFundingService(uowFactory unitofwork.RepositoryFactory) IFundingService {
	return &fundingService{
		uowFactory: uowFactory,
	}
}

func (s *fundingService) Create(ctx context.Context, req *dto.CreateFundingCallRequest) (*dto.FundingCallResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := entity.FundingCallOpen
	if req.Status != "" {
		var err error
		if status, err = entity.ParseFundingCallStatus(req.Status); err != nil {
			return nil, apperror.Validationf("%v", err)
		}
	}
	if err := validateBudgetRange(req.BudgetMin, req.BudgetMax); err != nil {
		return nil, err
	}

	call := &entity.FundingCall{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Program:     req.Program,
		Funder:      req.Funder,
		Status:      status,
		Deadline:    req.Deadline,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Url:         req.Url,
		CreatedAt:   time.Now(),
	}

	if err := uow.FundingCallRepository().Create(ctx, call); err != nil {
		return nil, err
	}
	return toFundingCallResponse(call), nil
}

func (s *fundingService) List(ctx context.Context) (*dto.ListFundingCallsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.FundingCallRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	calls, err := uow.FundingCallRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.FundingCallResponse, 0, len(calls))
	for _, call := range calls {
		res = append(res, toFundingCallResponse(call))
	}
	return &dto.ListFundingCallsResponse{Calls: res, Total: total}, nil
}

func (s *fundingService) Stats(ctx context.Context) (*dto.FundingStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	calls, err := uow.FundingCallRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cutoff := now.AddDate(0, 0, 30)
	stats := &dto.FundingStatsResponse{
		ByStatus: map[string]int64{},
		ByFunder: map[string]int64{},
	}
	for _, call := range calls {
		stats.Total++
		stats.ByStatus[string(call.Status)]++
		if call.Funder != "" {
			stats.ByFunder[call.Funder]++
		}
		if call.Status == entity.FundingCallOpen && call.BudgetMax != nil {
			stats.OpenBudgetMax += *call.BudgetMax
		}
		if call.Deadline != nil && call.Deadline.After(now) && call.Deadline.Before(cutoff) {
			stats.DeadlinesIn30Days++
		}
	}
	return stats, nil
}

func (s *fundingService) Show(ctx context.Context, id uuid.UUID) (*dto.FundingCallResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	call, err := s.mustFindCall(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return toFundingCallResponse(call), nil
}

func (s *fundingService) Update(ctx context.Context, req *dto.UpdateFundingCallRequest) (*dto.FundingCallResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	call, err := s.mustFindCall(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		status, err := entity.ParseFundingCallStatus(req.Status)
		if err != nil {
			return nil, apperror.Validationf("%v", err)
		}
		call.Status = status
	}
	if err := validateBudgetRange(req.BudgetMin, req.BudgetMax); err != nil {
		return nil, err
	}

	call.Title = req.Title
	call.Description = req.Description
	call.Program = req.Program
	call.Funder = req.Funder
	call.Deadline = req.Deadline
	call.BudgetMin = req.BudgetMin
	call.BudgetMax = req.BudgetMax
	call.Url = req.Url
	now := time.Now()
	call.UpdatedAt = &now

	if err := uow.FundingCallRepository().Update(ctx, call); err != nil {
		return nil, err
	}
	return toFundingCallResponse(call), nil
}

func (s *fundingService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.mustFindCall(ctx, uow, id); err != nil {
		return err
	}
	return uow.FundingCallRepository().Delete(ctx, id)
}

func (s *fundingService) mustFindCall(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.FundingCall, error) {
	call, err := uow.FundingCallRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if call == nil {
		return nil, apperror.NotFoundf("funding call %s", id)
	}
	return call, nil
}

func validateBudgetRange(min, max *float64) error {
	if min != nil && max != nil && *min > *max {
		return apperror.Validationf("budget_min must not exceed budget_max")
	}
	return nil
}

func toFundingCallResponse(call *entity.FundingCall) *dto.FundingCallResponse {
	return &dto.FundingCallResponse{
		Id:          call.Id,
		Title:       call.Title,
		Description: call.Description,
		Program:     call.Program,
		Funder:      call.Funder,
		Status:      string(call.Status),
		Deadline:    call.Deadline,
		BudgetMin:   call.BudgetMin,
		BudgetMax:   call.BudgetMax,
		Url:         call.Url,
		CreatedAt:   call.CreatedAt,
		UpdatedAt:   call.UpdatedAt,
	}
}
