package unitofwork

import (
	"context"

	"innovation-hub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	IdeaRepository() contract.IdeaRepository
	VoteRepository() contract.VoteRepository
	CommentRepository() contract.CommentRepository
	DocumentChunkRepository() contract.DocumentChunkRepository
	ProjectRepository() contract.ProjectRepository
	StrategyDocumentRepository() contract.StrategyDocumentRepository
	FundingCallRepository() contract.FundingCallRepository
	CategoryRepository() contract.CategoryRepository
	TagRepository() contract.TagRepository
}
