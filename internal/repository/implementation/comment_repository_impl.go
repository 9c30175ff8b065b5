package implementation

import (
	"context"

	"innovation-hub-be/internal/entity"
	"innovation-hub-be/internal/mapper"
	"innovation-hub-be/internal/model"
	"innovation-hub-be/internal/repository/contract"
	"innovation-hub-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommentMapper
}

func NewCommentRepository(db *gorm.DB) contract.CommentRepository {
	return &CommentRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommentMapper(),
	}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *entity.Comment) error {
	m := r.mapper.ToModel(comment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	created := r.mapper.ToEntity(m)
	// The author name is not a comment column, carry it through.
	created.AuthorName = comment.AuthorName
	*comment = *created
	return nil
}

// commentRow carries the joined author name next to the comment columns.
type commentRow struct {
	model.Comment
	AuthorName string
}

func (r *CommentRepositoryImpl) FindAllByIdea(ctx context.Context, ideaId uuid.UUID) ([]*entity.Comment, error) {
	var rows []commentRow
	err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Select("comments.*, users.name AS author_name").
		Joins("LEFT JOIN users ON users.id = comments.author_id").
		Where("comments.idea_id = ?", ideaId).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	comments := make([]*entity.Comment, len(rows))
	for i, row := range rows {
		c := r.mapper.ToEntity(&row.Comment)
		c.AuthorName = row.AuthorName
		comments[i] = c
	}
	return comments, nil
}

func (r *CommentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	err := query.Model(&model.Comment{}).Count(&count).Error
	return count, err
}
