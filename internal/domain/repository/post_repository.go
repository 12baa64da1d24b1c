package repository

import (
	"context"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
)

// PostRepository persists post aggregates. Create must write the post row
// and all of its association rows (categories, locations, images, tags) in
// one transaction; a failure leaves no partial aggregate behind.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	FindByAuthor(ctx context.Context, memberID int64) ([]entity.PostSummary, error)
	CountByAuthor(ctx context.Context, memberID int64) (int, error)
}
