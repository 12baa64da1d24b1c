package repository

import (
	"context"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
)

// CategoryRepository resolves categories referenced by posts. FindByIDs
// returns only the matches; unknown ids are silently omitted.
type CategoryRepository interface {
	FindByIDs(ctx context.Context, ids []int64) ([]entity.Category, error)
	FindAll(ctx context.Context) ([]entity.Category, error)
}

// LocationRepository resolves pre-created location records.
type LocationRepository interface {
	FindByIDs(ctx context.Context, ids []int64) ([]entity.Location, error)
}

// ImageRepository stores uploaded image records and resolves them by id.
type ImageRepository interface {
	Create(ctx context.Context, img *entity.Image) error
	FindByIDs(ctx context.Context, ids []int64) ([]entity.Image, error)
}
