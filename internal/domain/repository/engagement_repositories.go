package repository

import (
	"context"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
)

// InteractionRepository is a read collaborator: the identity service only
// counts and lists scraps, never writes them.
type InteractionRepository interface {
	CountScrapsByMember(ctx context.Context, memberID int64) (int, error)
	FindScrapsByMember(ctx context.Context, memberID int64) ([]entity.ScrapSummary, error)
}

// CommentRepository is a read collaborator for a member's own comments.
type CommentRepository interface {
	FindByMember(ctx context.Context, memberID int64) ([]entity.Comment, error)
}
