package repository

import (
	"context"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
)

// MemberRepository is the persistence boundary for the identity domain.
// GetByUserID and GetByNickname look across active and withdrawn members
// alike; uniqueness spans the whole table.
type MemberRepository interface {
	Create(ctx context.Context, m *entity.Member) error
	GetByID(ctx context.Context, id int64) (*entity.Member, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Member, error)
	GetByNickname(ctx context.Context, nickname string) (*entity.Member, error)
	Update(ctx context.Context, m *entity.Member) error
	// SearchByNickname returns profiles whose nickname contains term,
	// using the store's collation for case handling.
	SearchByNickname(ctx context.Context, term string) ([]entity.MemberProfile, error)
}
