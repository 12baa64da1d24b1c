package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
	"github.com/tripmoa/trip-backend/internal/domain/repository"
)

type InteractionRepository struct {
	pool *pgxpool.Pool
}

func NewInteractionRepository(pool *pgxpool.Pool) *InteractionRepository {
	return &InteractionRepository{pool: pool}
}

func (r *InteractionRepository) CountScrapsByMember(ctx context.Context, memberID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM interactions WHERE member_id = $1 AND kind = $2
	`, memberID, int16(entity.InteractionScrap)).Scan(&n)
	return n, err
}

func (r *InteractionRepository) FindScrapsByMember(ctx context.Context, memberID int64) ([]entity.ScrapSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.title, i.created_at
		FROM interactions i
		JOIN posts p ON p.id = i.post_id
		WHERE i.member_id = $1 AND i.kind = $2
		ORDER BY i.created_at DESC
	`, memberID, int16(entity.InteractionScrap))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.ScrapSummary, 0)
	for rows.Next() {
		var s entity.ScrapSummary
		if err := rows.Scan(&s.PostID, &s.Title, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) FindByMember(ctx context.Context, memberID int64) ([]entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, post_id, member_id, content, created_at
		FROM comments
		WHERE member_id = $1
		ORDER BY created_at DESC
	`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Comment, 0)
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.MemberID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var (
	_ repository.InteractionRepository = (*InteractionRepository)(nil)
	_ repository.CommentRepository     = (*CommentRepository)(nil)
)
