package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
	"github.com/tripmoa/trip-backend/internal/domain/repository"
)

type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

const memberColumns = `id, user_id, nickname, password_hash, image_url, status, created_at, updated_at`

func scanMember(row pgx.Row) (*entity.Member, error) {
	m := &entity.Member{}
	var status int16
	if err := row.Scan(&m.ID, &m.UserID, &m.Nickname, &m.PasswordHash, &m.ImageURL,
		&status, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	m.Status = entity.MemberStatus(status)
	return m, nil
}

func (r *MemberRepository) Create(ctx context.Context, m *entity.Member) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO members (user_id, nickname, password_hash, image_url, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, m.UserID, m.Nickname, m.PasswordHash, m.ImageURL, int16(m.Status))

	return row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*entity.Member, error) {
	return scanMember(r.pool.QueryRow(ctx, `
		SELECT `+memberColumns+`
		FROM members
		WHERE id = $1
	`, id))
}

func (r *MemberRepository) GetByUserID(ctx context.Context, userID string) (*entity.Member, error) {
	return scanMember(r.pool.QueryRow(ctx, `
		SELECT `+memberColumns+`
		FROM members
		WHERE user_id = $1
	`, userID))
}

func (r *MemberRepository) GetByNickname(ctx context.Context, nickname string) (*entity.Member, error) {
	return scanMember(r.pool.QueryRow(ctx, `
		SELECT `+memberColumns+`
		FROM members
		WHERE nickname = $1
	`, nickname))
}

func (r *MemberRepository) Update(ctx context.Context, m *entity.Member) error {
	m.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE members
		SET user_id = $1, nickname = $2, password_hash = $3, image_url = $4, status = $5, updated_at = $6
		WHERE id = $7
	`, m.UserID, m.Nickname, m.PasswordHash, m.ImageURL, int16(m.Status), m.UpdatedAt, m.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MemberRepository) SearchByNickname(ctx context.Context, term string) ([]entity.MemberProfile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT nickname, image_url
		FROM members
		WHERE nickname LIKE '%' || $1 || '%'
		ORDER BY nickname
	`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]entity.MemberProfile, 0)
	for rows.Next() {
		var p entity.MemberProfile
		if err := rows.Scan(&p.Nickname, &p.ImageURL); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

var _ repository.MemberRepository = (*MemberRepository)(nil)
