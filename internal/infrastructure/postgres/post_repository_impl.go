package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
	"github.com/tripmoa/trip-backend/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

// Create writes the post row and every association row in one transaction.
// On any failure the transaction rolls back and no partial aggregate is
// visible.
func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO posts (member_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.MemberID, p.Title, p.Content)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return err
	}

	for i := range p.Categories {
		pc := &p.Categories[i]
		pc.PostID = p.ID
		if err := tx.QueryRow(ctx, `
			INSERT INTO post_categories (post_id, category_id)
			VALUES ($1, $2)
			RETURNING id
		`, p.ID, pc.Category.ID).Scan(&pc.ID); err != nil {
			return err
		}
	}

	for _, loc := range p.Locations {
		if _, err := tx.Exec(ctx, `
			INSERT INTO post_locations (post_id, location_id)
			VALUES ($1, $2)
		`, p.ID, loc.ID); err != nil {
			return err
		}
	}

	for _, img := range p.Images {
		if _, err := tx.Exec(ctx, `
			INSERT INTO post_images (post_id, image_id)
			VALUES ($1, $2)
		`, p.ID, img.ID); err != nil {
			return err
		}
	}

	for i := range p.Tags {
		t := &p.Tags[i]
		t.PostID = p.ID
		if err := tx.QueryRow(ctx, `
			INSERT INTO tags (post_id, name)
			VALUES ($1, $2)
			RETURNING id
		`, p.ID, t.Name).Scan(&t.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	p := &entity.Post{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, member_id, title, content, created_at, updated_at
		FROM posts
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.MemberID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if err := r.loadAssociations(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) loadAssociations(ctx context.Context, p *entity.Post) error {
	rows, err := r.pool.Query(ctx, `
		SELECT pc.id, pc.post_id, c.id, c.name
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = $1
		ORDER BY pc.id
	`, p.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var pc entity.PostCategory
		if err := rows.Scan(&pc.ID, &pc.PostID, &pc.Category.ID, &pc.Category.Name); err != nil {
			rows.Close()
			return err
		}
		p.Categories = append(p.Categories, pc)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.pool.Query(ctx, `
		SELECT l.id, l.name, l.address, l.lat, l.lng
		FROM post_locations pl
		JOIN locations l ON l.id = pl.location_id
		WHERE pl.post_id = $1
		ORDER BY l.id
	`, p.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Lat, &l.Lng); err != nil {
			rows.Close()
			return err
		}
		p.Locations = append(p.Locations, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.pool.Query(ctx, `
		SELECT i.id, i.url, i.object_key, i.created_at
		FROM post_images pi
		JOIN images i ON i.id = pi.image_id
		WHERE pi.post_id = $1
		ORDER BY i.id
	`, p.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var img entity.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.ObjectKey, &img.CreatedAt); err != nil {
			rows.Close()
			return err
		}
		p.Images = append(p.Images, img)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.pool.Query(ctx, `
		SELECT id, post_id, name
		FROM tags
		WHERE post_id = $1
		ORDER BY id
	`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.PostID, &t.Name); err != nil {
			return err
		}
		p.Tags = append(p.Tags, t)
	}
	return rows.Err()
}

func (r *PostRepository) FindByAuthor(ctx context.Context, memberID int64) ([]entity.PostSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, created_at
		FROM posts
		WHERE member_id = $1
		ORDER BY created_at DESC
	`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]entity.PostSummary, 0)
	for rows.Next() {
		var s entity.PostSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, s)
	}
	return posts, rows.Err()
}

func (r *PostRepository) CountByAuthor(ctx context.Context, memberID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM posts WHERE member_id = $1
	`, memberID).Scan(&n)
	return n, err
}

var _ repository.PostRepository = (*PostRepository)(nil)
