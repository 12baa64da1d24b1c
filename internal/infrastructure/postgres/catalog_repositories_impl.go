package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripmoa/trip-backend/internal/domain/entity"
	"github.com/tripmoa/trip-backend/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// FindByIDs returns the categories that exist; ids without a row are
// absent from the result, never an error.
func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []int64) ([]entity.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name FROM categories WHERE id = ANY($1) ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Category, 0, len(ids))
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type LocationRepository struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

func (r *LocationRepository) FindByIDs(ctx context.Context, ids []int64) ([]entity.Location, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, address, lat, lng FROM locations WHERE id = ANY($1) ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Location, 0, len(ids))
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Lat, &l.Lng); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type ImageRepository struct {
	pool *pgxpool.Pool
}

func NewImageRepository(pool *pgxpool.Pool) *ImageRepository {
	return &ImageRepository{pool: pool}
}

func (r *ImageRepository) Create(ctx context.Context, img *entity.Image) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO images (url, object_key)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, img.URL, img.ObjectKey)
	return row.Scan(&img.ID, &img.CreatedAt)
}

func (r *ImageRepository) FindByIDs(ctx context.Context, ids []int64) ([]entity.Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, url, object_key, created_at FROM images WHERE id = ANY($1) ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Image, 0, len(ids))
	for rows.Next() {
		var img entity.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.ObjectKey, &img.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

var (
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
	_ repository.LocationRepository = (*LocationRepository)(nil)
	_ repository.ImageRepository    = (*ImageRepository)(nil)
)
