package db

import (
	"context"
	"errors"

	"educator-site/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PhotoRepository stores gallery records in the gallery_photos table.
type PhotoRepository struct {
	pool *pgxpool.Pool
}

func NewPhotoRepository(pool *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{pool: pool}
}

func (r *PhotoRepository) List(ctx context.Context) ([]models.Photo, error) {
	query := `SELECT id, title, image_url, COALESCE(storage_key, ''), display_order, created_at
		FROM gallery_photos ORDER BY display_order DESC, created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := []models.Photo{}
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.Title, &p.ImageURL, &p.StorageKey, &p.DisplayOrder, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *PhotoRepository) Get(ctx context.Context, id int) (*models.Photo, error) {
	query := `SELECT id, title, image_url, COALESCE(storage_key, ''), display_order, created_at
		FROM gallery_photos WHERE id = $1`
	var p models.Photo
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Title, &p.ImageURL, &p.StorageKey, &p.DisplayOrder, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrPhotoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotoRepository) Create(ctx context.Context, title, imageURL, storageKey string) (*models.Photo, error) {
	p := models.Photo{Title: title, ImageURL: imageURL, StorageKey: storageKey}
	query := `INSERT INTO gallery_photos (title, image_url, storage_key) VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, display_order, created_at`
	if err := r.pool.QueryRow(ctx, query, title, imageURL, storageKey).Scan(&p.ID, &p.DisplayOrder, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a photo and reports whether a row existed.
func (r *PhotoRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM gallery_photos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PhotoRepository) SetDisplayOrder(ctx context.Context, id, order int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE gallery_photos SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrPhotoNotFound
	}
	return nil
}
