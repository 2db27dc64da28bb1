package repository

import (
	"context"
	"fmt"

	"github.com/danielleeas/simple-tattooer-sub000/internal/model"
	"github.com/danielleeas/simple-tattooer-sub000/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const artistColumns = `id, name, main_location_id, schedule, consultation, created_at, updated_at`

type ArtistRepository struct {
	*base.Repository
}

func NewArtistRepository(pool *pgxpool.Pool) *ArtistRepository {
	return &ArtistRepository{Repository: base.NewRepository(pool)}
}

// GetByID получает артиста по ID
func (r *ArtistRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(r.QueryRow(ctx, query, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get artist by id: %w", err)
	}

	return artist, nil
}

// ListAll получает всех артистов
func (r *ArtistRepository) ListAll(ctx context.Context) ([]*model.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY created_at`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	var artists []*model.Artist
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, artist)
	}

	return artists, rows.Err()
}

func scanArtist(row pgx.Row) (*model.Artist, error) {
	artist := &model.Artist{}
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.MainLocationID,
		&artist.Schedule,
		&artist.Consultation,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return artist, nil
}
