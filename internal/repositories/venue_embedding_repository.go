package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"fairway/internal/models/db_models"
)

type VenueEmbeddingRepository interface {
	Create(embedding db_models.VenueEmbedding) error
	DeleteByVenueID(venueID string) error
	ListByVector(vector pgvector.Vector, limit int) ([]db_models.VenueEmbedding, error)
}

type venueEmbeddingRepository struct {
	db *gorm.DB
}

func NewVenueEmbeddingRepository(db *gorm.DB) VenueEmbeddingRepository {
	return &venueEmbeddingRepository{db: db}
}

func (r *venueEmbeddingRepository) Create(embedding db_models.VenueEmbedding) error {
	return r.db.Create(&embedding).Error
}

func (r *venueEmbeddingRepository) DeleteByVenueID(venueID string) error {
	return r.db.Delete(&db_models.VenueEmbedding{}, "venue_id = ?", venueID).Error
}

// ListByVector ranks rows by cosine distance, keeping only reasonably
// similar matches.
func (r *venueEmbeddingRepository) ListByVector(vector pgvector.Vector, limit int) ([]db_models.VenueEmbedding, error) {
	if limit <= 0 {
		limit = 15
	}

	var results []db_models.VenueEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM venue_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
