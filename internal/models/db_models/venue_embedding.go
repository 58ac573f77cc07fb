package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// VenueEmbedding stores the search vector for one venue. The column is
// sized for OpenAI's 1536-dimension small embedding, the default provider;
// switching EMBEDDING_PROVIDER to gemini (768 dimensions) requires
// re-sizing the column and re-embedding the table.
type VenueEmbedding struct {
	VenueID     string `gorm:"primaryKey;column:venue_id"`
	Name        string
	Description string
	Category    string
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
