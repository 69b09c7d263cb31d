package vectorstore

import (
	"context"
	"errors"

	"kvkkrag/internal/domain"
)

// DefaultTopK is used when a search asks for no results.
const DefaultTopK = 5

var (
	ErrDimension = errors.New("vector dimension mismatch")
	ErrLength    = errors.New("chunks and vectors length mismatch")
)

// Storage persists vectors and supports similarity search. Vectors are
// expected to be L2-normalised, so scores are cosine similarities.
type Storage interface {
	Init(ctx context.Context, dimension int) error
	Upsert(ctx context.Context, chunks []domain.Chunk, vectors [][]float64) error
	Search(ctx context.Context, vector []float64, topK int) ([]domain.SearchResult, error)
	Clear(ctx context.Context) error
}
