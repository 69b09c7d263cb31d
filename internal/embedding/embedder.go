package embedding

import (
	"context"
	"errors"
	"fmt"
	"math"

	"kvkkrag/pkg/logger"
)

var log = logger.New("embedding")

// ErrNotPrepared is returned by embedders that need a corpus before use.
var ErrNotPrepared = errors.New("embedder not prepared")

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(ctx context.Context, corpus []string) error
	Dimension() int
	Embed(ctx context.Context, text string) ([]float64, error)
}

// BatchEmbedder is implemented by remote embedders that accept several texts per call.
type BatchEmbedder interface {
	Embedder
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// DefaultBatchSize is used by EmbedAll when batchSize is not positive.
const DefaultBatchSize = 64

// EmbedAll embeds texts in order, batching when e supports it.
func EmbedAll(ctx context.Context, e Embedder, texts []string, batchSize int) ([][]float64, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	out := make([][]float64, 0, len(texts))
	be, batched := e.(BatchEmbedder)
	for start := 0; start < len(texts); start += batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+batchSize, len(texts))
		if batched {
			vecs, err := be.EmbedBatch(ctx, texts[start:end])
			if err != nil {
				return nil, fmt.Errorf("embed batch %d-%d: %w", start, end, err)
			}
			if len(vecs) != end-start {
				return nil, fmt.Errorf("embed batch %d-%d: got %d vectors", start, end, len(vecs))
			}
			out = append(out, vecs...)
			continue
		}
		for i := start; i < end; i++ {
			v, err := e.Embed(ctx, texts[i])
			if err != nil {
				return nil, fmt.Errorf("embed text %d: %w", i, err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// Normalize scales v to unit length in place. Zero vectors are left as is.
func Normalize(v []float64) []float64 {
	norm := 0.0
	for _, x := range v {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range v {
			v[i] /= norm
		}
	}
	return v
}
