package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/time/rate"

	"kvkkrag/internal/cache"
)

// RateLimited throttles calls to a remote embedder. A batch counts as one call.
type RateLimited struct {
	Embedder
	limiter *rate.Limiter
}

func NewRateLimited(inner Embedder, rps float64, burst int) *RateLimited {
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{Embedder: inner, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

func (r *RateLimited) Embed(ctx context.Context, text string) ([]float64, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return r.Embedder.Embed(ctx, text)
}

func (r *RateLimited) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	be, ok := r.Embedder.(BatchEmbedder)
	if !ok {
		out := make([][]float64, 0, len(texts))
		for _, t := range texts {
			v, err := r.Embed(ctx, t)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return be.EmbedBatch(ctx, texts)
}

// Cached serves vectors from a cache keyed by sha256(name|text) and only
// forwards misses to the inner embedder. Cache failures fall through.
type Cached struct {
	Embedder
	cache    cache.Cache
	OnLookup func(hit bool)
}

func NewCached(inner Embedder, c cache.Cache) *Cached {
	return &Cached{Embedder: inner, cache: c}
}

// Key is the cache key for text under embedder name.
func Key(name, text string) string {
	sum := sha256.Sum256([]byte(name + "|" + text))
	return hex.EncodeToString(sum[:])
}

func (c *Cached) Embed(ctx context.Context, text string) ([]float64, error) {
	vecs, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (c *Cached) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	name := c.Embedder.Name()
	out := make([][]float64, len(texts))
	var missing []int
	for i, t := range texts {
		v, err := c.cache.Get(ctx, Key(name, t))
		if err == nil && len(v) > 0 {
			out[i] = v
			c.observe(true)
			continue
		}
		if err != nil && !errors.Is(err, cache.ErrMiss) {
			log.Warn("embedding cache read failed", "error", err)
		}
		c.observe(false)
		missing = append(missing, i)
	}
	if len(missing) == 0 {
		return out, nil
	}

	pending := make([]string, len(missing))
	for j, i := range missing {
		pending[j] = texts[i]
	}
	var vecs [][]float64
	if be, ok := c.Embedder.(BatchEmbedder); ok {
		var err error
		if vecs, err = be.EmbedBatch(ctx, pending); err != nil {
			return nil, err
		}
	} else {
		for _, t := range pending {
			v, err := c.Embedder.Embed(ctx, t)
			if err != nil {
				return nil, err
			}
			vecs = append(vecs, v)
		}
	}
	for j, i := range missing {
		out[i] = vecs[j]
		if err := c.cache.Set(ctx, Key(name, texts[i]), vecs[j]); err != nil {
			log.Warn("embedding cache write failed", "error", err)
		}
	}
	return out, nil
}

func (c *Cached) observe(hit bool) {
	if c.OnLookup != nil {
		c.OnLookup(hit)
	}
}
