package tfidf

import (
	"context"
	"errors"
	"math"
	"testing"

	"kvkkrag/internal/embedding"
)

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func TestEmbedder(t *testing.T) {
	ctx := context.Background()
	corpus := []string{
		"Açık rıza ve kişisel veri işleme şartları",
		"Özel nitelikli kişisel veriler İŞLENEMEZ",
		"Veri sorumlusunun aydınlatma yükümlülüğü",
	}
	e := NewEmbedder()

	if _, err := e.Embed(ctx, "x"); !errors.Is(err, embedding.ErrNotPrepared) {
		t.Fatalf("expected ErrNotPrepared, got %v", err)
	}
	if err := e.Prepare(ctx, corpus); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if e.Dimension() == 0 {
		t.Fatal("empty vocabulary")
	}
	if _, ok := e.vocabulary["ve"]; ok {
		t.Error("stopword in vocabulary")
	}
	if _, ok := e.vocabulary["işlenemez"]; !ok {
		t.Error("expected Turkish lowercasing of İŞLENEMEZ")
	}

	q, err := e.Embed(ctx, "kişisel veri nitelikli")
	if err != nil {
		t.Fatal(err)
	}
	if n := math.Sqrt(dot(q, q)); math.Abs(n-1) > 1e-9 {
		t.Errorf("norm = %f", n)
	}
	var best int
	var bestScore float64
	for i, doc := range corpus {
		v, _ := e.Embed(ctx, doc)
		if s := dot(q, v); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best != 1 {
		t.Errorf("best match = %d, want 1", best)
	}

	unknown, _ := e.Embed(ctx, "tamamen alakasız")
	if dot(unknown, unknown) != 0 {
		t.Error("unknown terms should embed to the zero vector")
	}
}

func TestEmbedder_PrepareErrors(t *testing.T) {
	e := NewEmbedder()
	if err := e.Prepare(context.Background(), nil); err == nil {
		t.Error("expected error for empty corpus")
	}
	if err := e.Prepare(context.Background(), []string{"ve ile de"}); err == nil {
		t.Error("expected error when only stopwords remain")
	}
}
