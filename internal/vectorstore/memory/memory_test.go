package memory

import (
	"context"
	"errors"
	"testing"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/vectorstore"
)

func TestStorage(t *testing.T) {
	ctx := context.Background()
	s := NewStorage()
	if err := s.Init(ctx, 2); err != nil {
		t.Fatal(err)
	}
	chunks := []domain.Chunk{
		{ID: 0, Document: "a.pptx", Unit: 1, Sequence: 1, Text: "x"},
		{ID: 1, Document: "a.pptx", Unit: 2, Sequence: 1, Text: "y"},
		{ID: 2, Document: "b.pptx", Unit: 1, Sequence: 1, Text: "x again"},
	}
	vectors := [][]float64{{1, 0}, {0, 1}, {1, 0}}
	if err := s.Upsert(ctx, chunks, vectors); err != nil {
		t.Fatal(err)
	}

	t.Run("ranking with ties by id", func(t *testing.T) {
		got, err := s.Search(ctx, []float64{1, 0}, 2)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[0].Chunk.ID != 0 || got[1].Chunk.ID != 2 || got[0].Score != 1 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("default top k caps at size", func(t *testing.T) {
		got, _ := s.Search(ctx, []float64{0, 1}, 0)
		if len(got) != 3 || got[0].Chunk.ID != 1 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("upsert replaces by id", func(t *testing.T) {
		if err := s.Upsert(ctx, chunks[1:2], [][]float64{{1, 0}}); err != nil {
			t.Fatal(err)
		}
		if s.Len() != 3 {
			t.Errorf("Len = %d", s.Len())
		}
	})

	t.Run("dimension errors", func(t *testing.T) {
		if err := s.Upsert(ctx, chunks[:1], [][]float64{{1}}); !errors.Is(err, vectorstore.ErrDimension) {
			t.Errorf("expected ErrDimension, got %v", err)
		}
		if err := s.Upsert(ctx, chunks, vectors[:1]); !errors.Is(err, vectorstore.ErrLength) {
			t.Errorf("expected ErrLength, got %v", err)
		}
		if _, err := s.Search(ctx, []float64{1, 0, 0}, 1); !errors.Is(err, vectorstore.ErrDimension) {
			t.Errorf("expected ErrDimension, got %v", err)
		}
	})

	t.Run("clear", func(t *testing.T) {
		if err := s.Clear(ctx); err != nil {
			t.Fatal(err)
		}
		got, _ := s.Search(ctx, []float64{1, 0}, 5)
		if len(got) != 0 {
			t.Errorf("got %+v after clear", got)
		}
	})

	if err := s.Init(ctx, 0); err == nil {
		t.Error("expected invalid dimension error")
	}
}
