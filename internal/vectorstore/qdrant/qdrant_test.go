package qdrant

import (
	"testing"

	"github.com/qdrant/go-client/qdrant"

	"kvkkrag/internal/domain"
)

func TestPointID(t *testing.T) {
	a := domain.Chunk{ID: 3, Document: "ders.pptx", Unit: 4, Sequence: 1}
	b := a
	b.ID = 99
	if PointID(a) != PointID(b) {
		t.Error("point id should depend on provenance only")
	}
	c := a
	c.Sequence = 2
	if PointID(a) == PointID(c) {
		t.Error("different sequence should change the point id")
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	want := domain.Chunk{ID: 7, Document: "ders.pptx", Unit: 12, Sequence: 2, Text: "Madde 6 kapsamı"}
	got := chunkFromPayload(qdrant.NewValueMap(payload(want)))
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if empty := chunkFromPayload(map[string]*qdrant.Value{}); empty != (domain.Chunk{}) {
		t.Errorf("missing keys should give zero values, got %+v", empty)
	}
}

func TestNewStorage_RequiresCollection(t *testing.T) {
	if _, err := NewStorage(Config{Host: "localhost"}); err == nil {
		t.Fatal("expected error for empty collection")
	}
}
