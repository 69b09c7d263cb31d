package qdrant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/vectorstore"
)

// pointNamespace scopes the deterministic point IDs derived from chunk provenance.
var pointNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("kvkkrag/chunk"))

// Storage keeps chunk vectors in a Qdrant collection over gRPC.
// It assumes cosine distance and creates the collection if missing.
type Storage struct {
	client     *qdrant.Client
	collection string
	dimension  int
}

type Config struct {
	Host       string
	Port       int
	APIKey     string
	UseTLS     bool
	Collection string
}

func NewStorage(cfg Config) (*Storage, error) {
	if cfg.Collection == "" {
		return nil, errors.New("empty collection name")
	}
	if cfg.Port == 0 {
		cfg.Port = 6334
	}
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant client: %w", err)
	}
	return &Storage{client: client, collection: cfg.Collection}, nil
}

func (s *Storage) Init(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.dimension = dimension
	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("qdrant collection check: %w", err)
	}
	if exists {
		return nil
	}
	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dimension),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("qdrant create collection: %w", err)
	}
	return nil
}

func (s *Storage) Upsert(ctx context.Context, chunks []domain.Chunk, vectors [][]float64) error {
	if len(chunks) != len(vectors) {
		return vectorstore.ErrLength
	}
	points := make([]*qdrant.PointStruct, len(chunks))
	for i, c := range chunks {
		if s.dimension > 0 && len(vectors[i]) != s.dimension {
			return fmt.Errorf("chunk %d: %w", c.ID, vectorstore.ErrDimension)
		}
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(PointID(c).String()),
			Vectors: qdrant.NewVectors(toFloat32(vectors[i])...),
			Payload: qdrant.NewValueMap(payload(c)),
		}
	}
	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}
	return nil
}

func (s *Storage) Search(ctx context.Context, vector []float64, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		topK = vectorstore.DefaultTopK
	}
	hits, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(toFloat32(vector)...),
		Limit:          qdrant.PtrOf(uint64(topK)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant query: %w", err)
	}
	results := make([]domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, domain.SearchResult{Chunk: chunkFromPayload(hit.Payload), Score: float64(hit.Score)})
	}
	return results, nil
}

// Clear drops the collection; Init recreates it.
func (s *Storage) Clear(ctx context.Context) error {
	if err := s.client.DeleteCollection(ctx, s.collection); err != nil {
		return fmt.Errorf("qdrant delete collection: %w", err)
	}
	return nil
}

func (s *Storage) Close() error { return s.client.Close() }

// PointID is stable for a chunk's provenance, so re-running vectorize
// overwrites points instead of duplicating them.
func PointID(c domain.Chunk) uuid.UUID {
	return uuid.NewSHA1(pointNamespace, []byte(fmt.Sprintf("%s/%d/%d", c.Document, c.Unit, c.Sequence)))
}

func payload(c domain.Chunk) map[string]any {
	return map[string]any{
		"id":       int64(c.ID),
		"dosya":    c.Document,
		"slayt_no": int64(c.Unit),
		"parca_no": int64(c.Sequence),
		"metin":    c.Text,
	}
}

func chunkFromPayload(p map[string]*qdrant.Value) domain.Chunk {
	return domain.Chunk{
		ID:       int(p["id"].GetIntegerValue()),
		Document: p["dosya"].GetStringValue(),
		Unit:     int(p["slayt_no"].GetIntegerValue()),
		Sequence: int(p["parca_no"].GetIntegerValue()),
		Text:     p["metin"].GetStringValue(),
	}
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}
