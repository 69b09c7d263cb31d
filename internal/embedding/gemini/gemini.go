package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"

	"kvkkrag/internal/embedding"
)

const (
	DefaultModel     = "gemini-embedding-001"
	DefaultDimension = 768
	taskType         = "RETRIEVAL_DOCUMENT"
)

type Config struct {
	APIKeyEnv string
	Model     string
	Dimension int
}

// Client embeds text with the Gemini embedding API.
type Client struct {
	genAi     *genai.Client
	model     string
	dimension int32
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKeyEnv == "" {
		cfg.APIKeyEnv = "GEMINI_API_KEY"
	}
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Dimension <= 0 {
		cfg.Dimension = DefaultDimension
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: key, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{genAi: c, model: cfg.Model, dimension: int32(cfg.Dimension)}, nil
}

func (c *Client) Name() string { return "gemini:" + c.model }

func (c *Client) Prepare(context.Context, []string) error { return nil }

func (c *Client) Dimension() int { return int(c.dimension) }

func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	vecs, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	result, err := c.genAi.Models.EmbedContent(ctx, c.model, getContent(texts),
		&genai.EmbedContentConfig{OutputDimensionality: &c.dimension, TaskType: taskType})
	if err != nil {
		return nil, fmt.Errorf("gemini embeddings: %w", err)
	}
	if len(result.Embeddings) != len(texts) {
		return nil, errors.New("gemini embeddings: response size mismatch")
	}
	out := make([][]float64, len(result.Embeddings))
	for i, e := range result.Embeddings {
		out[i] = embedding.Normalize(toFloat64(e.Values))
	}
	return out, nil
}

func getContent(texts []string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(texts))
	for _, t := range texts {
		contents = append(contents, &genai.Content{Parts: []*genai.Part{{Text: t}}})
	}
	return contents
}

func toFloat64(values []float32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
