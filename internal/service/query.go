package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/turkish"
	"kvkkrag/internal/vectorstore"
)

// Query embeds the query and searches the vector store. When the query
// shares no vocabulary with the index the chunks are ranked lexically.
func (p *Pipeline) Query(ctx context.Context, query string, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		topK = vectorstore.DefaultTopK
	}
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	vec, err := p.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	if isZero(vec) {
		return p.lexicalSearch(query, topK), nil
	}
	res, err := p.store.Search(ctx, vec, topK)
	if err != nil {
		return nil, err
	}
	allZero := true
	for _, r := range res {
		if r.Score > 1e-9 {
			allZero = false
			break
		}
	}
	if allZero {
		return p.lexicalSearch(query, topK), nil
	}
	return res, nil
}

func isZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

func (p *Pipeline) lexicalSearch(query string, topK int) []domain.SearchResult {
	qset := toTokenSet(query)
	type pair struct {
		idx   int
		score float64
	}
	scores := make([]pair, len(p.chunks))
	for i, ch := range p.chunks {
		scores[i] = pair{i, overlapOchiai(qset, ch.Text)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if topK > len(scores) {
		topK = len(scores)
	}
	out := make([]domain.SearchResult, 0, topK)
	for _, s := range scores[:topK] {
		out = append(out, domain.SearchResult{Chunk: p.chunks[s.idx], Score: s.score})
	}
	return out
}

func toTokenSet(s string) map[string]struct{} {
	tokens := turkish.Tokens(s)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

// overlapOchiai is |A∩B| / sqrt(|A||B|) over distinct tokens.
func overlapOchiai(qset map[string]struct{}, text string) float64 {
	seen := toTokenSet(text)
	if len(qset) == 0 || len(seen) == 0 {
		return 0
	}
	inter := 0
	for t := range seen {
		if _, ok := qset[t]; ok {
			inter++
		}
	}
	return float64(inter) / math.Sqrt(float64(len(qset))*float64(len(seen)))
}

// Preview cuts text to n runes for result listings.
func Preview(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n]) + "..."
}
