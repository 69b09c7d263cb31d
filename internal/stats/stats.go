package stats

import (
	"sort"

	"kvkkrag/internal/domain"
)

// TopN is the number of most referenced articles kept in Statistics.TopArticles.
const TopN = 5

// Aggregate counts chunks per document, mentions and change signals per
// article, and ranks articles by mention count (ties by article number).
func Aggregate(chunks []domain.Chunk, mentions map[int][]domain.ArticleMention) domain.Statistics {
	st := domain.Statistics{
		TotalChunks:        len(chunks),
		ChunksPerDocument:  make(map[string]int),
		MentionsPerArticle: make(map[int]int, len(mentions)),
		ChangeSignals:      make(map[int]int, len(mentions)),
	}
	for _, ch := range chunks {
		st.ChunksPerDocument[ch.Document]++
	}

	ranked := make([]domain.ArticleCount, 0, len(mentions))
	for article, refs := range mentions {
		st.MentionsPerArticle[article] = len(refs)
		signals := 0
		for _, r := range refs {
			if r.ChangeSignal {
				signals++
			}
		}
		st.ChangeSignals[article] = signals
		st.TotalChangeSignals += signals
		ranked = append(ranked, domain.ArticleCount{Article: article, Count: len(refs)})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Article < ranked[j].Article
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	st.TopArticles = ranked
	return st
}

// Documents returns the document names of st in ascending order.
func Documents(st domain.Statistics) []string {
	names := make([]string, 0, len(st.ChunksPerDocument))
	for name := range st.ChunksPerDocument {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
