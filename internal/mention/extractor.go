// Package mention finds references to KVKK articles in chunk text and flags
// chunks whose wording suggests the article was amended. The result is a
// heuristic cross reference, not a legal determination.
package mention

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/turkish"
)

const (
	// MinArticle and MaxArticle bound the article numbers that count as mentions.
	MinArticle = 1
	MaxArticle = 30
	// PreviewRunes is the length of a mention preview.
	PreviewRunes   = 250
	PreviewEllipse = "…"
)

// Extractor holds the compiled article, change-signal and version-span patterns.
type Extractor struct {
	article  *regexp.Regexp
	change   *regexp.Regexp
	previous *regexp.Regexp
	current  *regexp.Regexp
}

func NewExtractor() *Extractor {
	f := turkish.FoldPattern
	sp := turkish.Space
	halSuffix := `(?:` + f("i") + `|:)?`
	return &Extractor{
		article: regexp.MustCompile(`(?:` + f("madde") + `|` + f("m") + `\.)` + sp + `*(\d+)(?:\D|$)`),
		change: regexp.MustCompile(turkish.FoldAlternation("değişti", "değişiklik", "eski", "yeni", "güncellendi", "revize") +
			`|7499|2024|2023|2022|2021|2020|2019|2018|2017|2016`),
		previous: regexp.MustCompile(`(?:` + f("eski") + sp + `*` + f("hal") + halSuffix +
			`|` + f("eski") + sp + `*` + f("metin") +
			`|` + f("önceki") + sp + `*` + f("hal") +
			`|` + f("değişmeden") + sp + `*` + f("önceki") + `)[^\n]{10,200}`),
		current: regexp.MustCompile(`(?:` + f("yeni") + sp + `*` + f("hal") + halSuffix +
			`|` + f("yeni") + sp + `*` + f("metin") +
			`|` + f("değişiklik") + sp + `*` + f("sonrası") +
			`|` + f("güncel") + sp + `*` + f("hal") + `)[^\n]{10,200}`),
	}
}

// Extract groups article mentions by article number. Each chunk yields at
// most one mention per article; groups keep chunk order.
func (e *Extractor) Extract(chunks []domain.Chunk) map[int][]domain.ArticleMention {
	out := make(map[int][]domain.ArticleMention)
	for _, ch := range chunks {
		articles := e.Articles(ch.Text)
		if len(articles) == 0 {
			continue
		}
		signal := e.ChangeSignal(ch.Text)
		previous := strings.TrimSpace(e.previous.FindString(ch.Text))
		current := strings.TrimSpace(e.current.FindString(ch.Text))
		preview := Preview(ch.Text)
		for _, n := range articles {
			out[n] = append(out[n], domain.ArticleMention{
				Article:      n,
				ChunkID:      ch.ID,
				Document:     ch.Document,
				Unit:         ch.Unit,
				Preview:      preview,
				ChangeSignal: signal,
				PreviousText: previous,
				NewText:      current,
			})
		}
	}
	return out
}

// Articles returns the distinct in-range article numbers referenced in text,
// in order of first appearance.
func (e *Extractor) Articles(text string) []int {
	var out []int
	seen := make(map[int]struct{})
	for _, m := range e.article.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < MinArticle || n > MaxArticle {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// ChangeSignal reports whether text contains amendment vocabulary. Any year
// between 2016 and 2024 counts, so false positives are expected.
func (e *Extractor) ChangeSignal(text string) bool {
	return e.change.MatchString(text)
}

// Preview truncates text to PreviewRunes runes, marking the cut.
func Preview(text string) string {
	if utf8.RuneCountInString(text) <= PreviewRunes {
		return text
	}
	return string([]rune(text)[:PreviewRunes]) + PreviewEllipse
}

// Articles returns the keys of a mention map in ascending order.
func Articles(mentions map[int][]domain.ArticleMention) []int {
	keys := make([]int, 0, len(mentions))
	for k := range mentions {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
