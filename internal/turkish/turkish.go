// Package turkish holds the language helpers shared by the extractors,
// embedders and summarizer: Turkish-aware case folding, tokenisation and
// text normalisation.
package turkish

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Space matches any whitespace, including no-break and other Unicode spaces.
const Space = `[\s\p{Zs}]`

var (
	spaceRe = regexp.MustCompile(`\p{Zs}`)
	tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’]\p{L}+)*`)
	lower   = cases.Lower(language.Turkish)

	// dotted and dotless i are one letter family in Turkish text
	iFamily = []rune{'I', 'i', 'İ', 'ı'}
)

// Lower lowercases s with Turkish rules (İ→i, I→ı).
func Lower(s string) string {
	return lower.String(s)
}

// Tokens returns the lowercased word and number tokens of s.
func Tokens(s string) []string {
	return tokenRe.FindAllString(Lower(s), -1)
}

// Normalize converts line endings to LF, Unicode spaces such as U+00A0 to
// ASCII spaces, and composes the text to NFC.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = spaceRe.ReplaceAllString(s, " ")
	return norm.NFC.String(s)
}

// FoldPattern returns a regular expression fragment matching word with
// every letter in any of its case forms, including the Turkish i family.
// Go's (?i) flag folds only simple case pairs, which misses İ and ı.
func FoldPattern(word string) string {
	var b strings.Builder
	for _, r := range word {
		variants := caseVariants(r)
		if len(variants) == 1 {
			b.WriteString(regexp.QuoteMeta(string(r)))
			continue
		}
		b.WriteByte('[')
		for _, v := range variants {
			b.WriteRune(v)
		}
		b.WriteByte(']')
	}
	return b.String()
}

// FoldAlternation joins the folded forms of words into a non-capturing group.
func FoldAlternation(words ...string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = FoldPattern(w)
	}
	return "(?:" + strings.Join(parts, "|") + ")"
}

func caseVariants(r rune) []rune {
	if !unicode.IsLetter(r) {
		return []rune{r}
	}
	set := map[rune]struct{}{r: {}}
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		set[f] = struct{}{}
	}
	set[unicode.TurkishCase.ToUpper(r)] = struct{}{}
	set[unicode.TurkishCase.ToLower(r)] = struct{}{}
	for _, v := range iFamily {
		if _, ok := set[v]; ok {
			for _, w := range iFamily {
				set[w] = struct{}{}
			}
			break
		}
	}
	out := make([]rune, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
