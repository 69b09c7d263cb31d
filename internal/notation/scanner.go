// Package notation detects Turkish statutory amendment annotations such as
// "(Değişik:2/3/2024-7499/33 md.)" in line-oriented document text.
package notation

import (
	"regexp"
	"strconv"
	"strings"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/turkish"
)

const (
	// MaxRecentArticles bounds the rolling article context.
	MaxRecentArticles = 5
	// ReportedContexts is how many of the most recent articles a detection carries.
	ReportedContexts = 3
	// MinArticle and MaxArticle bound the article numbers tracked as context.
	MinArticle = 1
	MaxArticle = 30
)

// ScanState is the rolling context carried from line to line while a
// single document is scanned. Values are never mutated in place.
type ScanState struct {
	Unit   int
	Label  string
	Recent []int
}

// Context returns a copy of the last ReportedContexts articles, most recent last.
func (s ScanState) Context() []int {
	from := len(s.Recent) - ReportedContexts
	if from < 0 {
		from = 0
	}
	out := make([]int, len(s.Recent)-from)
	copy(out, s.Recent[from:])
	return out
}

func (s ScanState) remember(article int) ScanState {
	for _, a := range s.Recent {
		if a == article {
			return s
		}
	}
	recent := make([]int, 0, MaxRecentArticles+1)
	recent = append(recent, s.Recent...)
	recent = append(recent, article)
	if len(recent) > MaxRecentArticles {
		recent = recent[len(recent)-MaxRecentArticles:]
	}
	return ScanState{Unit: s.Unit, Label: s.Label, Recent: recent}
}

// Scanner holds the compiled notation, article and unit-boundary patterns.
type Scanner struct {
	boundary *regexp.Regexp
	article  *regexp.Regexp
	notation *regexp.Regexp
}

func NewScanner() *Scanner {
	sp := turkish.Space
	return &Scanner{
		boundary: regexp.MustCompile(`──` + sp + `*(` + turkish.FoldAlternation("Slayt", "Slide", "Sayfa", "Page") + `)` + sp + `+(\d+)` + sp + `*─+`),
		article:  regexp.MustCompile(turkish.FoldPattern("madde") + sp + `+(\d+)`),
		notation: regexp.MustCompile(`\((?:(?P<inserted>` + turkish.FoldPattern("Ek") +
			`)|(?P<repealed>` + turkish.FoldPattern("Mülga") +
			`)|(?P<modified>` + turkish.FoldPattern("Değişik") +
			`))` + sp + `*:` + sp + `*(?P<day>\d+)/(?P<month>\d+)/(?P<year>\d{4})-(?P<law>\d+)/(?P<ref>\d+)` + sp + `*` +
			turkish.FoldPattern("md") + `\.\)`),
	}
}

// Advance feeds one line into the state. It reports whether the line was a
// unit boundary; boundary lines carry no notations.
func (s *Scanner) Advance(state ScanState, line string) (ScanState, bool) {
	if m := s.boundary.FindStringSubmatch(line); m != nil {
		unit, err := strconv.Atoi(m[2])
		if err != nil || unit == state.Unit {
			return state, true
		}
		return ScanState{Unit: unit, Label: unitLabel(m[1])}, true
	}
	for _, m := range s.article.FindAllStringSubmatch(line, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < MinArticle || n > MaxArticle {
			continue
		}
		state = state.remember(n)
	}
	return state, false
}

// Scan walks the lines of one document once, top to bottom.
func (s *Scanner) Scan(document string, lines []string) []domain.NotationDetection {
	var out []domain.NotationDetection
	var state ScanState
	for i, line := range lines {
		var boundary bool
		state, boundary = s.Advance(state, line)
		if boundary {
			continue
		}
		out = append(out, s.detect(state, document, lines, i)...)
	}
	return out
}

// ScanText splits text into lines and scans it.
func (s *Scanner) ScanText(document, text string) []domain.NotationDetection {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return s.Scan(document, strings.Split(strings.TrimSuffix(text, "\n"), "\n"))
}

func (s *Scanner) detect(state ScanState, document string, lines []string, i int) []domain.NotationDetection {
	line := lines[i]
	matches := s.notation.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}
	var prev, next string
	if i > 0 {
		prev = strings.TrimSpace(lines[i-1])
	}
	if i < len(lines)-1 {
		next = strings.TrimSpace(lines[i+1])
	}
	group := func(m []string, name string) string { return m[s.notation.SubexpIndex(name)] }

	out := make([]domain.NotationDetection, 0, len(matches))
	for _, m := range matches {
		out = append(out, domain.NotationDetection{
			Type:       s.typeOf(m),
			Date:       group(m, "day") + "/" + group(m, "month") + "/" + group(m, "year"),
			LawNumber:  group(m, "law"),
			LawArticle: group(m, "ref"),
			Document:   document,
			Unit:       state.Unit,
			UnitLabel:  state.Label,
			Context:    state.Context(),
			Raw:        m[0],
			Line:       strings.TrimSpace(line),
			Previous:   prev,
			Next:       next,
		})
	}
	return out
}

func (s *Scanner) typeOf(m []string) domain.NotationType {
	switch {
	case m[s.notation.SubexpIndex("inserted")] != "":
		return domain.NotationInserted
	case m[s.notation.SubexpIndex("repealed")] != "":
		return domain.NotationRepealed
	default:
		return domain.NotationModified
	}
}

// unitLabel maps a boundary marker to its Turkish name.
func unitLabel(marker string) string {
	switch turkish.Lower(marker) {
	case "sayfa", "page":
		return "Sayfa"
	default:
		return "Slayt"
	}
}
