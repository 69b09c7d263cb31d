package statute

import (
	"regexp"
	"strconv"
	"strings"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/notation"
)

// MaxArticleText caps the stored body of a parsed article, in runes.
const MaxArticleText = 3000

// ParsedArticle is one article cut out of the official law text.
type ParsedArticle struct {
	Number    int
	Title     string
	Chapter   int
	Text      string
	Notations []domain.NotationDetection
	Words     int
}

var articleHeadingRe = regexp.MustCompile(`(GEÇİCİ\s+)?MADDE\s+(\d+)\s*[-–]`)

// ParseLawText splits the official text of the law on its "MADDE n –"
// headings. Transitional articles are skipped and only the first heading of
// each number is kept. Amendment notations are lifted out of the body.
func ParseLawText(text string, scanner *notation.Scanner) []ParsedArticle {
	locs := articleHeadingRe.FindAllStringSubmatchIndex(text, -1)
	var out []ParsedArticle
	seen := make(map[int]struct{})
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if loc[2] >= 0 {
			continue
		}
		n, err := strconv.Atoi(text[loc[4]:loc[5]])
		if err != nil {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}

		body := text[loc[1]:end]
		found := scanner.ScanText("6698", body)
		for _, d := range found {
			body = strings.Replace(body, d.Raw, "", 1)
		}
		body = strings.Join(strings.Fields(body), " ")

		chapter := 0
		if c, ok := ChapterOf(n); ok {
			chapter = c.Number
		}
		out = append(out, ParsedArticle{
			Number:    n,
			Title:     Title(n),
			Chapter:   chapter,
			Text:      truncate(body, MaxArticleText),
			Notations: found,
			Words:     len(strings.Fields(body)),
		})
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func itoa(n int) string { return strconv.Itoa(n) }
