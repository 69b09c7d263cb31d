// Package report renders the KVKK change-analysis HTML report.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"sort"
	"strings"
	"time"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/notation"
	"kvkkrag/internal/statute"
)

const (
	MaxCardRefs     = 5
	MaxAffected     = 5
	OfficialExcerpt = 1500
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.New("report.html.tmpl").
	Funcs(template.FuncMap{"short": ShortName}).
	ParseFS(templateFS, "templates/report.html.tmpl"))

// Input is everything the report is built from.
type Input struct {
	Model       string
	Statistics  domain.Statistics
	Mentions    map[int][]domain.ArticleMention
	Notations   []domain.NotationDetection
	Official    string
	OfficialArt map[int]string
	GeneratedAt time.Time
}

// Page is the view model handed to the template.
type Page struct {
	GeneratedAt     string
	Model           string
	Documents       int
	Chunks          int
	Articles        int
	ChangedArticles int
	NotationCount   int
	Modified        int
	Repealed        int
	Inserted        int
	Charts          ChartData
	Comparison      []ComparisonRow
	NotationGroups  []NotationGroup
	Timeline        []TimelineItem
	Cards           []ArticleCard
	Official        string
	Laws            []statute.Law
}

type ComparisonRow struct {
	Number    int
	Title     string
	LawNumber string
	Date      string
	Impact    string
	Refs      int
}

type NotationGroup struct {
	LawNumber string
	Date      string
	Rows      []NotationRow
}

type NotationRow struct {
	Badge    string
	Icon     string
	Label    string
	Date     string
	Document string
	Unit     int
	UnitKind string
	Context  []int
	Line     string
	Previous string
	Next     string
}

type TimelineItem struct {
	Side     string
	Color    string
	Law      statute.Law
	Affected string
}

type ArticleCard struct {
	Number      int
	Title       string
	Summary     string
	Text        string
	Official    bool
	Amendment   *statute.Amendment
	RefCount    int
	SignalCount int
	Refs        []domain.ArticleMention
	MoreRefs    int
}

type badge struct{ class, icon, label string }

var typeBadges = map[domain.NotationType]badge{
	domain.NotationModified: {"bg-warning text-dark", "bi-pencil-square", "DEĞİŞİK"},
	domain.NotationRepealed: {"bg-danger", "bi-trash-fill", "MÜLGA"},
	domain.NotationInserted: {"bg-success", "bi-plus-circle-fill", "EK"},
}

// Build assembles the view model. It is deterministic for a fixed GeneratedAt.
func Build(in Input) Page {
	if in.GeneratedAt.IsZero() {
		in.GeneratedAt = time.Now()
	}
	model := in.Model
	if model == "" {
		model = "—"
	}
	p := Page{
		GeneratedAt:     in.GeneratedAt.Format("02.01.2006 15:04"),
		Model:           model,
		Documents:       len(in.Statistics.ChunksPerDocument),
		Chunks:          in.Statistics.TotalChunks,
		Articles:        len(in.Mentions),
		ChangedArticles: len(statute.Changed()),
		NotationCount:   len(in.Notations),
		Charts:          BuildChartData(in.Statistics),
		Laws:            statute.Laws(),
	}
	byType := notation.CountByType(in.Notations)
	p.Modified = byType[domain.NotationModified]
	p.Repealed = byType[domain.NotationRepealed]
	p.Inserted = byType[domain.NotationInserted]

	for _, a := range statute.Changed() {
		p.Comparison = append(p.Comparison, ComparisonRow{
			Number:    a.Number,
			Title:     a.Title,
			LawNumber: a.Amendment.LawNumber,
			Date:      a.Amendment.Date,
			Impact:    a.Amendment.Impact,
			Refs:      len(in.Mentions[a.Number]),
		})
	}

	for _, g := range notation.GroupByLaw(in.Notations) {
		group := NotationGroup{LawNumber: g.LawNumber, Date: g.Date}
		for _, d := range g.Detections {
			b, ok := typeBadges[d.Type]
			if !ok {
				b = badge{"bg-secondary", "bi-circle", string(d.Type)}
			}
			group.Rows = append(group.Rows, NotationRow{
				Badge: b.class, Icon: b.icon, Label: b.label,
				Date:     d.Date,
				Document: ShortName(d.Document),
				Unit:     d.Unit,
				UnitKind: unitKind(d.UnitLabel),
				Context:  d.Context,
				Line:     d.Line,
				Previous: d.Previous,
				Next:     d.Next,
			})
		}
		p.NotationGroups = append(p.NotationGroups, group)
	}

	for i, law := range statute.Laws() {
		side, color := "left", ColorChanged
		if i%2 == 1 {
			side = "right"
		}
		if law.Number == "6698" {
			color = ColorNormal
		}
		p.Timeline = append(p.Timeline, TimelineItem{Side: side, Color: color, Law: law, Affected: affected(law.Articles)})
	}

	p.Cards = articleCards(in)

	if in.Official != "" {
		p.Official = truncateRunes(in.Official, OfficialExcerpt) + "…"
	}
	return p
}

// Render writes the HTML report for page to w.
func Render(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// articleCards lists every catalogued article, amended ones first.
func articleCards(in Input) []ArticleCard {
	all := statute.Articles()
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Changed() != all[j].Changed() {
			return all[i].Changed()
		}
		return all[i].Number < all[j].Number
	})
	cards := make([]ArticleCard, 0, len(all))
	for _, a := range all {
		refs := in.Mentions[a.Number]
		card := ArticleCard{
			Number:    a.Number,
			Title:     a.Title,
			Summary:   a.Summary,
			Text:      a.Text,
			Amendment: a.Amendment,
			RefCount:  len(refs),
		}
		if official, ok := in.OfficialArt[a.Number]; ok && official != "" {
			card.Text, card.Official = official, true
		}
		for _, r := range refs {
			if r.ChangeSignal {
				card.SignalCount++
			}
		}
		shown := refs
		if len(shown) > MaxCardRefs {
			shown = shown[:MaxCardRefs]
			card.MoreRefs = len(refs) - MaxCardRefs
		}
		card.Refs = shown
		cards = append(cards, card)
	}
	return cards
}

func affected(articles []int) string {
	labels := make([]string, 0, MaxAffected)
	for i, n := range articles {
		if i == MaxAffected {
			break
		}
		labels = append(labels, articleLabel(n))
	}
	out := strings.Join(labels, ", ")
	if len(articles) > MaxAffected {
		out += " ve diğerleri"
	}
	return out
}

// unitKind defaults to slides, the unit of the training decks.
func unitKind(label string) string {
	if label == "" {
		return "Slayt"
	}
	return label
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
