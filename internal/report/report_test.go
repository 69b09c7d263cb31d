package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/statute"
)

func sampleInput() Input {
	mentions := map[int][]domain.ArticleMention{
		5: {{Article: 5, ChunkID: 0, Document: "A KVKK Sertifika Programı.pptx", Unit: 3, Preview: "Madde 5 şartları"}},
		6: {
			{Article: 6, ChunkID: 1, Document: "A KVKK Sertifika Programı.pptx", Unit: 19, Preview: "Madde 6 <değişti>", ChangeSignal: true},
		},
	}
	for i := 0; i < 6; i++ {
		mentions[4] = append(mentions[4], domain.ArticleMention{Article: 4, ChunkID: 10 + i, Document: "B.pptx", Unit: i + 1, Preview: "ilke", ChangeSignal: i == 0})
	}
	return Input{
		Model: "tfidf",
		Statistics: domain.Statistics{
			TotalChunks:        12,
			ChunksPerDocument:  map[string]int{"B.pptx": 7, "A KVKK Sertifika Programı.pptx": 5},
			MentionsPerArticle: map[int]int{6: 1, 4: 6, 5: 1},
			ChangeSignals:      map[int]int{6: 1, 4: 1},
			TotalChangeSignals: 2,
		},
		Mentions: mentions,
		Notations: []domain.NotationDetection{
			{Type: domain.NotationModified, Date: "2/3/2024", LawNumber: "7499", Document: "A", Unit: 19, Context: []int{6}, Line: "(3) (Değişik:2/3/2024-7499/33 md.) <b>", Previous: "önce", Next: "sonra"},
			{Type: domain.NotationInserted, Date: "1/1/2020", LawNumber: "700", Document: "A", Unit: 2, UnitLabel: "Sayfa", Line: "(Ek:1/1/2020-700/1 md.)"},
			{Type: domain.NotationRepealed, Date: "2/3/2024", LawNumber: "7499", Document: "A", Unit: 19, Context: []int{6}, Line: "(2) (Mülga:2/3/2024-7499/33 md.)"},
		},
		Official:    strings.Repeat("ü", 2000),
		OfficialArt: map[int]string{5: "MADDE 5 resmi metin"},
		GeneratedAt: time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC),
	}
}

func TestBuildChartData(t *testing.T) {
	data := BuildChartData(sampleInput().Statistics)

	if strings.Join(data.Bar.X, ",") != "Madde 4,Madde 5,Madde 6" {
		t.Errorf("bar x = %v", data.Bar.X)
	}
	if data.Bar.Y[0] != 6 || data.Bar.Colors[0] != ColorNormal || data.Bar.Colors[2] != ColorChanged {
		t.Errorf("bar = %+v", data.Bar)
	}
	if strings.Join(data.Pie.Labels, ",") != "A,B" || data.Pie.Values[0] != 5 {
		t.Errorf("pie = %+v", data.Pie)
	}
	if strings.Join(data.Signals.X, ",") != "Madde 4,Madde 6" {
		t.Errorf("signals = %+v", data.Signals)
	}
}

func TestShortName(t *testing.T) {
	testCases := map[string]string{
		"1- Giriş KVKK Sertifika Programı.pptx": "1Giriş",
		"ders.txt":                              "ders",
		"notlar.pdf":                            "notlar.pdf",
	}
	for in, want := range testCases {
		if got := ShortName(in); got != want {
			t.Errorf("ShortName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuild(t *testing.T) {
	p := Build(sampleInput())

	if p.GeneratedAt != "12.03.2024 09:30" || p.Documents != 2 || p.Articles != 3 {
		t.Errorf("header = %+v", p)
	}
	if p.ChangedArticles != len(statute.Changed()) || len(p.Comparison) != p.ChangedArticles {
		t.Errorf("comparison rows = %d", len(p.Comparison))
	}
	if p.Modified != 1 || p.Repealed != 1 || p.Inserted != 1 {
		t.Errorf("type counts = %d/%d/%d", p.Modified, p.Repealed, p.Inserted)
	}
	if len(p.NotationGroups) != 2 || p.NotationGroups[0].LawNumber != "7499" || len(p.NotationGroups[0].Rows) != 2 {
		t.Errorf("groups = %+v", p.NotationGroups)
	}
	if p.Timeline[0].Law.Number != "6698" || p.Timeline[0].Side != "left" || p.Timeline[1].Color != ColorChanged {
		t.Errorf("timeline = %+v", p.Timeline)
	}
	if !strings.HasSuffix(p.Timeline[0].Affected, " ve diğerleri") || p.Timeline[1].Affected != "Madde 6, Madde 9, Madde 18" {
		t.Errorf("affected = %q / %q", p.Timeline[0].Affected, p.Timeline[1].Affected)
	}

	first := p.Cards[0]
	if first.Amendment == nil || first.Number != 6 {
		t.Errorf("amended articles should come first, got %d", first.Number)
	}
	for _, c := range p.Cards {
		switch c.Number {
		case 4:
			if len(c.Refs) != MaxCardRefs || c.MoreRefs != 1 || c.SignalCount != 1 {
				t.Errorf("card 4 = %+v", c)
			}
		case 5:
			if !c.Official || c.Text != "MADDE 5 resmi metin" {
				t.Errorf("card 5 should use the official text: %+v", c)
			}
		}
	}
	if n := len([]rune(p.Official)); n != OfficialExcerpt+1 {
		t.Errorf("official excerpt length = %d", n)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Build(sampleInput())); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	if got := doc.Find(`[data-stat="chunks"] .num`).Text(); got != "12" {
		t.Errorf("chunk card = %q", got)
	}
	if got := doc.Find(".law-group").First().AttrOr("data-law", ""); got != "7499" {
		t.Errorf("first law group = %q", got)
	}
	if n := doc.Find("tr.notation").Length(); n != 3 {
		t.Errorf("notation rows = %d", n)
	}
	units := doc.Find("tr.notation .unit")
	if first, last := units.First().Text(), units.Last().Text(); first != "Slayt 19" || last != "Sayfa 2" {
		t.Errorf("unit labels = %q, %q", first, last)
	}
	if got := doc.Find(".article-card").First().AttrOr("data-article", ""); got != "6" {
		t.Errorf("first card = %q", got)
	}
	card4 := doc.Find(`.article-card[data-article="4"]`)
	if n := card4.Find("tr.ref").Length(); n != MaxCardRefs {
		t.Errorf("card 4 refs = %d", n)
	}
	if !strings.Contains(card4.Find("tr.more").Text(), "… ve 1 slayt daha") {
		t.Errorf("card 4 overflow = %q", card4.Find("tr.more").Text())
	}
	if card4.Find(".signals").Length() != 1 {
		t.Error("card 4 should show a signal badge")
	}
	if doc.Find(`.article-card[data-article="6"] .amendment .old`).Text() == "" {
		t.Error("amended card missing old text")
	}
	if doc.Find("#official").Length() != 1 {
		t.Error("official section missing")
	}

	if strings.Contains(html, "md.) <b>") {
		t.Error("notation line was not escaped")
	}
	if !strings.Contains(html, `"degisiklik":{"x":["Madde 4","Madde 6"]`) {
		t.Error("chart data not embedded as JSON")
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Build(Input{GeneratedAt: time.Unix(0, 0)})); err != nil {
		t.Fatal(err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc.Find("#notations").Text(), "notasyonu bulunamadı") {
		t.Error("empty notation notice missing")
	}
	if doc.Find("#official").Length() != 0 {
		t.Error("official section should be omitted")
	}
}
