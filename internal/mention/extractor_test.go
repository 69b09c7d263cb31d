package mention

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"kvkkrag/internal/domain"
)

func TestExtractor_EndToEnd(t *testing.T) {
	chunks := []domain.Chunk{
		{ID: 0, Document: "a.pptx", Unit: 3, Text: "KVKK madde 6 kapsamında özel nitelikli kişisel veriler ele alınmaktadır."},
		{ID: 1, Document: "a.pptx", Unit: 4, Text: "Madde 9 2024 yılında 7499 ile değişti."},
	}
	got := NewExtractor().Extract(chunks)

	if len(got[6]) != 1 || got[6][0].ChangeSignal {
		t.Errorf("article 6 = %+v, want one mention without change signal", got[6])
	}
	if len(got[9]) != 1 || !got[9][0].ChangeSignal {
		t.Errorf("article 9 = %+v, want one mention with change signal", got[9])
	}
	if m := got[9][0]; m.Document != "a.pptx" || m.Unit != 4 || m.ChunkID != 1 {
		t.Errorf("provenance = %+v", m)
	}
}

func TestExtractor_DedupWithinChunk(t *testing.T) {
	chunks := []domain.Chunk{
		{ID: 0, Text: "madde 6 ve yine madde 6 ile m. 6 hükmü"},
		{ID: 1, Text: "Madde 6 tekrar"},
	}
	got := NewExtractor().Extract(chunks)
	if len(got[6]) != 2 {
		t.Fatalf("got %d mentions, want 2", len(got[6]))
	}
	if got[6][0].ChunkID != 0 || got[6][1].ChunkID != 1 {
		t.Error("mentions must follow chunk order")
	}
}

func TestExtractor_Articles(t *testing.T) {
	e := NewExtractor()
	testCases := []struct {
		name string
		text string
		want []int
	}{
		{"keyword forms", "MADDE 5, m.7 ve madde12)", []int{5, 7, 12}},
		{"out of range ignored", "madde 0 madde 31 madde 30.", []int{30}},
		{"end of text", "bkz. madde 11", []int{11}},
		{"no-break space", "KVKK Madde\u00a06 kapsamında", []int{6}},
		{"turkish upper case", "MADDE 18 – KABAHATLER", []int{18}},
		{"no reference", "kişisel veri", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Articles(tc.text); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Articles(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

// The change signal is a keyword heuristic; any mention of a year in range
// flags the chunk even when nothing changed.
func TestExtractor_ChangeSignalIsHeuristic(t *testing.T) {
	e := NewExtractor()
	testCases := []struct {
		text string
		want bool
	}{
		{"Madde 10 aydınlatma yükümlülüğü", false},
		{"Madde 10 2018 yılı kurul kararı", true},
		{"Madde 9 GÜNCELLENDİ", true},
		{"Yeni düzenleme", true},
		{"Madde 18 revize edildi", true},
	}
	for _, tc := range testCases {
		if got := e.ChangeSignal(tc.text); got != tc.want {
			t.Errorf("ChangeSignal(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestExtractor_VersionSpans(t *testing.T) {
	text := "Madde 9 değişti.\nEski hali: yeterli korumaya sahip ülkelere aktarım\nYeni hali: yeterlilik kararı veya uygun güvenceler\n"
	got := NewExtractor().Extract([]domain.Chunk{{ID: 0, Text: text}})
	m := got[9][0]
	if m.PreviousText != "Eski hali: yeterli korumaya sahip ülkelere aktarım" {
		t.Errorf("PreviousText = %q", m.PreviousText)
	}
	if m.NewText != "Yeni hali: yeterlilik kararı veya uygun güvenceler" {
		t.Errorf("NewText = %q", m.NewText)
	}

	short := NewExtractor().Extract([]domain.Chunk{{ID: 0, Text: "Madde 9 eski hal: kısa"}})
	if short[9][0].PreviousText != "" {
		t.Errorf("span under 10 chars should be absent, got %q", short[9][0].PreviousText)
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("ş", 300)
	got := Preview(long)
	if utf8.RuneCountInString(got) != PreviewRunes+1 || !strings.HasSuffix(got, PreviewEllipse) {
		t.Errorf("Preview() has %d runes", utf8.RuneCountInString(got))
	}
	if Preview("kısa") != "kısa" {
		t.Error("short text must not be truncated")
	}
}

func TestArticlesSorted(t *testing.T) {
	m := map[int][]domain.ArticleMention{9: nil, 1: nil, 6: nil}
	if got := Articles(m); !reflect.DeepEqual(got, []int{1, 6, 9}) {
		t.Errorf("Articles() = %v", got)
	}
}
