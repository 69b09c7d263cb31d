package statute

import (
	"testing"

	"kvkkrag/internal/domain"
	"kvkkrag/internal/notation"
)

func TestLookup(t *testing.T) {
	a, ok := Lookup(9)
	if !ok || !a.Changed() || a.Amendment.LawNumber != "7499" || a.Amendment.Gazette != "32487" {
		t.Fatalf("Lookup(9) = %+v, %v", a, ok)
	}
	if _, ok := Lookup(14); ok {
		t.Error("article 14 is not catalogued")
	}
}

func TestArticlesAndChanged(t *testing.T) {
	all := Articles()
	if len(all) != 15 {
		t.Errorf("Articles() returned %d records", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Number >= all[i].Number {
			t.Fatal("Articles() not sorted")
		}
	}
	var changed []int
	for _, a := range Changed() {
		changed = append(changed, a.Number)
	}
	if len(changed) != 3 || changed[0] != 6 || changed[1] != 9 || changed[2] != 18 {
		t.Errorf("Changed() = %v", changed)
	}
}

func TestLawsChronological(t *testing.T) {
	ls := Laws()
	if len(ls) != 2 || ls[0].Number != "6698" || ls[1].Number != "7499" {
		t.Errorf("Laws() order = %v, %v", ls[0].Number, ls[1].Number)
	}
}

func TestChapterAndTitle(t *testing.T) {
	c, ok := ChapterOf(18)
	if !ok || c.Number != 5 {
		t.Errorf("ChapterOf(18) = %+v", c)
	}
	if Title(40) != "Madde 40" {
		t.Errorf("Title(40) = %q", Title(40))
	}
}

func TestParseLawText(t *testing.T) {
	text := "BİRİNCİ BÖLÜM Amaç, Kapsam ve Tanımlar " +
		"MADDE 1 – (1) Bu Kanunun amacı kişisel verileri korumaktır. " +
		"MADDE 6 – (1) Özel nitelikli kişisel veri. (2) (Mülga:2/3/2024-7499/33 md.) " +
		"(3) (Değişik:2/3/2024-7499/33 md.) Özel nitelikli kişisel verilerin işlenmesi yasaktır. " +
		"GEÇİCİ MADDE 1 – (1) Geçiş hükmü. " +
		"MADDE 6 – tekrar"

	got := ParseLawText(text, notation.NewScanner())
	if len(got) != 2 {
		t.Fatalf("got %d articles: %+v", len(got), got)
	}
	if got[0].Number != 1 || got[0].Title != "Amaç" || got[0].Chapter != 1 {
		t.Errorf("first article = %+v", got[0])
	}
	six := got[1]
	if six.Number != 6 || len(six.Notations) != 2 {
		t.Fatalf("article 6 = %+v", six)
	}
	if six.Notations[0].Type != domain.NotationRepealed || six.Notations[1].Type != domain.NotationModified {
		t.Errorf("notation types = %q, %q", six.Notations[0].Type, six.Notations[1].Type)
	}
	want := "(1) Özel nitelikli kişisel veri. (2) (3) Özel nitelikli kişisel verilerin işlenmesi yasaktır."
	if six.Text != want {
		t.Errorf("Text = %q, want %q", six.Text, want)
	}
}
