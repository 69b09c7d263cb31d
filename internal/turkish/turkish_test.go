package turkish

import (
	"regexp"
	"testing"
)

func TestFoldPattern(t *testing.T) {
	re := regexp.MustCompile("^" + FoldPattern("Değişik") + "$")
	testCases := []struct {
		input string
		want  bool
	}{
		{"Değişik", true},
		{"değişik", true},
		{"DEĞİŞİK", true},
		{"DEĞIŞIK", true},
		{"degisik", false},
		{"Değişti", false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := re.MatchString(tc.input); got != tc.want {
				t.Errorf("match %q = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestFoldPattern_QuotesPunctuation(t *testing.T) {
	re := regexp.MustCompile("^" + FoldPattern("m.") + "$")
	if !re.MatchString("M.") {
		t.Error("expected M. to match")
	}
	if re.MatchString("mx") {
		t.Error("dot must be literal")
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("İLGİLİ Kişinin Madde 6'sı")
	want := []string{"ilgili", "kişinin", "madde", "6'sı"}
	if len(got) != len(want) {
		t.Fatalf("Tokens() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	decomposed := "s\u0327"
	if got := Normalize("a\r\nb\r" + decomposed); got != "a\nb\n\u015f" {
		t.Errorf("Normalize() = %q", got)
	}
	if got := Normalize("Madde\u00a06\u2009md."); got != "Madde 6 md." {
		t.Errorf("Normalize() kept unicode spaces: %q", got)
	}
}
