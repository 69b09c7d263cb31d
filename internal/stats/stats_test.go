package stats

import (
	"reflect"
	"testing"

	"kvkkrag/internal/domain"
)

func TestAggregate_TwoDocuments(t *testing.T) {
	chunks := []domain.Chunk{
		{ID: 0, Document: "a.pptx", Text: "madde 6"},
		{ID: 1, Document: "b.pdf", Text: "madde 9"},
	}
	st := Aggregate(chunks, nil)
	if st.TotalChunks != 2 {
		t.Errorf("TotalChunks = %d", st.TotalChunks)
	}
	if want := map[string]int{"a.pptx": 1, "b.pdf": 1}; !reflect.DeepEqual(st.ChunksPerDocument, want) {
		t.Errorf("ChunksPerDocument = %v", st.ChunksPerDocument)
	}
	if len(st.TopArticles) != 0 || st.TotalChangeSignals != 0 {
		t.Errorf("unexpected article stats: %+v", st)
	}
	if got := Documents(st); !reflect.DeepEqual(got, []string{"a.pptx", "b.pdf"}) {
		t.Errorf("Documents() = %v", got)
	}
}

func TestAggregate_Ranking(t *testing.T) {
	mention := func(signal bool) domain.ArticleMention { return domain.ArticleMention{ChangeSignal: signal} }
	mentions := map[int][]domain.ArticleMention{
		3:  {mention(false)},
		6:  {mention(true), mention(false), mention(true)},
		9:  {mention(true), mention(true), mention(true)},
		10: {mention(false)},
		11: {mention(false), mention(false)},
		12: {mention(false)},
		18: {mention(true)},
	}
	st := Aggregate(nil, mentions)

	want := []domain.ArticleCount{
		{Article: 6, Count: 3},
		{Article: 9, Count: 3},
		{Article: 11, Count: 2},
		{Article: 3, Count: 1},
		{Article: 10, Count: 1},
	}
	if !reflect.DeepEqual(st.TopArticles, want) {
		t.Errorf("TopArticles = %v, want %v", st.TopArticles, want)
	}
	if st.ChangeSignals[6] != 2 || st.ChangeSignals[9] != 3 || st.ChangeSignals[3] != 0 {
		t.Errorf("ChangeSignals = %v", st.ChangeSignals)
	}
	if st.TotalChangeSignals != 6 {
		t.Errorf("TotalChangeSignals = %d, want 6", st.TotalChangeSignals)
	}
	if st.MentionsPerArticle[11] != 2 {
		t.Errorf("MentionsPerArticle = %v", st.MentionsPerArticle)
	}
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	mentions := map[int][]domain.ArticleMention{6: {{Article: 6}}}
	Aggregate(nil, mentions)
	if len(mentions) != 1 || len(mentions[6]) != 1 {
		t.Error("input mutated")
	}
}
