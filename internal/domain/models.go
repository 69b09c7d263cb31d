package domain

// SourceUnit is one page or slide of extracted text.
type SourceUnit struct {
	Document string
	Index    int
	Text     string
}

// Chunk is a bounded piece of a source unit prepared for embedding.
type Chunk struct {
	ID       int    `json:"id"`
	Document string `json:"dosya"`
	Unit     int    `json:"slayt_no"`
	Sequence int    `json:"parca_no"`
	Text     string `json:"metin"`
}

// SearchResult represents a matching chunk with a relevance score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}

// NotationType is the kind of statutory amendment a notation records.
type NotationType string

const (
	NotationInserted NotationType = "Ek"
	NotationRepealed NotationType = "Mülga"
	NotationModified NotationType = "Değişik"
)

// NotationDetection is a single amendment annotation found in a document.
type NotationDetection struct {
	Type       NotationType `json:"tip"`
	Date       string       `json:"tarih"`
	LawNumber  string       `json:"kanun_no"`
	LawArticle string       `json:"madde_ref"`
	Document   string       `json:"kaynak_txt"`
	Unit       int          `json:"slayt_no"`
	UnitLabel  string       `json:"birim,omitempty"`
	Context    []int        `json:"baglantilar"`
	Raw        string       `json:"notasyon"`
	Line       string       `json:"satir"`
	Previous   string       `json:"onceki_satir"`
	Next       string       `json:"sonraki_satir"`
}

// ArticleMention links an article number to a chunk that references it.
// PreviousText and NewText are empty when no span was captured.
type ArticleMention struct {
	Article      int    `json:"madde"`
	ChunkID      int    `json:"parca_id"`
	Document     string `json:"dosya"`
	Unit         int    `json:"slayt_no"`
	Preview      string `json:"metin_ozeti"`
	ChangeSignal bool   `json:"degisiklik_sinyali"`
	PreviousText string `json:"eski_hal_metni,omitempty"`
	NewText      string `json:"yeni_hal_metni,omitempty"`
}

// ArticleCount is one row of a ranked frequency table.
type ArticleCount struct {
	Article int `json:"madde"`
	Count   int `json:"adet"`
}

// Statistics is the aggregate view over chunks and article mentions.
type Statistics struct {
	TotalChunks        int            `json:"toplam_parca"`
	ChunksPerDocument  map[string]int `json:"dosya_sayisi"`
	MentionsPerArticle map[int]int    `json:"madde_frekans"`
	TopArticles        []ArticleCount `json:"en_cok_5"`
	ChangeSignals      map[int]int    `json:"degisiklik_sinyalli"`
	TotalChangeSignals int            `json:"toplam_degisiklik_sinyali"`
}
