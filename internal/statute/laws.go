package statute

import (
	"sort"
	"time"
)

// Law is one entry of the amendment timeline.
type Law struct {
	Number   string
	Date     string
	Gazette  string
	Title    string
	Link     string
	Articles []int
	Summary  string
}

// Effective parses the dd.mm.yyyy date of the law.
func (l Law) Effective() (time.Time, error) {
	return time.Parse("02.01.2006", l.Date)
}

var laws = []Law{
	{
		Number:   "7499",
		Date:     "12.03.2024",
		Gazette:  "32487",
		Title:    "7499 Sayılı Kişisel Verilerin Korunması Kanunu ile Bazı Kanunlarda Değişiklik Yapılmasına Dair Kanun",
		Link:     "https://www.resmigazete.gov.tr/eskiler/2024/03/20240312-1.htm",
		Articles: []int{6, 9, 18},
		Summary: "Madde 6 (Özel Nitelikli Veriler): Fıkra 2 mülga edildi; fıkra 3 kapsamlı koşul listesiyle yeniden düzenlendi. " +
			"Madde 9 (Yurt Dışı Aktarım): Tüm aktarım mekanizmaları GDPR ile uyumlu biçimde kökten değiştirildi; " +
			"yeterlilik kararı, standart sözleşme, bağlayıcı şirket kuralları eklendi. " +
			"Madde 18 (Kabahatler): Yeni 50.000–1.000.000 TL para cezası bandı eklendi (bent d); " +
			"idari para cezalarına idare mahkemesinde itiraz yolu açıldı (fıkra 3 eklendi). " +
			"Geçici Madde 3 (Ek): Madde 9 eski halinin 1/9/2024'e kadar uygulanmaya devam edeceği hükmü getirildi.",
	},
	{
		Number:   "6698",
		Date:     "07.04.2016",
		Gazette:  "29677",
		Title:    "Kişisel Verilerin Korunması Kanunu (Orijinal)",
		Link:     "https://www.resmigazete.gov.tr/eskiler/2016/04/20160407-8.htm",
		Articles: articleRange(1, 30),
		Summary:  "Kanun yürürlüğe girdi. Kişisel verilerin korunması alanındaki temel yasal çerçeve belirlendi.",
	},
}

// Laws returns the timeline in chronological order.
func Laws() []Law {
	out := make([]Law, len(laws))
	copy(out, laws)
	sort.SliceStable(out, func(i, j int) bool {
		a, errA := out[i].Effective()
		b, errB := out[j].Effective()
		if errA != nil || errB != nil {
			return out[i].Date < out[j].Date
		}
		return a.Before(b)
	})
	return out
}

// Chapter groups consecutive articles of the law.
type Chapter struct {
	Number   int
	Ordinal  string
	Title    string
	Articles []int
}

var chapters = []Chapter{
	{1, "BİRİNCİ", "Amaç, Kapsam ve Tanımlar", articleRange(1, 3)},
	{2, "İKİNCİ", "Kişisel Verilerin İşlenmesi", articleRange(4, 10)},
	{3, "ÜÇÜNCÜ", "Yükümlülükler", articleRange(11, 14)},
	{4, "DÖRDÜNCÜ", "Başvuru, Şikâyet ve İtiraz", articleRange(15, 16)},
	{5, "BEŞİNCİ", "Kişisel Verileri Koruma Kurumu", articleRange(17, 26)},
	{6, "ALTINCI", "Suçlar ve Kabahatler", []int{27, 28}},
	{7, "YEDİNCİ", "Çeşitli ve Son Hükümler", articleRange(29, 32)},
}

// ChapterOf returns the chapter that contains article n.
func ChapterOf(n int) (Chapter, bool) {
	for _, c := range chapters {
		for _, a := range c.Articles {
			if a == n {
				return c, true
			}
		}
	}
	return Chapter{}, false
}

var titles = map[int]string{
	1: "Amaç", 2: "Kapsam", 3: "Tanımlar", 4: "Genel İlkeler",
	5:  "Kişisel Verilerin İşlenme Şartları",
	6:  "Özel Nitelikli Kişisel Verilerin İşlenme Şartları",
	7:  "Kişisel Verilerin Silinmesi, Yok Edilmesi veya Anonim Hâle Getirilmesi",
	8:  "Kişisel Verilerin Aktarılması",
	9:  "Kişisel Verilerin Yurt Dışına Aktarılması",
	10: "Aydınlatma Yükümlülüğü",
	11: "İlgili Kişinin Hakları",
	12: "Veri Güvenliğine İlişkin Yükümlülükler",
	13: "İlgili Kişinin Başvuru Hakkı",
	14: "Kurula Şikâyet",
	15: "Kurulun İnceleme Usulü",
	16: "Veri Sorumluları Sicili (VERBİS)",
	17: "Suçlar",
	18: "Kabahatler (İdari Para Cezaları)",
	19: "Kurul",
	20: "Kurul Üyeliği",
	21: "Üyeliğin Sona Ermesi",
	22: "Kurul'un Görev ve Yetkileri",
	23: "Kurum Yapısı ve Bütçesi",
	24: "Başkan'ın Görev ve Yetkileri",
	25: "İkinci Başkan",
	26: "Ana Hizmet Birimleri",
	27: "Suçlara İlişkin Hükümler",
	28: "Kabahatlere İlişkin Hükümler",
	29: "Veri İşleme Şartlarına Geçiş",
	30: "Kurul Üyelerine İlişkin Geçiş",
	31: "Personele İlişkin Geçiş",
	32: "Yürürlükten Kaldırılan Hükümler",
}

// Title returns the heading of article n, falling back to "Madde n".
func Title(n int) string {
	if t, ok := titles[n]; ok {
		return t
	}
	return "Madde " + itoa(n)
}

func articleRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
