// Package statute is the static reference table for Law No. 6698 on the
// Protection of Personal Data (KVKK) and the laws that amended it.
package statute

import "sort"

// Amendment records how an amending law changed an article.
type Amendment struct {
	LawNumber     string
	Date          string
	Gazette       string
	OldText       string
	NewText       string
	Impact        string
	GDPRAlignment string
	Evidence      string
}

// Article is a fixed record for one KVKK article.
type Article struct {
	Number    int
	Title     string
	Summary   string
	Text      string
	Amendment *Amendment
}

// Changed reports whether the article carries an amendment record.
func (a Article) Changed() bool { return a.Amendment != nil }

var amendment7499 = Amendment{LawNumber: "7499", Date: "12.03.2024", Gazette: "32487"}

var articles = map[int]Article{
	1: {
		Number:  1,
		Title:   "Amaç",
		Summary: "Kişisel verilerin işlenmesinde başta özel hayatın gizliliği olmak üzere kişilerin temel hak ve özgürlüklerini korumak.",
		Text:    "Bu Kanunun amacı, kişisel verilerin işlenmesinde başta özel hayatın gizliliği olmak üzere kişilerin temel hak ve özgürlüklerini korumak ve kişisel verileri işleyen gerçek ve tüzel kişilerin yükümlülükleri ile uyacakları usul ve esasları düzenlemektir.",
	},
	2: {
		Number:  2,
		Title:   "Kapsam",
		Summary: "Kişisel verileri işlenen gerçek kişiler ile bu verileri tamamen veya kısmen otomatik olan ya da herhangi bir veri kayıt sisteminin parçası olmak kaydıyla otomatik olmayan yollarla işleyen gerçek veya tüzel kişiler.",
		Text:    "Bu Kanun hükümleri, kişisel verileri işlenen gerçek kişiler ile bu verileri tamamen veya kısmen otomatik olan ya da herhangi bir veri kayıt sisteminin parçası olmak kaydıyla otomatik olmayan yollarla işleyen gerçek ve tüzel kişiler hakkında uygulanır.",
	},
	3: {
		Number:  3,
		Title:   "Tanımlar",
		Summary: "Açık rıza, anonim hâle getirme, ilgili kişi, kişisel veri, kişisel verilerin işlenmesi, kurul, kurum, veri işleyen, VERBİS, veri sorumlusu kavramları.",
		Text:    "Bu Kanunda yer alan kavramların tanımları düzenlenmekte olup temel tanımlar şunlardır: Açık rıza: Belirli bir konuya ilişkin, bilgilendirilmeye dayanan ve özgür iradeyle açıklanan rıza. Kişisel veri: Kimliği belirli veya belirlenebilir gerçek kişiye ilişkin her türlü bilgi. Veri sorumlusu: Kişisel verilerin işleme amaçlarını ve vasıtalarını belirleyen, veri kayıt sisteminin kurulmasından ve yönetilmesinden sorumlu olan gerçek veya tüzel kişi.",
	},
	4: {
		Number:  4,
		Title:   "Kişisel Verilerin İşlenmesinde Genel İlkeler",
		Summary: "Hukuka ve dürüstlük kurallarına uygun, doğru ve güncel, belirli açık ve meşru amaçlar, amaçla bağlantılı, ilgili ve ölçülü, ilgili mevzuatta öngörülen süre kadar muhafaza.",
		Text:    "Kişisel veriler ancak bu Kanunda ve diğer kanunlarda öngörülen hallerde veya kişinin açık rızasıyla işlenebilir. a) Hukuka ve dürüstlük kurallarına uygun olma. b) Doğru ve gerektiğinde güncel olma. c) Belirli, açık ve meşru amaçlar için işlenme. ç) İşlendikleri amaçla bağlantılı, sınırlı ve ölçülü olma. d) İlgili mevzuatta öngörülen veya işlendikleri amaç için gerekli olan süre kadar muhafaza edilme.",
	},
	5: {
		Number:  5,
		Title:   "Kişisel Verilerin İşlenme Şartları",
		Summary: "Açık rıza veya kanunda öngörülen şartlardan birinin varlığı gerekir.",
		Text:    "Kişisel veriler ilgili kişinin açık rızası olmaksızın işlenemez. Aşağıdaki şartlardan birinin varlığı hâlinde, ilgili kişinin açık rızası aranmaksızın kişisel verilerinin işlenmesi mümkündür: a) Kanunlarda açıkça öngörülmesi. b) Fiili imkânsızlık nedeniyle rızasını açıklayamayacak durumda bulunan veya rızasına hukuki geçerlilik tanınmayan kişinin kendisinin ya da bir başkasının hayatı veya beden bütünlüğünün korunması için zorunlu olması. c) Bir sözleşmenin kurulması veya ifasıyla doğrudan doğruya ilgili olması kaydıyla, sözleşmenin taraflarına ait kişisel verilerin işlenmesinin gerekli olması. ç) Veri sorumlusunun hukuki yükümlülüğünü yerine getirebilmesi için zorunlu olması. d) İlgili kişinin kendisi tarafından alenileştirilmiş olması. e) Bir hakkın tesisi, kullanılması veya korunması için veri işlemenin zorunlu olması. f) İlgili kişinin temel hak ve özgürlüklerine zarar vermemek kaydıyla, veri sorumlusunun meşru menfaatleri için veri işlenmesinin zorunlu olması.",
	},
	6: {
		Number:  6,
		Title:   "Özel Nitelikli Kişisel Verilerin İşlenme Şartları",
		Summary: "Irk, etnik köken, siyasi düşünce, felsefi inanç, din, mezhep, kılık kıyafet, vakıf üyeliği, sağlık, cinsel hayat, ceza mahkûmiyeti, biyometrik ve genetik veriler özel niteliklidir.",
		Text:    "(1) Kişilerin ırkı, etnik kökeni, siyasi düşüncesi, felsefi inancı, dini, mezhebi veya diğer inançları, kılık ve kıyafeti, dernek, vakıf ya da sendika üyeliği, sağlığı, cinsel hayatı, ceza mahkûmiyeti ve güvenlik tedbirleriyle ilgili verileri ile biyometrik ve genetik verileri özel nitelikli kişisel veridir. (3) [7499 sonrası] Özel nitelikli kişisel verilerin işlenmesi yasaktır. Ancak belirli şartların varlığında (açık rıza, kanunda öngörülmesi, fiili imkânsızlık, alenileştirme, hak tesisi, sağlık hizmetleri, sosyal güvenlik yükümlülükleri, vakıf/dernek amaçları) işlenmesi mümkündür.",
		Amendment: with(amendment7499, Amendment{
			OldText:       "(2) Özel nitelikli kişisel verilerin, ilgilinin açık rızası olmaksızın işlenmesi yasaktır. (3) Sağlık ve cinsel hayata ilişkin kişisel veriler ise ancak kamu sağlığının korunması, koruyucu hekimlik, tıbbi teşhis, tedavi ve bakım hizmetlerinin yürütülmesi amacıyla ve sır saklama yükümlülüğü altında bulunan kişiler tarafından işlenebilir. (Orijinal 2016 Hali – 6698 sayılı Kanun)",
			NewText:       "(2) MÜLGA, 7499/33. md. ile yürürlükten kaldırıldı (2/3/2024). (3) [DEĞİŞİK 7499/33] Özel nitelikli kişisel verilerin işlenmesi yasaktır; ancak (a) açık rıza, (b) kanunda açıkça öngörülme, (c) fiili imkânsızlık, (ç) alenileştirme, (d) hak tesisi/korunması, (e) sağlık/tıbbi hizmetler (sır saklama yükümlülüğü altında), (f) sosyal güvenlik yükümlülükleri, (g) vakıf/dernek/sendika amaçlarıyla sınırlı olması halinde mümkündür.",
			Impact:        "Kritik: Fıkra 2 kaldırıldı, fıkra 3 kapsamlı koşul listesiyle yeniden düzenlendi",
			GDPRAlignment: "GDPR Madde 9 ile uyumlu, daha kapsamlı özel kategori veri işleme koşulları",
			Evidence:      "PPT Slayt 19: '(2) (Mülga:2/3/2024-7499/33 md.)' ve '(3) (Değişik:2/3/2024-7499/33 md.)' notasyonları",
		}),
	},
	7: {
		Number:  7,
		Title:   "Kişisel Verilerin Silinmesi, Yok Edilmesi veya Anonim Hâle Getirilmesi",
		Summary: "Kişisel veriler, işlenmesini gerektiren sebeplerin ortadan kalkması hâlinde silinir, yok edilir veya anonim hâle getirilir.",
		Text:    "Bu Kanun ve ilgili diğer kanun hükümlerine uygun olarak işlenmiş olmasına rağmen, işlenmesini gerektiren sebeplerin ortadan kalkması hâlinde kişisel veriler resen veya ilgili kişinin talebi üzerine veri sorumlusu tarafından silinir, yok edilir veya anonim hâle getirilir.",
	},
	8: {
		Number:  8,
		Title:   "Kişisel Verilerin Aktarılması",
		Summary: "Kişisel veriler, işlenme şartları bulunmak kaydıyla üçüncü kişilere aktarılabilir.",
		Text:    "Kişisel veriler; kişisel veri işleme şartlarından birinin bulunması kaydıyla ilgili kişinin açık rızası aranmaksızın üçüncü kişilere aktarılabilir.",
	},
	9: {
		Number:  9,
		Title:   "Kişisel Verilerin Yurt Dışına Aktarılması",
		Summary: "2024 değişikliği ile yurt dışı aktarım rejimi köklü biçimde değiştirildi. Yeterlilik kararı, standart sözleşme ve bağlayıcı şirket kuralları yeni mekanizmalar olarak eklendi.",
		Text:    "Kişisel veriler, yeterli korumaya sahip yabancı ülkelere aktarılabilir. Yeterli koruma bulunmaması halinde Türkiye'deki ve ilgili yabancı ülkedeki veri sorumlularının yeterli bir korumayı yazılı olarak taahhüt etmeleri ve Kurulun izninin bulunması kaydıyla kişisel veriler yurt dışına aktarılabilir.",
		Amendment: with(amendment7499, Amendment{
			OldText:       "Kişisel veriler, yeterli korumaya sahip yabancı ülkelere aktarılabilir. Yeterli koruma bulunmaması halinde Türkiye'deki ve ilgili yabancı ülkedeki veri sorumlularının yeterli bir korumayı yazılı olarak taahhüt etmeleri ve Kurulun izninin bulunması kaydıyla kişisel veriler yurt dışına aktarılabilir. (Eski 2016 Hali)",
			NewText:       "Kişisel veriler; (a) Yeterlilik kararı bulunması, (b) Uygun güvenceler kapsamında: standart sözleşmeler, bağlayıcı şirket kuralları, Kurul tarafından onaylanan sözleşme veya uluslararası koruma, ya da (c) Açık rıza veya belirli istisnalar dahilinde yurt dışına aktarılabilir. (7499 Sayılı Kanun Değişikliği - 2024)",
			Impact:        "Kritik: Tüm yurt dışı aktarım mekanizmaları değişti",
			GDPRAlignment: "GDPR Madde 44-49 ile uyumlu hale getirildi",
		}),
	},
	10: {
		Number:  10,
		Title:   "Veri Sorumlusunun Aydınlatma Yükümlülüğü",
		Summary: "Kişisel verilerin elde edilmesi sırasında veri sorumlusu, ilgili kişiyi aydınlatmak zorundadır.",
		Text:    "Kişisel verilerin elde edilmesi sırasında veri sorumlusu veya yetkilendirdiği kişi, ilgili kişilere belirli bilgileri vermek zorundadır: a) Veri sorumlusunun kimliği. b) Kişisel verilerin hangi amaçla işleneceği. c) İşlenen kişisel verilerin kimlere ve hangi amaçla aktarılabileceği. ç) Kişisel veri toplamanın yöntemi ve hukuki sebebi. d) İlgili kişinin kanundan doğan hakları.",
	},
	11: {
		Number:  11,
		Title:   "İlgili Kişinin Hakları",
		Summary: "Bilgi talep etme, amaç ve kullanım bilgisi, aktarım bilgisi, düzeltme talep etme, silinme talep etme, işlemeye itiraz etme, zarar tazminatı.",
		Text:    "Herkes, veri sorumlusuna başvurarak kendisiyle ilgili şu hakları kullanabilir: a) Kişisel veri işlenip işlenmediğini öğrenme. b) Kişisel verileri işlenmişse buna ilişkin bilgi talep etme. c) Kişisel verilerin işlenme amacını öğrenme. ç) Yurt içinde veya yurt dışında kişisel verilerin aktarıldığı üçüncü kişileri bilme. d) Kişisel verilerin eksik veya yanlış işlenmiş olması hâlinde bunların düzeltilmesini isteme. e) Kişisel verilerin silinmesini veya yok edilmesini isteme. f) İtiraz etme. g) Zararın giderilmesini talep etme.",
	},
	12: {
		Number:  12,
		Title:   "Veri Güvenliğine İlişkin Yükümlülükler",
		Summary: "Veri sorumlusu, kişisel verilerin güvenliğini sağlamak amacıyla uygun güvenlik düzeyini temin etmeye yönelik teknik ve idari tedbirleri almak zorundadır.",
		Text:    "Veri sorumlusu; a) Kişisel verilerin hukuka aykırı olarak işlenmesini önlemek, b) Kişisel verilere hukuka aykırı olarak erişilmesini önlemek, c) Kişisel verilerin muhafazasını sağlamak amacıyla uygun güvenlik düzeyini temin etmeye yönelik gerekli her türlü teknik ve idari tedbirleri almak zorundadır.",
	},
	13: {
		Number:  13,
		Title:   "Veri Sorumlusuna Başvuru",
		Summary: "İlgili kişi, haklarını kullanmak için veri sorumlusuna başvurabilir. Veri sorumlusu 30 gün içinde yanıt vermek zorundadır.",
		Text:    "İlgili kişi, bu Kanunun uygulanmasıyla ilgili taleplerini yazılı olarak veya Kurulun belirleyeceği diğer yöntemlerle veri sorumlusuna iletir. Veri sorumlusu, başvuruda yer alan talepleri, talebin niteliğine göre en kısa sürede ve en geç otuz gün içinde ücretsiz olarak sonuçlandırır.",
	},
	17: {
		Number:  17,
		Title:   "Suçlar",
		Summary: "Kişisel verilerin hukuka aykırı ele geçirilmesi, yayılması ve silinmemesi suç teşkil eder. Türk Ceza Kanunu hükümleri uygulanır.",
		Text:    "Kişisel verilere ilişkin suçlar bakımından 26/9/2004 tarihli ve 5237 sayılı Türk Ceza Kanununun 135 ila 140 ıncı madde hükümleri uygulanır. Bu Kanun kapsamındaki verilerle ilgili olarak bu Kanun hükümlerine aykırı olarak yapılan işlemler de aynı madde kapsamında değerlendirilir.",
	},
	18: {
		Number:  18,
		Title:   "Kabahatler",
		Summary: "Aydınlatma yükümlülüğü, veri güvenliği, kurul kararlarına uyma ve VERBİS ihlalleri idari para cezası gerektirir.",
		Text:    "Bu Kanunun 10 uncu maddesinde öngörülen aydınlatma yükümlülüğünü yerine getirmeyenler hakkında 9.182 TL'den 183.614 TL'ye kadar; 12 nci maddesi kapsamında veri güvenliğine ilişkin yükümlülükleri yerine getirmeyenler hakkında 45.909 TL'den 9.180.507 TL'ye kadar idari para cezası verilir.",
		Amendment: with(amendment7499, Amendment{
			OldText:       "2016 tarihli orijinal Kanundaki ceza miktarları çok daha düşüktü ve yıllık yeniden değerleme katsayısı ile artırılmaktaydı.",
			NewText:       "7499 sayılı Kanun ile ceza miktarları artırıldı ve ceza mekanizması yeniden yapılandırıldı. Cezalar alt ve üst sınır olarak belirlendi.",
			Impact:        "Önemli: Ceza miktarları ve mekanizması değişti",
			GDPRAlignment: "GDPR ceza yapısına kısmen yaklaştırıldı",
		}),
	},
}

func with(base, extra Amendment) *Amendment {
	extra.LawNumber = base.LawNumber
	extra.Date = base.Date
	extra.Gazette = base.Gazette
	return &extra
}

// Lookup returns the record for article n.
func Lookup(n int) (Article, bool) {
	a, ok := articles[n]
	return a, ok
}

// Articles returns every catalogued article in ascending order.
func Articles() []Article {
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// Changed returns the amended articles in ascending order.
func Changed() []Article {
	var out []Article
	for _, a := range Articles() {
		if a.Changed() {
			out = append(out, a)
		}
	}
	return out
}
