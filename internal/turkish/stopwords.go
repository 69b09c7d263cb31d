package turkish

var stopwordList = []string{
	// Turkish
	"acaba", "ama", "ancak", "artık", "aslında", "bazı", "belki", "ben", "beni", "bana", "bir", "biri", "birkaç",
	"birşey", "biz", "bize", "bizi", "bu", "buna", "bunda", "bundan", "bunu", "bunun", "çok", "çünkü", "da", "daha",
	"de", "defa", "diye", "en", "gibi", "hem", "hep", "hepsi", "her", "hiç", "için", "ile", "ise", "kez", "ki", "kim",
	"mı", "mi", "mu", "mü", "nasıl", "ne", "neden", "nerde", "nerede", "nereye", "niçin", "niye", "o", "olan",
	"olarak", "oldu", "olduğu", "olduğunu", "olmak", "olması", "olup", "on", "ona", "ondan", "onlar", "onu", "onun",
	"sanki", "şey", "siz", "şu", "tüm", "ve", "veya", "ya", "yani", "yer", "yine",
	// English
	"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "at", "by", "with", "as",
	"is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down",
	"over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during",
	"before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "should",
	"now",
}

// Stopwords returns a fresh set of Turkish and English stopwords.
func Stopwords() map[string]struct{} {
	m := make(map[string]struct{}, len(stopwordList))
	for _, w := range stopwordList {
		m[w] = struct{}{}
	}
	return m
}
