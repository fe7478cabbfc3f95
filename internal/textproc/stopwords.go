package textproc

// stopwords contains common English words excluded from keyword extraction.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "do": true, "does": true, "did": true,
	"have": true, "has": true, "had": true, "be": true, "been": true,
	"being": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "shall": true, "must": true,
	"not": true, "no": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "than": true, "so": true, "as": true,
	"at": true, "by": true, "for": true, "from": true, "in": true,
	"into": true, "of": true, "on": true, "to": true, "with": true,
	"about": true, "up": true, "out": true, "it": true, "its": true,
	"this": true, "that": true, "these": true, "those": true, "what": true,
	"which": true, "who": true, "whom": true, "how": true, "when": true,
	"where": true, "why": true, "you": true, "your": true, "yours": true,
	"i": true, "me": true, "my": true, "we": true, "our": true,
	"ours": true, "they": true, "them": true, "their": true, "he": true,
	"she": true, "her": true, "him": true, "his": true, "us": true,
	"am": true, "more": true, "most": true, "some": true,
	"such": true, "only": true, "own": true, "same": true, "too": true,
	"very": true, "just": true, "all": true, "any": true,
	"both": true, "each": true, "few": true, "other": true, "over": true,
	"under": true, "again": true, "further": true, "once": true, "here": true,
	"there": true, "while": true, "during": true, "before": true, "after": true,
	"above": true, "below": true, "between": true, "through": true,
	"years": true, "year": true, "etc": true,
	"plus": true, "per": true, "via": true, "using": true, "within": true,
}

// IsStopword reports whether a lowercase word is on the exclusion list.
func IsStopword(word string) bool {
	return stopwords[word]
}
