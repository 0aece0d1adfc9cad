package textcheck

import "strings"

// Thresholds of the gibberish heuristics
const (
	minGibberishLength  = 3
	vowelCheckMinLength = 6
	minVowelRatio       = 0.15
	maxConsonantRun     = 5
	maxRepeatedLetters  = 3
	affixCheckMinLength = 7
	affixConsonantRun   = 4
	singleWordMinLength = 8
)

var defaultKeyboardMashes = []string{
	"qwerty", "qwertz", "azerty", "asdf", "qsdf", "zxcv", "wxcv",
	"hjkl", "uiop", "poiu", "mnbv", "123456", "654321", "987654",
}

// Letter pairs that essentially never occur inside French, English or German words.
var defaultRareBigrams = []string{
	"zj", "jz", "qz", "zq", "vq", "qv", "qx", "xq", "qj", "jq", "xj", "jx",
	"fq", "qf", "wq", "kq", "qk", "xk", "vx", "xv", "zx", "xz", "jv", "gq",
	"qg", "pq", "qp",
}

var defaultPrefixes = []string{
	"pre", "pro", "re", "un", "in", "im", "con", "com", "dis", "de", "ex",
	"inter", "trans", "sub", "super", "auto", "micro", "multi", "co",
	"sch", "str", "spr", "chr",
}

var defaultSuffixes = []string{
	"tion", "sion", "ment", "ness", "ing", "ed", "er", "eur", "euse", "ist",
	"ism", "able", "ible", "ful", "less", "ive", "ous", "ique", "al", "ly",
	"ity", "ance", "ence", "ship", "logy", "graphy", "ant", "ent", "age",
	"ure", "ier", "ski", "son", "man", "ung", "heit", "keit", "schaft",
}

var defaultCommonPairs = []string{
	"th", "he", "in", "er", "an", "re", "on", "en", "at", "es", "ed", "te",
	"ti", "or", "st", "ar", "nd", "to", "nt", "is", "ou", "it", "le", "de",
	"ch", "ne", "ma", "ra", "la", "li", "ro", "co",
}

// Classifier detects keyboard mashes and other non-linguistic noise.
// Its tables are fixed at construction; it is safe for concurrent use.
type Classifier struct {
	keyboardMashes []string
	rareBigrams    map[string]bool
	prefixes       []string
	suffixes       []string
	commonPairs    []string
}

// New returns a Classifier loaded with the built-in tables.
func New() *Classifier {
	rare := make(map[string]bool, len(defaultRareBigrams))
	for _, b := range defaultRareBigrams {
		rare[b] = true
	}
	return &Classifier{
		keyboardMashes: defaultKeyboardMashes,
		rareBigrams:    rare,
		prefixes:       defaultPrefixes,
		suffixes:       defaultSuffixes,
		commonPairs:    defaultCommonPairs,
	}
}

// IsGibberish reports whether text looks like random typing rather than language.
// It is a best-effort heuristic; unusual proper names can be false positives.
func (c *Classifier) IsGibberish(text string) bool {
	normalized := Normalize(text)
	if len(normalized) < minGibberishLength {
		return false
	}

	if c.hasKeyboardMash(normalized) {
		return true
	}
	if len(normalized) >= vowelCheckMinLength && lowVowelRatio(normalized) {
		return true
	}
	if longestConsonantRun(normalized) >= maxConsonantRun {
		return true
	}
	if hasRepeatedLetter(normalized) {
		return true
	}
	if c.hasRareBigram(normalized) {
		return true
	}
	if len(normalized) >= affixCheckMinLength && !c.hasAffix(normalized) &&
		longestConsonantRun(normalized) >= affixConsonantRun {
		return true
	}
	if !strings.Contains(normalized, " ") && len(normalized) >= singleWordMinLength &&
		!c.hasPronounceablePair(normalized) {
		return true
	}

	return false
}

func (c *Classifier) hasKeyboardMash(s string) bool {
	for _, mash := range c.keyboardMashes {
		if strings.Contains(s, mash) {
			return true
		}
	}
	return false
}

// lowVowelRatio ignores digits and spaces; a string without letters never qualifies.
func lowVowelRatio(s string) bool {
	letters, vowels := 0, 0
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			continue
		}
		letters++
		if isVowel(s[i]) {
			vowels++
		}
	}
	if letters == 0 {
		return false
	}
	return float64(vowels)/float64(letters) < minVowelRatio
}

func hasRepeatedLetter(s string) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if isLetter(s[i]) && s[i] == s[i-1] {
			run++
			if run >= maxRepeatedLetters {
				return true
			}
			continue
		}
		run = 1
	}
	return false
}

func (c *Classifier) hasRareBigram(s string) bool {
	for i := 1; i < len(s); i++ {
		if isLetter(s[i-1]) && isLetter(s[i]) && c.rareBigrams[s[i-1:i+1]] {
			return true
		}
	}
	return false
}

func (c *Classifier) hasAffix(s string) bool {
	for _, word := range strings.Fields(s) {
		if len(word) < 4 {
			continue
		}
		for _, p := range c.prefixes {
			if strings.HasPrefix(word, p) {
				return true
			}
		}
		for _, suffix := range c.suffixes {
			if strings.HasSuffix(word, suffix) {
				return true
			}
		}
	}
	return false
}

func (c *Classifier) hasPronounceablePair(word string) bool {
	for i := 1; i < len(word); i++ {
		prev, cur := word[i-1], word[i]
		if isVowel(prev) && isVowel(cur) {
			return true
		}
		if isVowel(prev) && (cur == 'r' || cur == 's') {
			return true
		}
	}
	for _, pair := range c.commonPairs {
		if strings.Contains(word, pair) {
			return true
		}
	}
	return false
}

// shortTextWords is the word count up to which a fragment is classified as a whole.
const shortTextWords = 3

// IsGibberishText classifies longer free text (summaries, tasks). Fragments of up to three
// words are classified as a whole; longer text is noise when a keyboard mash appears or when
// at least half of its words of three or more letters are gibberish.
func (c *Classifier) IsGibberishText(text string) bool {
	words := strings.Fields(text)
	if len(words) <= shortTextWords {
		return c.IsGibberish(text)
	}
	if c.hasKeyboardMash(Normalize(text)) {
		return true
	}

	counted, noisy := 0, 0
	for _, w := range words {
		if len(Normalize(w)) < minGibberishLength {
			continue
		}
		counted++
		if c.IsGibberish(w) {
			noisy++
		}
	}

	return counted > 0 && noisy*2 >= counted
}
