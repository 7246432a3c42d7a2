// Package pos assigns Penn-style part-of-speech tags to tokens.
//
// The tagger is intentionally coarse: a closed-class lexicon plus suffix
// heuristics. The only tag the filler pipeline depends on is UH, the
// interjection category, so precision on open-class words matters less
// than a reliable interjection inventory.
package pos

import (
	"errors"
	"strings"
	"sync"
	"unicode"
)

// Tags returned by the tagger. Punctuation tokens are tagged with their
// own surface form, Treebank style.
const (
	TagUH  = "UH"
	TagNN  = "NN"
	TagNNP = "NNP"
	TagVB  = "VB"
	TagVBG = "VBG"
	TagVBD = "VBD"
	TagRB  = "RB"
	TagDT  = "DT"
	TagIN  = "IN"
	TagPRP = "PRP"
	TagMD  = "MD"
	TagCC  = "CC"
	TagCD  = "CD"
)

// ErrUnavailable reports that the tagging capability cannot run. The
// pipeline switches to its fallback classifier on exactly this error.
var ErrUnavailable = errors.New("pos: tagger unavailable")

var (
	lexiconOnce    sync.Once
	builtinLexicon map[string]string
)

// Tagger tags token sequences using a read-only lexicon. Safe for
// concurrent use once constructed.
type Tagger struct {
	lexicon map[string]string
}

// New returns a tagger backed by the built-in lexicon.
func New() *Tagger {
	lexiconOnce.Do(buildBuiltinLexicon)
	lex := make(map[string]string, len(builtinLexicon))
	for k, v := range builtinLexicon {
		lex[k] = v
	}
	return &Tagger{lexicon: lex}
}

// Merge layers extra word->tag entries over the lexicon. Used to load a
// provisioned lexicon file on top of the built-in one.
func (t *Tagger) Merge(extra map[string]string) {
	for w, tag := range extra {
		t.lexicon[strings.ToLower(w)] = tag
	}
}

// Tag assigns a tag to every token, in order. It returns ErrUnavailable
// when the tagger has no lexicon to run with.
func (t *Tagger) Tag(tokens []string) ([]string, error) {
	if t == nil || len(t.lexicon) == 0 {
		return nil, ErrUnavailable
	}
	tags := make([]string, len(tokens))
	for i, tok := range tokens {
		tags[i] = t.tagOne(tok)
	}
	return tags, nil
}

func (t *Tagger) tagOne(tok string) string {
	if isPunct(tok) {
		return tok
	}
	if isNumeric(tok) {
		return TagCD
	}
	lower := strings.ToLower(tok)
	if tag, ok := t.lexicon[lower]; ok {
		return tag
	}
	switch {
	case strings.HasSuffix(lower, "ing"):
		return TagVBG
	case strings.HasSuffix(lower, "ed"):
		return TagVBD
	case strings.HasSuffix(lower, "ly"):
		return TagRB
	}
	if r := []rune(tok); len(r) > 0 && unicode.IsUpper(r[0]) {
		return TagNNP
	}
	return TagNN
}

func isPunct(tok string) bool {
	for _, r := range tok {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return tok != ""
}

func isNumeric(tok string) bool {
	seen := false
	for _, r := range tok {
		if unicode.IsDigit(r) {
			seen = true
			continue
		}
		if r != '.' && r != ',' {
			return false
		}
	}
	return seen
}

func buildBuiltinLexicon() {
	builtinLexicon = make(map[string]string, 256)
	add := func(tag string, words ...string) {
		for _, w := range words {
			builtinLexicon[w] = tag
		}
	}

	// Hesitation sounds and exclamations. This inventory is what makes
	// the primary filler rule fire.
	add(TagUH, "um", "umm", "uhm", "uh", "uhh", "hmm", "hm", "mm", "mhm",
		"ah", "aah", "er", "erm", "eh", "huh", "oh", "ooh", "ugh",
		"oops", "ouch", "wow", "hey", "psst", "shh", "whoa", "yikes")

	add(TagDT, "the", "a", "an", "this", "that", "these", "those", "some",
		"any", "no", "every", "each", "all", "both", "few", "many",
		"much", "most", "other", "another")

	add(TagIN, "in", "on", "at", "to", "for", "with", "by", "from", "of",
		"about", "into", "through", "during", "before", "after", "above",
		"below", "between", "under", "over", "against", "among", "around",
		"behind", "beside", "beyond", "near", "toward", "towards", "upon",
		"within", "without", "across", "along", "inside", "outside")

	add(TagPRP, "i", "you", "he", "she", "it", "we", "they", "me", "him",
		"her", "us", "them", "my", "your", "his", "its", "our", "their",
		"myself", "yourself", "himself", "herself", "itself", "ourselves",
		"themselves")

	add(TagMD, "can", "could", "will", "would", "shall", "should", "may",
		"might", "must")

	add(TagCC, "and", "or", "but", "nor", "yet", "so")

	add(TagVB, "is", "are", "was", "were", "be", "been", "being", "am",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"go", "went", "gone", "say", "said", "see", "saw", "seen",
		"know", "knew", "known", "think", "thought", "want", "need",
		"get", "got", "make", "made", "take", "took", "play", "stop",
		"call", "pause")

	add(TagRB, "very", "quite", "rather", "really", "too", "just", "only",
		"now", "then", "here", "there", "always", "never", "often",
		"sometimes", "still", "even", "not", "n't", "n’t")
}
