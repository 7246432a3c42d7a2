// Package filler labels transcript tokens as filler or content.
//
// Two heuristics apply, in both the tag-aware and the fallback route:
// a token is filler when its grammatical category is the interjection
// tag, or when it immediately repeats the previous content word. State
// advances only on content tokens, so "go go go" compares every repeat
// against the first "go".
package filler

import (
	"strings"
	"unicode"

	"transclean/pos"
)

// Token is a classified surface token. Classification never drops or
// reorders tokens; dropping happens at reconstruction.
type Token struct {
	Surface string
	Filler  bool
}

// fallbackVocab is the fixed hesitation inventory used when no tagger is
// available.
var fallbackVocab = map[string]struct{}{
	"um":  {},
	"uh":  {},
	"hmm": {},
	"ah":  {},
	"er":  {},
}

// fallbackPunct is stripped from the comparison key in the fallback
// route. Only the key is stripped; emitted surfaces keep punctuation.
const fallbackPunct = ",.!?"

// Classify labels tagged tokens. words and tags run in parallel; tags is
// produced by the pos package for the same token slice.
func Classify(words, tags []string) []Token {
	out := make([]Token, 0, len(words))
	lastContent := ""
	for i, word := range words {
		term := strings.ToLower(word)
		isFiller := tags[i] == pos.TagUH ||
			(lastContent != "" && term == lastContent && isAlpha(term))
		out = append(out, Token{Surface: word, Filler: isFiller})
		if !isFiller {
			lastContent = term
		}
	}
	return out
}

// ClassifyFallback labels whitespace-split tokens using the fixed
// vocabulary. It accepts any input and cannot fail.
func ClassifyFallback(text string) []Token {
	words := strings.Fields(text)
	out := make([]Token, 0, len(words))
	lastContent := ""
	for _, word := range words {
		key := strings.TrimRight(strings.ToLower(word), fallbackPunct)
		_, inVocab := fallbackVocab[key]
		isFiller := inVocab ||
			(lastContent != "" && key == lastContent && isAlpha(key))
		out = append(out, Token{Surface: word, Filler: isFiller})
		if !isFiller {
			lastContent = key
		}
	}
	return out
}

// Split partitions classified tokens into surviving content surfaces and
// detected filler surfaces, both in original order.
func Split(tokens []Token) (content, fillers []string) {
	for _, tok := range tokens {
		if tok.Filler {
			fillers = append(fillers, tok.Surface)
		} else {
			content = append(content, tok.Surface)
		}
	}
	return content, fillers
}

// isAlpha reports whether s is non-empty and entirely letters. Pure
// punctuation or numeric repeats never count as repetition fillers.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
