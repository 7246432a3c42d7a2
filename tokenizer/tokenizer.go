// Package tokenizer splits text into word-level tokens for tagging.
package tokenizer

import (
	"regexp"
	"strings"
)

// reToken matches a word (with optional internal apostrophes), a number, or
// a single punctuation character as its own token.
var reToken = regexp.MustCompile(`[\pL]+(?:['’][\pL]+)*|\pN+(?:[.,]\pN+)*|[^\s\pL\pN]`)

// Tokenize splits text into linguistic tokens: words, numbers, and
// punctuation as separate tokens. Contraction suffixes are detached from
// their host word ("don't" -> "do", "n't"; "I'm" -> "I", "'m") so the
// tagger sees the same token shapes a Treebank-style tokenizer produces.
func Tokenize(text string) []string {
	raw := reToken.FindAllString(text, -1)
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		out = append(out, splitContraction(tok)...)
	}
	return out
}

func splitContraction(tok string) []string {
	idx := strings.IndexAny(tok, "'’")
	if idx <= 0 || idx == len(tok)-1 {
		return []string{tok}
	}
	lower := strings.ToLower(tok)
	if strings.HasSuffix(lower, "n't") || strings.HasSuffix(lower, "n’t") {
		cut := len(tok) - len("n't")
		if strings.HasSuffix(lower, "n’t") {
			cut = len(tok) - len("n’t")
		}
		if cut > 0 {
			return []string{tok[:cut], tok[cut:]}
		}
		return []string{tok}
	}
	// "I'm" -> "I", "'m"; "they're" -> "they", "'re"
	return []string{tok[:idx], tok[idx:]}
}
