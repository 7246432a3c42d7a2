package filler

import "strings"

const (
	glueLeft  = ".,:;!?)]}%"
	glueRight = "([{"
)

// Detokenize joins tokens back into readable text without an extra space
// before punctuation, and reattaches contraction fragments ("'m", "n't")
// to their host word.
func Detokenize(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && !gluesLeft(tok) && !gluesRight(tokens[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

func gluesLeft(tok string) bool {
	if tok == "" {
		return false
	}
	if len(tok) == 1 && strings.Contains(glueLeft, tok) {
		return true
	}
	// Sentence-final runs like "!?" or "...".
	if strings.Trim(tok, glueLeft) == "" {
		return true
	}
	// Contraction fragments: "'m", "'re", "’s", "n't".
	if tok[0] == '\'' || strings.HasPrefix(tok, "’") {
		return true
	}
	lower := strings.ToLower(tok)
	return lower == "n't" || lower == "n’t"
}

func gluesRight(tok string) bool {
	return len(tok) == 1 && strings.Contains(glueRight, tok)
}
