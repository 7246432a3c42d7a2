// Package script corrects script-mismatch errors in transcribed text.
//
// Speech-to-text engines sometimes transcribe English command words in
// Devanagari even though the caller declared an English language context.
// The corrector rewrites those tokens to their Latin-script equivalents
// using a fixed whole-token lookup table.
package script

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// EnglishContext is the only language identifier that triggers correction.
const EnglishContext = "en-IN"

// trailingPunct covers Latin sentence punctuation plus the Devanagari danda.
const trailingPunct = ".,!?।"

// defaultWords maps Devanagari command-word transcriptions to the Latin
// forms the speaker intended.
var defaultWords = map[string]string{
	"स्टॉप":  "stop",
	"रुको":   "stop",
	"हेलो":   "hello",
	"हाय":    "hi",
	"ओके":    "ok",
	"ठीक":    "ok",
	"हैलो":   "hello",
	"गुडबाय": "goodbye",
	"बाय":    "bye",
	"येस":    "yes",
	"हां":    "yes",
	"नो":     "no",
	"नहीं":   "no",
	"नाम":    "name",
	"मेरा":   "my",
	"माय":    "my",
	"नेम":    "name",
	"इज़":    "is",
	"इज":     "is",
	"अ":      "a",
	"ऐ":      "a",
	"एन":     "an",
	"द":      "the",
	"व्हाट":  "what",
	"व्हेन":  "when",
	"व्हेर":  "where",
	"हाउ":    "how",
	"यू":     "you",
	"आर":     "are",
	"एम":     "am",
	"आई":     "i",
	"प्ले":   "play",
	"पॉज़":   "pause",
	"कॉल":    "call",
}

// Corrector holds the script correction table. It is read-only after
// construction and safe for concurrent use.
type Corrector struct {
	words map[string]string
}

// NewCorrector returns a corrector with the built-in command-word table.
func NewCorrector() *Corrector {
	return NewCorrectorWith(nil)
}

// NewCorrectorWith merges extra mappings over the built-in table.
func NewCorrectorWith(extra map[string]string) *Corrector {
	words := make(map[string]string, len(defaultWords)+len(extra))
	for k, v := range defaultWords {
		words[norm.NFC.String(k)] = v
	}
	for k, v := range extra {
		words[norm.NFC.String(k)] = v
	}
	return &Corrector{words: words}
}

// Normalize rewrites known non-Latin tokens when lang declares an English
// context. Lookup keys are whole tokens with trailing punctuation stripped;
// a matched token is replaced entirely by its mapped value. When nothing
// matches, the input is returned untouched so whitespace is not normalized
// as a side effect.
func (c *Corrector) Normalize(text, lang string) string {
	if lang != EnglishContext {
		return text
	}
	tokens := strings.Fields(text)
	replaced := false
	for i, tok := range tokens {
		key := strings.TrimRight(norm.NFC.String(tok), trailingPunct)
		if latin, ok := c.words[key]; ok {
			tokens[i] = latin
			replaced = true
		}
	}
	if !replaced {
		return text
	}
	return strings.Join(tokens, " ")
}
