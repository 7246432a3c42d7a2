// Package pipeline sequences transcript cleaning: script normalization,
// tagging and classification, then reconstruction. When the tagging
// capability reports itself unavailable the pipeline substitutes a
// self-contained fallback classifier once; there are no retries.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"transclean/filler"
	"transclean/pos"
	"transclean/script"
	"transclean/tokenizer"
)

// Action selects what happens to detected fillers.
type Action string

const (
	// ActionRemove strips fillers from the output text.
	ActionRemove Action = "remove"
	// ActionMark behaves as a synonym of remove. The original design
	// never annotated filler positions; see DESIGN.md.
	ActionMark Action = "mark"
	// ActionPreserve returns the normalized text untouched while still
	// reporting detected fillers.
	ActionPreserve Action = "preserve"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionRemove, ActionMark, ActionPreserve:
		return true
	}
	return false
}

// Tagger is the part-of-speech capability the primary route needs. Tag
// returns pos.ErrUnavailable when the capability cannot run; only that
// error triggers the fallback route.
type Tagger interface {
	Tag(tokens []string) ([]string, error)
}

// Request carries one cleaning call. Ephemeral; nothing outlives Process.
type Request struct {
	Text     string
	Language string
	Action   Action
}

// Result is the cleaned output.
type Result struct {
	ProcessedText string
	Fillers       []string
	OriginalText  string
}

// Pipeline wires the corrector and tagger together. Both are read-only
// after construction, so one Pipeline serves concurrent requests.
type Pipeline struct {
	corrector *script.Corrector
	tagger    Tagger
	log       *zap.Logger
}

// New builds a pipeline. tagger may be nil when resource provisioning
// failed; every request then takes the fallback route.
func New(corrector *script.Corrector, tagger Tagger, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{corrector: corrector, tagger: tagger, log: log}
}

// Process runs one request through the pipeline.
func (p *Pipeline) Process(req Request) (Result, error) {
	normalized := p.corrector.Normalize(req.Text, req.Language)

	content, fillers, err := p.classify(normalized)
	if err != nil {
		return Result{}, err
	}

	var processed string
	switch req.Action {
	case ActionPreserve:
		processed = normalized
	case ActionRemove, ActionMark:
		processed = content
	default:
		return Result{}, fmt.Errorf("unknown action %q", req.Action)
	}

	if len(fillers) > 0 {
		p.log.Info("detected fillers", zap.Strings("fillers", fillers))
	}
	return Result{
		ProcessedText: processed,
		Fillers:       fillers,
		OriginalText:  normalized,
	}, nil
}

// classify runs the primary tagging route and falls back to the
// vocabulary classifier when tagging is unavailable.
func (p *Pipeline) classify(text string) (content string, fillers []string, err error) {
	if p.tagger != nil {
		words := tokenizer.Tokenize(text)
		tags, tagErr := p.tagger.Tag(words)
		if tagErr == nil {
			kept, found := filler.Split(filler.Classify(words, tags))
			return filler.Detokenize(kept), found, nil
		}
		if !errors.Is(tagErr, pos.ErrUnavailable) {
			return "", nil, tagErr
		}
		p.log.Warn("tagging unavailable, using fallback classifier", zap.Error(tagErr))
	}
	kept, found := filler.Split(filler.ClassifyFallback(text))
	return strings.Join(kept, " "), found, nil
}
