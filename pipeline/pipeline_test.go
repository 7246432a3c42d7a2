package pipeline

import (
	"errors"
	"reflect"
	"testing"

	"transclean/pos"
	"transclean/script"
)

// unavailableTagger simulates a tagging engine whose resources are gone.
type unavailableTagger struct{}

func (unavailableTagger) Tag([]string) ([]string, error) {
	return nil, pos.ErrUnavailable
}

// brokenTagger fails with an unrelated error, which must not be masked
// as "tagging failed".
type brokenTagger struct{}

func (brokenTagger) Tag([]string) ([]string, error) {
	return nil, errors.New("index out of range")
}

func newPipeline(tagger Tagger) *Pipeline {
	return New(script.NewCorrector(), tagger, nil)
}

func TestProcess_RemovesInterjections(t *testing.T) {
	p := newPipeline(pos.New())

	res, err := p.Process(Request{Text: "um I think uh so", Language: "en-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.ProcessedText != "I think so" {
		t.Errorf("processed = %q, want %q", res.ProcessedText, "I think so")
	}
	if !reflect.DeepEqual(res.Fillers, []string{"um", "uh"}) {
		t.Errorf("fillers = %v, want [um uh]", res.Fillers)
	}
}

func TestProcess_RemovesRepetition(t *testing.T) {
	p := newPipeline(pos.New())

	res, err := p.Process(Request{Text: "the the cat", Language: "en-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.ProcessedText != "the cat" {
		t.Errorf("processed = %q, want %q", res.ProcessedText, "the cat")
	}
	if !reflect.DeepEqual(res.Fillers, []string{"the"}) {
		t.Errorf("fillers = %v, want [the]", res.Fillers)
	}
}

func TestProcess_Idempotent(t *testing.T) {
	p := newPipeline(pos.New())

	clean := "I think we should go now"
	res, err := p.Process(Request{Text: clean, Language: "en-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.ProcessedText != clean {
		t.Errorf("first pass changed clean text: %q", res.ProcessedText)
	}
	res2, err := p.Process(Request{Text: res.ProcessedText, Language: "en-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("second Process returned error: %v", err)
	}
	if res2.ProcessedText != clean {
		t.Errorf("second pass changed text: %q", res2.ProcessedText)
	}
}

func TestProcess_NumericRepeatsKept(t *testing.T) {
	p := newPipeline(pos.New())

	res, err := p.Process(Request{Text: "5 5 is five", Language: "en-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(res.Fillers) != 0 {
		t.Errorf("fillers = %v, want none", res.Fillers)
	}
}

func TestProcess_ScriptCorrectionGatedByLanguage(t *testing.T) {
	p := newPipeline(pos.New())

	res, err := p.Process(Request{Text: "स्टॉप", Language: "en-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.OriginalText != "stop" {
		t.Errorf("normalized = %q, want %q", res.OriginalText, "stop")
	}

	res, err = p.Process(Request{Text: "स्टॉप", Language: "hi-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.OriginalText != "स्टॉप" {
		t.Errorf("normalized = %q, want input unchanged", res.OriginalText)
	}
}

func TestProcess_PreserveReturnsNormalizedVerbatim(t *testing.T) {
	p := newPipeline(pos.New())

	res, err := p.Process(Request{Text: "um the the cat", Language: "en-IN", Action: ActionPreserve})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.ProcessedText != "um the the cat" {
		t.Errorf("processed = %q, want input verbatim", res.ProcessedText)
	}
	// Classification still runs even though its output is not applied.
	if !reflect.DeepEqual(res.Fillers, []string{"um", "the"}) {
		t.Errorf("fillers = %v, want [um the]", res.Fillers)
	}
}

func TestProcess_MarkMatchesRemove(t *testing.T) {
	p := newPipeline(pos.New())

	rm, err := p.Process(Request{Text: "um stop", Language: "en-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	mk, err := p.Process(Request{Text: "um stop", Language: "en-IN", Action: ActionMark})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if rm.ProcessedText != mk.ProcessedText {
		t.Errorf("mark %q != remove %q", mk.ProcessedText, rm.ProcessedText)
	}
}

func TestProcess_FallbackWhenTaggingUnavailable(t *testing.T) {
	p := newPipeline(unavailableTagger{})

	res, err := p.Process(Request{Text: "uh hmm test", Language: "en-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.ProcessedText != "test" {
		t.Errorf("processed = %q, want %q", res.ProcessedText, "test")
	}
	if !reflect.DeepEqual(res.Fillers, []string{"uh", "hmm"}) {
		t.Errorf("fillers = %v, want [uh hmm]", res.Fillers)
	}
}

func TestProcess_NilTaggerUsesFallback(t *testing.T) {
	p := newPipeline(nil)

	res, err := p.Process(Request{Text: "um stop stop", Language: "en-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.ProcessedText != "stop" {
		t.Errorf("processed = %q, want %q", res.ProcessedText, "stop")
	}
}

func TestProcess_UnrelatedTaggerErrorSurfaces(t *testing.T) {
	p := newPipeline(brokenTagger{})

	if _, err := p.Process(Request{Text: "um stop", Language: "en-IN", Action: ActionRemove}); err == nil {
		t.Error("unrelated tagger error was swallowed")
	}
}

func TestProcess_UnknownActionRejected(t *testing.T) {
	p := newPipeline(pos.New())

	if _, err := p.Process(Request{Text: "hi", Language: "en-IN", Action: "shout"}); err == nil {
		t.Error("unknown action accepted")
	}
}

func TestProcess_PunctuationSpacing(t *testing.T) {
	p := newPipeline(pos.New())

	res, err := p.Process(Request{Text: "um well, I don't know.", Language: "en-IN", Action: ActionRemove})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.ProcessedText != "well, I don't know." {
		t.Errorf("processed = %q, want %q", res.ProcessedText, "well, I don't know.")
	}
}
