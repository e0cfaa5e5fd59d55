package classify

import (
	"errors"
	"reflect"
	"testing"

	"github.com/raybunnage/prestag/internal/dimensions"
	"github.com/raybunnage/prestag/internal/models"
)

func TestEngine_Classify(t *testing.T) {
	e := NewEngine(dimensions.NewRegistry())

	text := "A meta-analysis of autism biomarkers: clinical treatment protocols for children, " +
		"with mitochondrial metabolism research findings presented in a hands-on workshop."
	got := e.Classify(text, nil)

	names := e.Registry().Names()
	if len(got) != len(names) {
		t.Fatalf("Classify() returned %d dimensions, want %d", len(got), len(names))
	}
	for _, name := range names {
		if _, ok := got[name]; !ok {
			t.Errorf("Classify() missing dimension %q", name)
		}
	}

	if len(got["topics"]) == 0 {
		t.Error("topics produced no suggestions for topical text")
	}
	if len(got["complexity"]) == 0 {
		t.Error("complexity produced no suggestions")
	}
}

func TestEngine_Classify_Deterministic(t *testing.T) {
	e := NewEngine(dimensions.NewRegistry())
	text := "Preliminary pilot findings on mitochondrial metabolism in pediatric patients."

	first := e.Classify(text, nil)
	second := e.Classify(text, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify() not deterministic:\n%v\n%v", first, second)
	}
}

func TestEngine_ClassifyDimensions(t *testing.T) {
	e := NewEngine(dimensions.NewRegistry())
	text := "Clinical treatment protocols for autism in children."

	t.Run("subset evaluated", func(t *testing.T) {
		got, err := e.ClassifyDimensions(text, nil, []string{"topics", "complexity"})
		if err != nil {
			t.Fatalf("ClassifyDimensions() error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("got %d dimensions, want 2", len(got))
		}
		for _, name := range []string{"topics", "complexity"} {
			if _, ok := got[name]; !ok {
				t.Errorf("missing dimension %q", name)
			}
		}
	})

	t.Run("unknown name fails before evaluation", func(t *testing.T) {
		got, err := e.ClassifyDimensions(text, nil, []string{"topics", "flavor"})
		if err == nil {
			t.Fatal("ClassifyDimensions() error = nil, want error")
		}
		if !errors.Is(err, dimensions.ErrUnknownDimension) {
			t.Errorf("error = %v, want ErrUnknownDimension", err)
		}
		if got != nil {
			t.Errorf("result = %v, want nil on error", got)
		}
	})

	t.Run("empty name list yields empty result", func(t *testing.T) {
		got, err := e.ClassifyDimensions(text, nil, nil)
		if err != nil {
			t.Fatalf("ClassifyDimensions() error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %v, want empty map", got)
		}
	})
}

func TestEngine_Passthroughs(t *testing.T) {
	e := NewEngine(dimensions.NewRegistry())

	ok, err := e.Validate("evidence_level", "established")
	if err != nil || !ok {
		t.Errorf("Validate(evidence_level, established) = %v, %v, want true, nil", ok, err)
	}

	display, err := e.Display("temporal_relevance", "current")
	if err != nil || display != "Current Standard" {
		t.Errorf("Display(temporal_relevance, current) = %q, %v", display, err)
	}

	score, err := e.Similarity("topics", "asd", "cfs")
	if err != nil || score != 0.75 {
		t.Errorf("Similarity(topics, asd, cfs) = %v, %v", score, err)
	}

	for _, call := range []func() error{
		func() error { _, err := e.Validate("flavor", 1); return err },
		func() error { _, err := e.Display("flavor", 1); return err },
		func() error { _, err := e.Similarity("flavor", 1, 2); return err },
	} {
		if err := call(); !errors.Is(err, dimensions.ErrUnknownDimension) {
			t.Errorf("unknown dimension error = %v, want ErrUnknownDimension", err)
		}
	}
}

func TestEngine_ContextReachesDimensions(t *testing.T) {
	e := NewEngine(dimensions.NewRegistry())

	// Text with no application cues plus MD credentials triggers the
	// credential fallback, which only fires when the context is passed through.
	got := e.Classify("zebra quince umbrella corridors.", models.Context{"presenter_title": "MD"})
	values := got["application_context"]
	if len(values) != 1 || values[0].Value != "clinical-practice" || values[0].Source != models.SourceRule {
		t.Errorf("application_context = %v, want credential fallback", values)
	}
}
