package dimensions

import (
	"testing"

	"github.com/raybunnage/prestag/internal/models"
)

func TestTopics_SuggestValues(t *testing.T) {
	d := NewTopics()

	t.Run("autism content ranks asd first", func(t *testing.T) {
		text := "This presentation covers autism spectrum disorder biomarkers in children."
		got := d.SuggestValues(text, nil)
		if len(got) == 0 {
			t.Fatal("SuggestValues() returned no suggestions")
		}
		if got[0].Value != "asd" {
			t.Errorf("top suggestion = %v, want asd", got[0].Value)
		}
		if got[0].Source != models.SourceNLP {
			t.Errorf("source = %v, want nlp", got[0].Source)
		}
		if got[0].Confidence <= 0 || got[0].Confidence > 0.9 {
			t.Errorf("confidence = %v, want in (0, 0.9]", got[0].Confidence)
		}
		if len(got[0].Evidence.Path) == 0 {
			t.Error("top suggestion has no evidence path")
		}

		found := false
		for _, v := range got {
			if v.Value == "asd-biomarkers" {
				found = true
			}
		}
		if !found {
			t.Errorf("suggestions %v missing asd-biomarkers", got)
		}
	})

	t.Run("stem variants match without exact keyword", func(t *testing.T) {
		text := "Mitochondria and their role in cellular energy."
		got := d.SuggestValues(text, nil)
		found := false
		for _, v := range got {
			if v.Value == "mitochondrial" {
				found = true
			}
		}
		if !found {
			t.Errorf("suggestions %v missing mitochondrial", got)
		}
	})

	t.Run("unrelated text yields nothing", func(t *testing.T) {
		if got := d.SuggestValues("The quarterly budget review meeting went long.", nil); len(got) != 0 {
			t.Errorf("SuggestValues() = %v, want empty", got)
		}
	})

	t.Run("suggestions capped", func(t *testing.T) {
		text := "autism mitochondria metabolism oxidative stress chronic fatigue biomarkers " +
			"cell danger response diagnosis treatment neurological spectrum disorder"
		got := d.SuggestValues(text, nil)
		if len(got) > maxTopicSuggestions {
			t.Errorf("got %d suggestions, want at most %d", len(got), maxTopicSuggestions)
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		text := "autism biomarkers and mitochondrial metabolism in chronic fatigue"
		first := d.SuggestValues(text, nil)
		second := d.SuggestValues(text, nil)
		if len(first) != len(second) {
			t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].Value != second[i].Value || first[i].Confidence != second[i].Confidence {
				t.Errorf("suggestion %d differs: %v vs %v", i, first[i], second[i])
			}
		}
	})
}

func TestTopics_ValidateValue(t *testing.T) {
	d := NewTopics()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"known node id", "asd", true},
		{"unknown node id", "quantum", false},
		{"valid path", []string{"Clinical Domains", "Neurological Conditions"}, true},
		{"invalid path", []string{"Clinical Domains", "Quantum Fields"}, false},
		{"json-decoded path", []any{"Clinical Domains", "Metabolic Disorders"}, true},
		{"nil", nil, false},
		{"number", 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.ValidateValue(tt.value); got != tt.want {
				t.Errorf("ValidateValue(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestTopics_DisplayValue(t *testing.T) {
	d := NewTopics()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"node id renders as name", "asd", "Autism Spectrum Disorders"},
		{"unknown id passes through", "mystery", "mystery"},
		{"path renders as chain", []string{"Clinical Domains", "Neurological Conditions"}, "Clinical Domains > Neurological Conditions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.DisplayValue(tt.value); got != tt.want {
				t.Errorf("DisplayValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestTopics_Similarity(t *testing.T) {
	d := NewTopics()

	if got := d.Similarity("asd", "asd"); got != 1.0 {
		t.Errorf("Similarity(asd, asd) = %v, want 1.0", got)
	}
	if got := d.Similarity("asd", "cfs"); got != 0.75 {
		t.Errorf("Similarity(asd, cfs) = %v, want 0.75", got)
	}
	if got := d.Similarity(3, "asd"); got != 0.0 {
		t.Errorf("Similarity(3, asd) = %v, want 0.0", got)
	}
}
