package dimensions

import (
	"testing"
)

func TestEvidenceLevel_SuggestValues(t *testing.T) {
	d := NewEvidenceLevel()

	t.Run("study design mentions imply established", func(t *testing.T) {
		text := "A meta-analysis of randomized controlled trials confirms this is the established approach with strong evidence."
		got := d.SuggestValues(text, nil)
		if len(got) != 1 {
			t.Fatalf("got %d suggestions, want 1", len(got))
		}
		if got[0].Value != "established" {
			t.Errorf("value = %v, want established", got[0].Value)
		}
		if got[0].Confidence != evidenceConfidenceCap {
			t.Errorf("confidence = %v, want capped at %v", got[0].Confidence, evidenceConfidenceCap)
		}
	})

	t.Run("hedging density boosts emerging", func(t *testing.T) {
		text := "Preliminary pilot data may possibly suggest this might potentially help, though findings appear unclear."
		got := d.SuggestValues(text, nil)
		if len(got) != 1 {
			t.Fatalf("got %d suggestions, want 1", len(got))
		}
		if got[0].Value != "emerging" {
			t.Errorf("value = %v, want emerging", got[0].Value)
		}
		if got[0].Evidence.UncertaintyCount <= hedgingThreshold {
			t.Errorf("uncertainty count = %d, want > %d", got[0].Evidence.UncertaintyCount, hedgingThreshold)
		}
	})

	t.Run("conflicting results read as controversial", func(t *testing.T) {
		text := "An ongoing debate: conflicting results and mixed evidence keep this controversial topic contested."
		got := d.SuggestValues(text, nil)
		if len(got) != 1 || got[0].Value != "controversial" {
			t.Errorf("got %v, want single controversial suggestion", got)
		}
	})

	t.Run("no indicators yields nothing", func(t *testing.T) {
		if got := d.SuggestValues("zebra quince umbrella corridors.", nil); len(got) != 0 {
			t.Errorf("SuggestValues() = %v, want empty", got)
		}
	})
}

func TestEvidenceLevel_ValidateValue(t *testing.T) {
	d := NewEvidenceLevel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"known level", "emerging", true},
		{"another known level", "controversial", true},
		{"unknown level", "speculative", false},
		{"nil", nil, false},
		{"number", 2, false},
		{"list", []string{"emerging"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.ValidateValue(tt.value); got != tt.want {
				t.Errorf("ValidateValue(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestEvidenceLevel_DisplayValue(t *testing.T) {
	d := NewEvidenceLevel()

	if got := d.DisplayValue("established"); got != "Established - Well-validated with strong evidence base" {
		t.Errorf("DisplayValue(established) = %q", got)
	}
	if got := d.DisplayValue("mystery"); got != "mystery" {
		t.Errorf("DisplayValue(unknown) = %q, want raw id", got)
	}
}

func TestEvidenceLevel_Similarity(t *testing.T) {
	d := NewEvidenceLevel()

	if got := d.Similarity("emerging", "emerging"); got != 1.0 {
		t.Errorf("Similarity(equal) = %v, want 1.0", got)
	}
	if got := d.Similarity("emerging", "established"); got != 0.0 {
		t.Errorf("Similarity(different) = %v, want 0.0", got)
	}
}
