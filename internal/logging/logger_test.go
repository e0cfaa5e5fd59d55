package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"info", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"trace", LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{"Trace", LevelTrace},
		{"", slog.LevelInfo},
		{"warn", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("info", &buf)

	log.Debug("hidden")
	log.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("info message not logged")
	}
}

func TestNewLogger_TraceLabel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger("trace", &buf)

	log.Log(nil, LevelTrace, "deep detail")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("trace output missing TRACE label: %q", buf.String())
	}
}

func TestNewDecisionLogger_InfoLevelDisabled(t *testing.T) {
	dir := t.TempDir()

	dl := NewDecisionLogger(dir, "info")
	if dl != nil {
		t.Fatal("NewDecisionLogger(info) != nil, want nil")
	}

	// Nil receiver is safe.
	dl.Log(map[string]any{"event": "test"})
	dl.Close()

	if _, err := os.Stat(filepath.Join(dir, "decisions.jsonl")); !os.IsNotExist(err) {
		t.Error("decisions.jsonl created at info level")
	}
}

func TestDecisionLogger_WritesJSONL(t *testing.T) {
	dir := t.TempDir()

	dl := NewDecisionLogger(dir, "debug")
	if dl == nil {
		t.Fatal("NewDecisionLogger(debug) = nil")
	}

	event := map[string]any{
		"event":      "suggestion",
		"dimension":  "topics",
		"value":      "asd",
		"confidence": 0.81,
	}
	dl.Log(event)
	dl.Log(map[string]any{"event": "suggestion", "dimension": "complexity"})
	dl.Close()

	// Logging after Close is a no-op, not a crash.
	dl.Log(map[string]any{"event": "late"})

	f, err := os.Open(filepath.Join(dir, "decisions.jsonl"))
	if err != nil {
		t.Fatalf("opening decisions.jsonl: %v", err)
	}
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("line is not valid JSON: %v", err)
		}
		lines = append(lines, entry)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["dimension"] != "topics" || lines[0]["value"] != "asd" {
		t.Errorf("first entry = %v", lines[0])
	}
	if _, ok := lines[0]["time"]; !ok {
		t.Error("entry missing time field")
	}
	if _, ok := event["time"]; ok {
		t.Error("Log mutated the caller's map")
	}
}
