package fasterwhisper

import (
	"testing"
)

func TestParseHelperOutput(t *testing.T) {
	data := []byte(`{
		"language": "en",
		"duration": 3.0,
		"segments": [
			{"start": 0.0, "end": 1.2, "text": " hello"},
			{"start": 1.2, "end": 3.0, "text": " world "}
		]
	}`)

	tr, err := parseHelperOutput(data, "small")
	if err != nil {
		t.Fatalf("parseHelperOutput() error = %v", err)
	}

	if tr.Language != "en" {
		t.Errorf("Language = %q, want en", tr.Language)
	}
	if tr.Model != "small" {
		t.Errorf("Model = %q, want small", tr.Model)
	}
	if len(tr.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(tr.Segments))
	}
	// Normalization only renames fields; engine whitespace survives for the
	// formatters to trim.
	if tr.Segments[0].Text != " hello" {
		t.Errorf("segment text = %q, want %q", tr.Segments[0].Text, " hello")
	}
	if tr.Segments[1].Start != 1.2 || tr.Segments[1].End != 3.0 {
		t.Errorf("segment timing = %v-%v, want 1.2-3.0", tr.Segments[1].Start, tr.Segments[1].End)
	}
}

func TestParseHelperOutput_Empty(t *testing.T) {
	tr, err := parseHelperOutput([]byte(`{"language": "en", "segments": []}`), "tiny")
	if err != nil {
		t.Fatalf("parseHelperOutput() error = %v", err)
	}
	if len(tr.Segments) != 0 {
		t.Errorf("got %d segments, want 0", len(tr.Segments))
	}
}

func TestParseHelperOutput_Invalid(t *testing.T) {
	if _, err := parseHelperOutput([]byte("not json"), "small"); err == nil {
		t.Error("expected error for invalid helper output")
	}
}

func TestDefaultPython(t *testing.T) {
	if defaultPython() == "" {
		t.Error("defaultPython() should never be empty")
	}
}

func TestName(t *testing.T) {
	if NewTranscriber("").Name() != "faster-whisper" {
		t.Error("engine name changed; status output depends on it")
	}
}
