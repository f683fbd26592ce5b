package domain

import (
	"encoding/json"
	"testing"
)

func TestSegment_JSONFieldNames(t *testing.T) {
	// Downstream consumers parse these exact keys; they must never drift.
	data, err := json.Marshal(Segment{Start: 1.5, End: 2.5, Text: "hi"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{"start", "end", "text"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("serialized segment missing %q field: %s", key, data)
		}
	}
	if len(raw) != 3 {
		t.Errorf("serialized segment has extra fields: %s", data)
	}
}
