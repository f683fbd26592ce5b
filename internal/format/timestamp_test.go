package format

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		sep     byte
		want    string
	}{
		{"zero", 0, ',', "00:00:00,000"},
		{"subsecond", 0.5, ',', "00:00:00,500"},
		{"hour boundary", 3661.5, ',', "01:01:01,500"},
		{"hour boundary vtt", 3661.5, '.', "01:01:01.500"},
		// 0.0625 is exact in binary; its 62.5ms fraction pins the
		// half-up rounding mode deterministically.
		{"millis round half up", 0.0625, ',', "00:00:00,063"},
		{"millis round down", 1.2344, ',', "00:00:01,234"},
		{"millis round up", 1.2346, ',', "00:00:01,235"},
		{"carry into seconds", 1.99951, ',', "00:00:02,000"},
		{"negative clamps to zero", -5.0, ',', "00:00:00,000"},
		{"hours widen past two digits", 100*3600 + 1, ',', "100:00:01,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatTimestamp(tt.seconds, tt.sep)
			if got != tt.want {
				t.Errorf("formatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}
