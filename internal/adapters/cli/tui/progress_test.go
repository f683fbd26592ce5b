package tui

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{462 * 1024 * 1024, "462.0 MB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatBytes(tt.input); got != tt.expected {
				t.Errorf("formatBytes(%d) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestProgressDisplay_QuietSuppressesRender(t *testing.T) {
	pd := NewProgressDisplay([]string{"one", "two"}, true)

	// None of these should panic or print in quiet mode.
	pd.StartStep(0)
	pd.UpdateProgress(0, 50, 100)
	pd.CompleteStep(0)
	pd.FailStep(1, "boom")

	if pd.rendered {
		t.Error("quiet display should never mark itself rendered")
	}
}

func TestProgressDisplay_IgnoresOutOfRangeSteps(t *testing.T) {
	pd := NewProgressDisplay([]string{"only"}, true)

	pd.StartStep(-1)
	pd.StartStep(5)
	pd.CompleteStep(7)

	if pd.steps[0].status != StepPending {
		t.Errorf("step status = %v, want untouched StepPending", pd.steps[0].status)
	}
}
