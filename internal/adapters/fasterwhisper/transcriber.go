package fasterwhisper

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/lizergic/Transcribe-Tool/internal/domain"
	"github.com/lizergic/Transcribe-Tool/internal/ports"
)

//go:embed assets/faster_whisper.py
var helperScript []byte

// Transcriber runs the faster-whisper recognition library through an
// embedded python helper that prints JSON on stdout.
type Transcriber struct {
	python string
}

// NewTranscriber creates the adapter. pythonPath overrides the interpreter;
// empty picks the platform default.
func NewTranscriber(pythonPath string) *Transcriber {
	if pythonPath == "" {
		pythonPath = defaultPython()
	}
	return &Transcriber{python: pythonPath}
}

func defaultPython() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

func (t *Transcriber) Name() string { return "faster-whisper" }

// Available reports whether the interpreter exists and can import the
// faster_whisper package. This is the one-time startup check; a per-call
// failure later is fatal, not a trigger to switch engines.
func (t *Transcriber) Available() bool {
	if _, err := exec.LookPath(t.python); err != nil {
		return false
	}
	return exec.Command(t.python, "-c", "import faster_whisper").Run() == nil
}

// rawSegment is the helper's native row shape. This is the only place aware
// of it; mapping into domain.Segment renames fields and nothing else.
type rawSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type rawResult struct {
	Language string       `json:"language"`
	Duration float64      `json:"duration"`
	Segments []rawSegment `json:"segments"`
}

func (t *Transcriber) Transcribe(ctx context.Context, path string, opts ports.TranscribeOpts) (*domain.Transcript, error) {
	scriptPath := filepath.Join(os.TempDir(), "transcribe_faster_whisper.py")
	if err := os.WriteFile(scriptPath, helperScript, 0755); err != nil {
		return nil, fmt.Errorf("write helper script: %w", err)
	}
	defer os.Remove(scriptPath)

	model := opts.Model
	if model == "" {
		model = "small"
	}

	args := []string{scriptPath, "--audio", path, "--model", model}
	if opts.Language != "" {
		args = append(args, "--language", opts.Language)
	}

	cmd := exec.CommandContext(ctx, t.python, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("faster-whisper failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("run faster-whisper helper: %w", err)
	}

	return parseHelperOutput(out, model)
}

func parseHelperOutput(data []byte, model string) (*domain.Transcript, error) {
	var raw rawResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse faster-whisper output: %w", err)
	}

	segments := lo.Map(raw.Segments, func(s rawSegment, _ int) domain.Segment {
		return domain.Segment{Start: s.Start, End: s.End, Text: s.Text}
	})

	return &domain.Transcript{
		Segments:      segments,
		Model:         model,
		Language:      raw.Language,
		TranscribedAt: time.Now(),
	}, nil
}

var _ ports.Transcriber = (*Transcriber)(nil)
