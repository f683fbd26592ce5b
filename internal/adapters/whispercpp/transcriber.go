package whispercpp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/lizergic/Transcribe-Tool/internal/config"
	"github.com/lizergic/Transcribe-Tool/internal/domain"
	"github.com/lizergic/Transcribe-Tool/internal/media"
	"github.com/lizergic/Transcribe-Tool/internal/ports"
)

// Transcriber runs the whisper.cpp binary. Used when the faster-whisper
// helper is unavailable at startup.
type Transcriber struct {
	modelsDir string
	binPath   string // explicit override from config; empty means discover
}

// NewTranscriber creates the adapter. Empty modelsDir uses the app default.
func NewTranscriber(modelsDir, binPath string) *Transcriber {
	if modelsDir == "" {
		modelsDir = config.ModelsDir()
	}
	return &Transcriber{modelsDir: modelsDir, binPath: binPath}
}

func (t *Transcriber) Name() string { return "whisper.cpp" }

func (t *Transcriber) Available() bool {
	return t.findBinary() != ""
}

// InstallationInstructions returns the hint shown when neither engine is
// usable.
func InstallationInstructions() string {
	return strings.Join([]string{
		"No transcription engine found. Install one of:",
		"  faster-whisper:  pip install faster-whisper",
		"  whisper.cpp:     brew install whisper-cpp (or build from source)",
	}, "\n")
}

func (t *Transcriber) Transcribe(ctx context.Context, path string, opts ports.TranscribeOpts) (*domain.Transcript, error) {
	model := opts.Model
	if model == "" {
		model = "small"
	}

	if !t.IsModelDownloaded(model) {
		return nil, fmt.Errorf("%w: %s (run 'transcribe models download %s')",
			domain.ErrModelNotFound, model, model)
	}

	bin := t.findBinary()
	if bin == "" {
		return nil, fmt.Errorf("whisper.cpp binary not found: %w", domain.ErrNoEngine)
	}

	// whisper.cpp wants 16 kHz mono WAV; decode first.
	wavPath, err := media.ExtractAudio(ctx, path, "")
	if err != nil {
		return nil, err
	}
	defer os.Remove(wavPath)

	outputBase := filepath.Join(os.TempDir(), fmt.Sprintf("transcribe_%d", time.Now().UnixNano()))

	args := []string{
		"-m", t.modelPath(model),
		"-f", wavPath,
		"-of", outputBase,
		"-oj",
	}
	if opts.Language != "" {
		args = append(args, "-l", opts.Language)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("whisper.cpp failed: %w", err)
	}

	jsonPath := outputBase + ".json"
	defer os.Remove(jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper.cpp output: %w", err)
	}
	return parseOutput(data, model, opts.Language)
}

func (t *Transcriber) findBinary() string {
	if t.binPath != "" {
		if _, err := os.Stat(t.binPath); err == nil {
			return t.binPath
		}
		return ""
	}

	names := []string{"whisper", "whisper-cpp", "whisper-cli", "main"}
	if runtime.GOOS == "windows" {
		for i, n := range names {
			names[i] = n + ".exe"
		}
	}

	for _, name := range names {
		bundled := filepath.Join(config.BinDir(), name)
		if _, err := os.Stat(bundled); err == nil {
			return bundled
		}
	}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// parseOutput maps whisper.cpp's -oj sidecar into the domain transcript.
// The sidecar carries string timestamps ("HH:MM:SS,mmm"); this boundary
// converts them to seconds and does nothing else.
func parseOutput(data []byte, model, language string) (*domain.Transcript, error) {
	var output struct {
		Result struct {
			Language string `json:"language"`
		} `json:"result"`
		Transcription []struct {
			Timestamps struct {
				From string `json:"from"`
				To   string `json:"to"`
			} `json:"timestamps"`
			Text string `json:"text"`
		} `json:"transcription"`
	}

	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse whisper.cpp output: %w", err)
	}

	segments := make([]domain.Segment, 0, len(output.Transcription))
	for _, item := range output.Transcription {
		segments = append(segments, domain.Segment{
			Start: parseTimestamp(item.Timestamps.From),
			End:   parseTimestamp(item.Timestamps.To),
			Text:  item.Text,
		})
	}

	lang := output.Result.Language
	if lang == "" {
		lang = language
	}

	return &domain.Transcript{
		Segments:      segments,
		Model:         model,
		Language:      lang,
		TranscribedAt: time.Now(),
	}, nil
}

var timestampRegex = regexp.MustCompile(`(\d+):(\d+):(\d+)[,.](\d+)`)

func parseTimestamp(ts string) float64 {
	matches := timestampRegex.FindStringSubmatch(ts)
	if len(matches) != 5 {
		return 0
	}

	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	seconds, _ := strconv.Atoi(matches[3])
	millis, _ := strconv.Atoi(matches[4])

	return float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000
}

var _ ports.Transcriber = (*Transcriber)(nil)
var _ ports.ModelManager = (*Transcriber)(nil)
