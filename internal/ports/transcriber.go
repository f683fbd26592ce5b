package ports

import (
	"context"

	"github.com/lizergic/Transcribe-Tool/internal/domain"
)

// Model describes one whisper model preset.
type Model struct {
	Name        string
	Size        int64 // bytes, approximate
	Description string
	Downloaded  bool
}

// TranscribeOpts configures a transcription run.
type TranscribeOpts struct {
	Model    string
	Language string // empty for auto-detect
}

// Transcriber converts one media file into a transcript. Implementations
// wrap a concrete recognition engine; everything downstream sees only the
// normalized domain.Transcript.
type Transcriber interface {
	// Name identifies the engine for status output and error messages.
	Name() string

	// Available reports whether the engine can run on this machine.
	// Checked once at startup; engines are never swapped per call.
	Available() bool

	// Transcribe runs recognition on the media file at path.
	Transcribe(ctx context.Context, path string, opts TranscribeOpts) (*domain.Transcript, error)
}

// ModelManager is implemented by engines that keep a local model store.
type ModelManager interface {
	AvailableModels() []Model
	IsModelDownloaded(model string) bool
	DownloadModel(ctx context.Context, model string, progress func(downloaded, total int64)) error
	DeleteModel(model string) error
}
