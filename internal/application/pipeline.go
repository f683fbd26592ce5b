package application

import (
	"context"

	"github.com/lizergic/Transcribe-Tool/internal/domain"
	"github.com/lizergic/Transcribe-Tool/internal/format"
	"github.com/lizergic/Transcribe-Tool/internal/output"
	"github.com/lizergic/Transcribe-Tool/internal/ports"
)

// Options configures one transcription run.
type Options struct {
	Model    string
	Language string // empty for auto-detect
	Format   format.Format
	Output   string // empty derives from the input path
}

// Result is what one run produced.
type Result struct {
	OutputPath string
	Transcript *domain.Transcript
	Engine     string
}

// PipelineService is the single-pass pipeline: transcribe, format, write.
// The engine is resolved before construction and injected; the service
// never picks or swaps engines itself.
type PipelineService struct {
	transcriber ports.Transcriber
	writer      *output.Writer
}

// NewPipelineService wires the pipeline with a resolved engine and a writer.
func NewPipelineService(transcriber ports.Transcriber, writer *output.Writer) *PipelineService {
	return &PipelineService{
		transcriber: transcriber,
		writer:      writer,
	}
}

// Run transcribes inputPath and writes the formatted document. Errors
// propagate to the caller untouched; there is no retry and no partial
// output on failure before the write step.
func (s *PipelineService) Run(ctx context.Context, inputPath string, opts Options) (*Result, error) {
	transcript, err := s.transcriber.Transcribe(ctx, inputPath, ports.TranscribeOpts{
		Model:    opts.Model,
		Language: opts.Language,
	})
	if err != nil {
		return nil, err
	}

	doc, err := format.Render(opts.Format, transcript)
	if err != nil {
		return nil, err
	}

	outPath := opts.Output
	if outPath == "" {
		outPath = output.DerivePath(inputPath, opts.Format)
	}

	if err := s.writer.Write(outPath, doc); err != nil {
		return nil, err
	}

	return &Result{
		OutputPath: outPath,
		Transcript: transcript,
		Engine:     s.transcriber.Name(),
	}, nil
}
