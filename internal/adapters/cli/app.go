package cli

import (
	"github.com/lizergic/Transcribe-Tool/internal/adapters/fasterwhisper"
	"github.com/lizergic/Transcribe-Tool/internal/adapters/whispercpp"
	"github.com/lizergic/Transcribe-Tool/internal/config"
	"github.com/lizergic/Transcribe-Tool/internal/output"
)

// App holds all application dependencies
type App struct {
	Config        *config.Config
	FasterWhisper *fasterwhisper.Transcriber
	WhisperCpp    *whispercpp.Transcriber
	Writer        *output.Writer
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	return &App{
		Config:        cfg,
		FasterWhisper: fasterwhisper.NewTranscriber(cfg.Paths.Python),
		WhisperCpp:    whispercpp.NewTranscriber("", cfg.Paths.WhisperCpp),
		Writer:        output.NewWriter(),
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
