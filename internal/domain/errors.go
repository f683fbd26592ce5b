package domain

import "errors"

var (
	// Configuration errors
	ErrInputNotFound  = errors.New("input file not found")
	ErrFFmpegNotFound = errors.New("ffmpeg not found on PATH")

	// Engine errors
	ErrNoEngine      = errors.New("no transcription engine available")
	ErrModelNotFound = errors.New("model not downloaded")

	// Format errors
	ErrUnknownFormat = errors.New("unknown output format")
)
