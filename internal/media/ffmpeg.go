package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/lizergic/Transcribe-Tool/internal/domain"
)

// FFmpegPath returns the resolved ffmpeg path, or empty when not installed.
func FFmpegPath() string {
	path, err := exec.LookPath("ffmpeg")
	if err != nil {
		return ""
	}
	return path
}

// CheckFFmpeg verifies ffmpeg is on PATH. Its absence is a configuration
// error, not something the pipeline recovers from.
func CheckFFmpeg() error {
	if FFmpegPath() == "" {
		return fmt.Errorf("%w\n%s", domain.ErrFFmpegNotFound, FFmpegInstructions())
	}
	return nil
}

// FFmpegInstructions returns platform install hints shown with the fatal
// missing-ffmpeg error.
func FFmpegInstructions() string {
	return strings.Join([]string{
		"Install ffmpeg, then re-run:",
		"  macOS:   brew install ffmpeg",
		"  Debian:  sudo apt install ffmpeg",
		"  Windows: winget install --id Gyan.FFmpeg -e",
		"Verify with: ffmpeg -version",
	}, "\n")
}

// ExtractAudio decodes the media file into a 16 kHz mono WAV under tmpDir,
// the input shape whisper.cpp expects. Returns the extracted file's path.
func ExtractAudio(ctx context.Context, mediaPath, tmpDir string) (string, error) {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	base := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	out := filepath.Join(tmpDir, base+"_16k.wav")

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y", "-i", mediaPath,
		"-ac", "1", "-ar", "16000",
		"-f", "wav",
		out,
	)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ffmpeg audio extraction: %w", err)
	}
	return out, nil
}
