package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lizergic/Transcribe-Tool/internal/media"
)

// NewDepsCmd creates the deps subcommand
func NewDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Show dependency status",
		RunE:  runDepsStatus,
	}
	return cmd
}

func runDepsStatus(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Dependency Status:")
	fmt.Println()

	if path := media.FFmpegPath(); path != "" {
		fmt.Printf("  ffmpeg:          installed (%s)\n", path)
	} else {
		fmt.Println("  ffmpeg:          not found")
	}

	if app.FasterWhisper.Available() {
		fmt.Println("  faster-whisper:  installed (preferred engine)")
	} else {
		fmt.Println("  faster-whisper:  not found")
	}

	if app.WhisperCpp.Available() {
		fmt.Println("  whisper.cpp:     installed (fallback engine)")
	} else {
		fmt.Println("  whisper.cpp:     not found")
	}

	models := app.WhisperCpp.AvailableModels()
	downloaded := 0
	for _, m := range models {
		if m.Downloaded {
			downloaded++
		}
	}
	fmt.Printf("  models:          %d/%d downloaded\n", downloaded, len(models))
	fmt.Println()

	return nil
}
