package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lizergic/Transcribe-Tool/internal/adapters/cli/tui"
	"github.com/lizergic/Transcribe-Tool/internal/adapters/whispercpp"
	"github.com/lizergic/Transcribe-Tool/internal/application"
	"github.com/lizergic/Transcribe-Tool/internal/domain"
	"github.com/lizergic/Transcribe-Tool/internal/format"
	"github.com/lizergic/Transcribe-Tool/internal/media"
)

var (
	// Global flags
	modelFlag    string
	languageFlag string
	formatFlag   string
	outputFlag   string
	quietFlag    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "transcribe INPUT",
		Short: "Transcribe a local audio or video file",
		Long: `transcribe converts one local audio or video file into a text
transcript using a local whisper engine, writing TXT, SRT, VTT or JSON.

faster-whisper is used when its python package is installed; otherwise
the whisper.cpp binary is used. ffmpeg must be on PATH.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscribe(cmd.Context(), args[0])
		},
	}

	rootCmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Whisper model: tiny, base, small, medium, large (default from config: small)")
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "l", "", "Language code (e.g. en, es); auto-detect if omitted")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: txt, srt, vtt, json (default from config: txt)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (default: input name with the format's extension)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(NewModelsCmd())
	rootCmd.AddCommand(NewDepsCmd())

	return rootCmd
}

func runTranscribe(ctx context.Context, input string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	formatName := formatFlag
	if formatName == "" {
		formatName = app.Config.Defaults.Format
	}
	f, err := format.Parse(formatName)
	if err != nil {
		return err
	}

	model := modelFlag
	if model == "" {
		model = app.Config.Defaults.Model
	}
	language := languageFlag
	if language == "" {
		language = app.Config.Defaults.Language
	}

	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInputNotFound, input)
	}

	steps := []string{"Checking dependencies", "Transcribing", "Writing output"}
	progress := tui.NewProgressDisplay(steps, quietFlag)

	// Step 1: dependencies — ffmpeg, an engine, and (for whisper.cpp) the model
	progress.StartStep(0)

	if err := media.CheckFFmpeg(); err != nil {
		progress.FailStep(0, "ffmpeg not found")
		return err
	}

	engine, err := application.ResolveTranscriber(app.FasterWhisper, app.WhisperCpp)
	if err != nil {
		progress.FailStep(0, "no engine")
		return fmt.Errorf("%w\n%s", err, whispercpp.InstallationInstructions())
	}

	if engine == app.WhisperCpp && !app.WhisperCpp.IsModelDownloaded(model) {
		if err := app.WhisperCpp.DownloadModel(ctx, model, func(d, t int64) {
			progress.UpdateProgress(0, d, t)
		}); err != nil {
			progress.FailStep(0, err.Error())
			return fmt.Errorf("failed to download model: %w", err)
		}
	}
	progress.CompleteStep(0)

	spinnerDone := progress.StartSpinner()
	progress.StartStep(1)

	svc := application.NewPipelineService(engine, app.Writer)
	result, err := svc.Run(ctx, input, application.Options{
		Model:    model,
		Language: language,
		Format:   f,
		Output:   outputFlag,
	})

	close(spinnerDone)
	if err != nil {
		progress.FailStep(1, err.Error())
		return err
	}

	progress.CompleteStep(1)
	progress.CompleteStep(2)
	progress.Summary(result.OutputPath)

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
