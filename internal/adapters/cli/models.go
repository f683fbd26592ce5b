package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lizergic/Transcribe-Tool/internal/adapters/cli/tui"
)

// NewModelsCmd creates the models subcommand
func NewModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage whisper.cpp models",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available models",
		RunE:  runModelsList,
	}

	downloadCmd := &cobra.Command{
		Use:   "download [NAME]",
		Short: "Download a model (interactive picker when NAME is omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runModelsDownload,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a downloaded model",
		Args:  cobra.ExactArgs(1),
		RunE:  runModelsDelete,
	}

	cmd.AddCommand(listCmd, downloadCmd, deleteCmd)
	return cmd
}

func runModelsList(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	fmt.Println()
	for _, m := range app.WhisperCpp.AvailableModels() {
		state := " "
		if m.Downloaded {
			state = "✓"
		}
		fmt.Printf("  %s %-8s %s\n", state, m.Name, m.Description)
	}
	fmt.Println()

	return nil
}

func runModelsDownload(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = tui.RunModelPicker(app.WhisperCpp.AvailableModels())
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if app.WhisperCpp.IsModelDownloaded(name) {
		fmt.Printf("Model %s is already downloaded\n", name)
		return nil
	}

	fmt.Printf("Downloading %s...\n", name)
	err = app.WhisperCpp.DownloadModel(cmd.Context(), name, func(downloaded, total int64) {
		if total > 0 && !quietFlag {
			pct := float64(downloaded) / float64(total) * 100
			fmt.Printf("\rProgress: %.1f%%", pct)
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("\nModel %s downloaded\n", name)
	return nil
}

func runModelsDelete(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	if err := app.WhisperCpp.DeleteModel(args[0]); err != nil {
		return fmt.Errorf("failed to delete model %s: %w", args[0], err)
	}

	fmt.Printf("Model %s deleted\n", args[0])
	return nil
}
