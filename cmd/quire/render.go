package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/internal/adapters"
	"github.com/aretw0/quire/internal/presentation/tui"
	"github.com/aretw0/quire/pkg/domain"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <config>",
	Short: "Render a questionnaire against a response snapshot",
	Long:  `Builds the questionnaire from its config document and prints the questions visible for the given responses, numbered sequentially.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRender(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("responses", "", "Path to a JSON response snapshot")
	renderCmd.Flags().Bool("saved", false, "Load the saved snapshot for this questionnaire")
	renderCmd.Flags().String("store", "", "Responses directory (default .quire/responses)")
	renderCmd.Flags().Bool("strict-presets", false, "Fail the build on unknown preset names")
}

func runRender(cmd *cobra.Command, configPath string) error {
	logger := createLogger(cmd)

	opts := []quire.Option{quire.WithLogger(logger)}
	if strict, _ := cmd.Flags().GetBool("strict-presets"); strict {
		opts = append(opts, quire.WithStrictPresets())
	}

	questionnaire, err := quire.Load(configPath, opts...)
	if err != nil {
		return err
	}

	responses, err := resolveResponses(cmd, questionnaire.ID)
	if err != nil {
		return err
	}

	if colorEnabled(cmd) {
		renderer := tui.NewRenderer(tui.NewStyles(true))
		fmt.Print(renderer.RenderQuestionnaire(questionnaire, responses))
		return nil
	}
	fmt.Print(questionnaire.Render(responses))
	return nil
}

func resolveResponses(cmd *cobra.Command, questionnaireID string) (domain.Responses, error) {
	if path, _ := cmd.Flags().GetString("responses"); path != "" {
		return loadResponsesFile(path)
	}

	if saved, _ := cmd.Flags().GetBool("saved"); saved {
		storePath, _ := cmd.Flags().GetString("store")
		store := adapters.NewResponseStore(storePath)
		responses, err := store.Load(questionnaireID)
		if errors.Is(err, domain.ErrResponsesNotFound) {
			return domain.Responses{}, nil
		}
		return responses, err
	}

	return domain.Responses{}, nil
}
