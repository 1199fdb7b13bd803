package main

import (
	"fmt"
	"os"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/internal/adapters"
	"github.com/aretw0/quire/internal/presentation/tui"
	"github.com/aretw0/quire/internal/prompt"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var askCmd = &cobra.Command{
	Use:   "ask <config>",
	Short: "Ask a questionnaire interactively",
	Long:  `Walks the questionnaire in the terminal, showing each question as its visibility condition becomes true, and validates answers as they are entered.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAsk(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().Bool("save", false, "Persist the collected responses")
	askCmd.Flags().String("store", "", "Responses directory (default .quire/responses)")
	askCmd.Flags().Bool("markdown", false, "Render question prompts as markdown")
}

func runAsk(cmd *cobra.Command, configPath string) error {
	logger := createLogger(cmd)

	questionnaire, err := quire.Load(configPath, quire.WithLogger(logger))
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	styles := tui.NewStyles(colorEnabled(cmd) && interactive)
	if interactive {
		tui.PrintBanner(quire.Version)
	}

	sessionOpts := []prompt.Option{
		prompt.WithStyles(styles),
		prompt.WithLogger(logger),
	}
	if markdown, _ := cmd.Flags().GetBool("markdown"); markdown {
		sessionOpts = append(sessionOpts, prompt.WithContentRenderer(tui.NewContentRenderer()))
	}

	session := prompt.New(os.Stdin, os.Stdout, sessionOpts...)
	responses, err := session.Run(questionnaire)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		storePath, _ := cmd.Flags().GetString("store")
		store := adapters.NewResponseStore(storePath)
		if err := store.Save(questionnaire.ID, responses); err != nil {
			return err
		}
		logger.Info("responses saved", "questionnaire", questionnaire.ID, "path", store.BasePath)
	}

	fmt.Println()
	fmt.Print(tui.NewRenderer(styles).RenderQuestionnaire(questionnaire, responses))
	return nil
}
