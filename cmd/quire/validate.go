package main

import (
	"fmt"
	"os"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/internal/config"
	"github.com/aretw0/quire/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config>",
	Short: "Check a questionnaire config for problems",
	Long:  `Runs the structural validator over the raw document and then performs a dry-run build, reporting every problem found.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Questionnaire is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Bool("strict-presets", false, "Fail on unknown preset names")
}

func runValidate(cmd *cobra.Command, configPath string) error {
	doc, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	if err := validator.ValidateDocument(doc); err != nil {
		return err
	}

	// Dry-run build: catches what the structural pass cannot, such as
	// unknown presets in strict mode.
	opts := []quire.Option{quire.WithoutValidation(), quire.WithLogger(createLogger(cmd))}
	if strict, _ := cmd.Flags().GetBool("strict-presets"); strict {
		opts = append(opts, quire.WithStrictPresets())
	}
	_, err = quire.Build(doc, opts...)
	return err
}
