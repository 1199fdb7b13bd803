package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quire",
	Short: "Quire renders dynamic questionnaires in the terminal",
	Long:  `Quire builds questionnaires from declarative YAML/JSON documents and renders them with answer-dependent question visibility.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colorized output")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
