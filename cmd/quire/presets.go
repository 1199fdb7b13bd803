package main

import (
	"fmt"

	"github.com/aretw0/quire/pkg/preset"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the canonical option presets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range preset.Names() {
			options, _ := preset.Resolve(name)
			fmt.Printf("%s:\n", name)
			for _, opt := range options {
				fmt.Printf("  %s (value: '%v')\n", opt.Label, opt.Value)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
