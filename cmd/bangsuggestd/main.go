package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "bangsuggestd",
	Short:   "bangsuggestd - bang shortcuts and autocomplete service",
	Long:    `bangsuggestd serves address-bar bang redirects and OpenSearch-compatible autocomplete suggestions.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
