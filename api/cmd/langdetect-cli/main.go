package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "langdetect-cli",
		Short:         "Russian/Italian language detection for documents",
		Long:          `langdetect-cli runs the frequency, short-word and LLM classifiers over PDF and text files`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newStopwordsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
