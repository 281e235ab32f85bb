package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lang-detect/api/internal/classify/types"
	"lang-detect/api/internal/config"
	"lang-detect/api/internal/stopwords"
)

func newStopwordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stopwords ru|it",
		Short: "Print the reference stopword list of a language",
		Args:  cobra.ExactArgs(1),
		RunE:  runStopwords,
	}
	cmd.Flags().Int("short", 0, "only words of at most this many letters")
	return cmd
}

func runStopwords(cmd *cobra.Command, args []string) error {
	short, err := cmd.Flags().GetInt("short")
	if err != nil {
		return fmt.Errorf("failed to get short flag: %w", err)
	}

	ref, err := stopwords.Load(config.Load().StopwordsDir)
	if err != nil {
		return err
	}
	lang := types.Language(strings.ToLower(args[0]))

	var words []string
	if short > 0 {
		words, err = ref.Short(lang, short)
	} else {
		words, err = ref.Stopwords(lang)
	}
	if err != nil {
		return err
	}
	for _, w := range words {
		fmt.Fprintln(cmd.OutOrStdout(), w)
	}
	return nil
}
