package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lang-detect/api/internal/app"
	"lang-detect/api/internal/config"
	"lang-detect/api/internal/extract"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	errorColor  = color.New(color.FgRed, color.Bold)
	pathColor   = color.New(color.FgGreen)
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [flags] file...",
		Short: "Detect the language of PDF or .txt files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAnalyze,
	}
	cmd.Flags().Bool("save", false, "also write each report to RESULT_DIR")
	cmd.Flags().Bool("oracle", true, "ask the configured LLM engine")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	save, err := cmd.Flags().GetBool("save")
	if err != nil {
		return fmt.Errorf("failed to get save flag: %w", err)
	}
	withOracle, err := cmd.Flags().GetBool("oracle")
	if err != nil {
		return fmt.Errorf("failed to get oracle flag: %w", err)
	}
	applyColorFlag(cmd)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !save {
		// history is only written together with reports
		cfg.DatabaseURL = ""
	}

	ctx := context.Background()
	a, err := app.New(ctx, cfg, withOracle)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	failed := 0
	for i, path := range args {
		if i > 0 {
			fmt.Fprintln(out)
		}
		headerColor.Fprintf(out, "== %s ==\n", path)

		text, err := extract.FromFile(path)
		if err != nil {
			errorColor.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			failed++
			continue
		}
		res, err := a.Process(ctx, nil, filepath.Base(path), text, save)
		if err != nil {
			errorColor.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintln(out, res.Report)
		if res.ReportPath != "" {
			pathColor.Fprintf(out, "отчёт: %s\n", res.ReportPath)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(args))
	}
	return nil
}

func applyColorFlag(cmd *cobra.Command) {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
}
