package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dlautopecas/adpulse/internal/cli"
	"github.com/dlautopecas/adpulse/internal/common"
	"github.com/dlautopecas/adpulse/internal/engine"
	"github.com/dlautopecas/adpulse/internal/ingest"
	"github.com/dlautopecas/adpulse/internal/report"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file.xlsx>",
		Short: "Analyze a campaign export and produce the PDF report",
		Long: `Analyze normalizes the campaign spreadsheet, classifies every ad with
the configured generative-AI provider and writes a dated PDF report with
financial totals and per-ad recommendations.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().String("sheet", ingest.DefaultSheetName, "workbook sheet to read")
	cmd.Flags().String("output", "", "output PDF path (default: diagnostico_adpulse_YYYYMMDD.pdf)")
	cmd.Flags().String("html", "", "also write the intermediate HTML document to this path")
	cmd.Flags().Int("chunk-size", 0, "ads per classifier call (default 3)")

	_ = viper.BindPFlag("analysis.sheet", cmd.Flags().Lookup("sheet"))
	_ = viper.BindPFlag("analysis.chunk_size", cmd.Flags().Lookup("chunk-size"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// The renderer is checked first so a missing wkhtmltopdf fails the run
	// before any classifier call is paid for.
	renderer, err := report.NewPDFRenderer(viper.GetString("report.wkhtmltopdf_path"))
	if err != nil {
		return err
	}

	rows, err := ingest.LoadWorkbook(args[0], viper.GetString("analysis.sheet"))
	if err != nil {
		return err
	}

	ads, err := ingest.Normalize(rows)
	if err != nil {
		return err
	}

	if len(ads) == 0 {
		return common.NewUserError("the spreadsheet contains no ad rows", common.ErrEmptySheet)
	}

	slog.Info("Normalized campaign export", "file", args[0], "ads", len(ads))

	classifier, err := createLLMClient()
	if err != nil {
		return err
	}
	defer func() { _ = classifier.Close() }()

	analyzerCfg := engine.DefaultConfig()
	if size := viper.GetInt("analysis.chunk_size"); size > 0 {
		analyzerCfg.ChunkSize = size
	}
	analyzerCfg.ChunkDelay = viper.GetDuration("analysis.chunk_delay")

	analyzer := engine.NewWithConfig(classifier, analyzerCfg)

	var bar *progressbar.ProgressBar
	analyzer.SetProgress(func(chunk, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Analyzing chunks"),
				progressbar.OptionShowCount(),
			)
		}
		_ = bar.Set(chunk - 1)
	})

	verdicts, err := analyzer.Analyze(ctx, ads)
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		if errors.Is(err, common.ErrNoVerdicts) {
			fmt.Fprintln(os.Stderr, cli.WarningStyle.Render("No verdicts were produced; no report will be generated."))
			return err
		}
		return err
	}

	totals := report.Aggregate(verdicts)
	cli.PrintSummary(os.Stdout, totals)

	now := time.Now()
	html, err := report.RenderHTML(verdicts, totals, now)
	if err != nil {
		return err
	}

	if htmlPath, _ := cmd.Flags().GetString("html"); htmlPath != "" {
		if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
			return fmt.Errorf("failed to write html: %w", err)
		}
		slog.Info("Wrote intermediate HTML", "path", htmlPath)
	}

	pdf, err := renderer.Render(ctx, html)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = fmt.Sprintf("diagnostico_adpulse_%s.pdf", now.Format("20060102"))
	}

	if err := os.WriteFile(output, pdf, 0o600); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	fmt.Fprintln(os.Stdout, cli.SuccessStyle.Render(fmt.Sprintf("✅ Report written to %s", output)))

	return nil
}
