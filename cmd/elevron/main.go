// Package main provides the elevron command: a one-shot analysis report
// generator over a historical space-launch dataset.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"elevron/internal/analyzer"
	"elevron/internal/charts"
	"elevron/internal/config"
	"elevron/internal/dataset"
	"elevron/internal/export"
	"elevron/internal/logger"
	"elevron/internal/normalizer"
	"elevron/internal/report"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration (optional, defaults apply)")
	inputPath := flag.String("input", "", "Path to launch dataset CSV (overrides config)")
	outputDir := flag.String("output", "", "Output directory for artifacts (overrides config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}

		cfg = loaded
	}

	if *inputPath != "" {
		cfg.Analysis.Input = *inputPath
	}

	if *outputDir != "" {
		cfg.Analysis.Output.Dir = *outputDir
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("🚀 Starting Elevron launch analysis", "input", cfg.Analysis.Input)

	// Phase 1: Load
	start := time.Now()

	table, err := dataset.Load(cfg.Analysis.Input)
	if err != nil {
		log.Error("❌ Failed to load dataset", "err", err)
		os.Exit(1)
	}

	log.Info("✅ Dataset loaded",
		"rows", table.Len(), "columns", len(table.Headers),
		"skipped", table.Skipped, "elapsed", time.Since(start))

	// Phase 2: Normalize
	processor := normalizer.NewProcessor(normalizer.Options{
		MinYear:                      cfg.Analysis.Years.Min,
		MaxYear:                      cfg.Analysis.Years.Max,
		CountPartialFailureAsSuccess: cfg.Analysis.Classification.CountPartialFailureAsSuccess,
	})

	result, err := processor.Process(table)
	if err != nil {
		log.Error("❌ Normalization failed", "err", err)
		os.Exit(1)
	}

	for _, warning := range result.Warnings {
		log.Warn("⚠️  " + warning)
	}

	log.Info("✅ Normalized launch records", "records", len(result.Records))

	// Phase 3: Aggregate
	results := analyzer.Run(result.Records, analyzer.Options{
		MinYear:           cfg.Analysis.Years.Min,
		MaxYear:           cfg.Analysis.Years.Max,
		TopN:              cfg.Analysis.Rankings.TopN,
		MinOrgLaunches:    cfg.Analysis.Rankings.MinOrgLaunches,
		MinRocketLaunches: cfg.Analysis.Rankings.MinRocketLaunches,
		MinRatedLaunches:  cfg.Analysis.Rankings.MinRatedLaunches,
	})

	// Phase 4: Report
	console := report.NewConsoleReporter(os.Stdout, cfg.Analysis.Rankings.TopN)
	console.Print(results)

	markdown := report.NewMarkdownReporter(cfg.Analysis.Rankings.TopN)
	if err := markdown.Write(cfg.ReportPath(), results, cfg.Analysis.Input); err != nil {
		log.Error("❌ Failed to write markdown report", "err", err)
		os.Exit(1)
	}

	log.Info("✅ Markdown report written", "path", cfg.ReportPath())

	// Phase 5: Charts
	dashboard := &charts.Dashboard{
		Sectors:       results.Sectors,
		Trends:        results.Trends,
		Organizations: results.Organizations,
		Countries:     results.Countries,
		Costs:         results.Costs,
		TopN:          cfg.Analysis.Rankings.TopN,
	}

	if err := os.MkdirAll(cfg.Analysis.Output.Dir, 0755); err != nil {
		log.Error("❌ Failed to create output directory", "err", err)
		os.Exit(1)
	}

	if err := dashboard.Render(cfg.DashboardPath()); err != nil {
		log.Warn("⚠️  Dashboard not rendered", "err", err)
	} else {
		log.Info("✅ Dashboard rendered", "path", cfg.DashboardPath())
	}

	// Phase 6: Export
	exporter, err := export.NewExporter(cfg.Analysis.Output.Dir)
	if err != nil {
		log.Error("❌ Failed to prepare export directory", "err", err)
		os.Exit(1)
	}

	exports := []struct {
		name string
		run  func() (string, error)
	}{
		{"sector performance", func() (string, error) { return exporter.SectorPerformance(results.Sectors) }},
		{"organization rankings", func() (string, error) { return exporter.OrganizationRankings(results.Organizations) }},
		{"temporal trends", func() (string, error) { return exporter.TemporalTrends(results.Trends) }},
	}

	for _, e := range exports {
		path, err := e.run()
		if err != nil {
			log.Error("❌ Export failed", "artifact", e.name, "err", err)
			os.Exit(1)
		}

		log.Info("✅ Exported "+e.name, "path", path)
	}

	log.Info("🏁 Analysis complete", "elapsed", time.Since(start))
}
