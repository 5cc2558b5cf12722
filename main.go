// Command fixmath characterizes the fixed-point trigonometry kernel:
// it sweeps the full angle range and an atan2 grid, reports error
// statistics against float64 references, and optionally writes the raw
// sweeps as CSV.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/fixmath/config"
	"github.com/pthm-cable/fixmath/sweep"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV sweeps (overrides config)")
	gridMax := flag.Int("grid-max", 0, "Symmetric atan2 grid bound, sweeps [-N, N] (0 = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// CLI overrides
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *gridMax > 0 {
		cfg.Grid.Min = -*gridMax
		cfg.Grid.Max = *gridMax
	}

	om, err := sweep.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	if cfg.Sweep.Enabled {
		rows := sweep.SinCos()
		stats := sweep.SinCosStats(rows)
		slog.Info("sine/cosine sweep",
			"angles", len(rows),
			"max_err", stats.Max,
			"mean_err", stats.Mean,
			"rms_err", stats.RMS,
		)
		if err := om.WriteSinCos(rows, cfg.Sweep.File); err != nil {
			slog.Error("failed to write sweep", "error", err)
			os.Exit(1)
		}
	}

	if cfg.Grid.Enabled {
		rows := sweep.Atan2Grid(cfg.Grid.Min, cfg.Grid.Max, cfg.Grid.Step)
		stats := sweep.Atan2Stats(rows)
		slog.Info("atan2 grid sweep",
			"points", len(rows),
			"min", cfg.Grid.Min,
			"max", cfg.Grid.Max,
			"step", cfg.Grid.Step,
			"max_err_units", stats.Max,
			"mean_err_units", stats.Mean,
			"rms_err_units", stats.RMS,
		)
		if err := om.WriteAtan2(rows, cfg.Grid.File); err != nil {
			slog.Error("failed to write atan2 grid", "error", err)
			os.Exit(1)
		}
	}
}
