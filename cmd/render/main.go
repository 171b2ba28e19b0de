package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"

	"softfb/internal/batch"
	"softfb/internal/config"
	"softfb/internal/imageio"
)

type CLI struct {
	Scenes      []string `arg:"" optional:"" help:"Scene files to render (default: scenes from the config file)"`
	Config      string   `help:"Path to config.json file" type:"existingfile"`
	Output      string   `short:"o" help:"Output directory (default: renders)"`
	Format      string   `short:"f" help:"Output format: ppm, png, webp, tga, bmp, tiff (default: ppm)"`
	Supersample int      `help:"Draw at N times the scene size and filter down (default: 1)"`
	Workers     int      `help:"Number of worker goroutines (default: NumCPU)"`
	Verbose     bool     `short:"v" help:"Log every rendered scene"`
}

func (c *CLI) Validate() error {
	if c.Supersample < 0 {
		return fmt.Errorf("invalid supersample: %d", c.Supersample)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("render"),
		kong.Description("Render JSON scene files into image files."),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cli, logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cli CLI, logger *slog.Logger) error {
	// Load config
	var cfg config.Config
	if cli.Config != "" {
		var err error
		cfg, err = config.Load(cli.Config)
		if err != nil {
			return err
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scenes:      cli.Scenes,
		OutputDir:   cli.Output,
		Format:      cli.Format,
		Supersample: cli.Supersample,
		Workers:     cli.Workers,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, _ := imageio.ParseFormat(cfg.Format)

	if len(cfg.Scenes) == 0 {
		logger.Info("no scenes to render")
		return nil
	}

	jobs := make([]batch.Job, len(cfg.Scenes))
	for i, path := range cfg.Scenes {
		jobs[i] = batch.Job{Source: path}
	}

	logger.Info("rendering",
		"scenes", len(jobs),
		"workers", cfg.Workers,
		"format", format,
		"supersample", cfg.Supersample,
		"output", cfg.OutputDir)

	start := time.Now()
	results := batch.Run(ctx, batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      format,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Logger:      logger,
	}, jobs)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	logger.Info("done",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"rendered", len(results)-failed,
		"failed", failed)

	if err := batch.WriteManifest(cfg.Manifest, results); err != nil {
		logger.Warn("manifest write failed", "path", cfg.Manifest, "error", err)
	} else {
		logger.Info("manifest written", "path", cfg.Manifest)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenes failed", failed, len(results))
	}
	return nil
}
