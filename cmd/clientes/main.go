package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"clientes/internal/api"
	"clientes/internal/config"
	"clientes/internal/logging"
	"clientes/internal/telemetry"
	"clientes/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags applies command-line overrides on top of the environment.
func parseFlags(cfg *config.Config) {
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "base URL of the clientes API")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append JSON logs to this file (default: discard)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: clientes [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Terminal client for the clientes collection: list, add, edit and delete records.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	parseFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := logging.New(logging.Config{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, err := telemetry.New(ctx, telemetry.Config{Endpoint: cfg.OTLPEndpoint, ServiceName: cfg.ServiceName})
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("tracing shutdown")
		}
	}()

	client := api.NewClient(cfg.APIURL,
		api.WithLogger(log.With().Str("component", "api").Logger()),
		api.WithTracer(tp.Tracer()),
	)
	log.Info().
		Str("api_url", client.BaseURL()).
		Bool("tracing", tp.Enabled()).
		Msg("starting")

	model := ui.NewAppModel(ctx, client, log.With().Str("component", "ui").Logger()).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
