package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"qrpanels/internal/config"
	"qrpanels/internal/panel"
	"qrpanels/internal/qr"
	"qrpanels/internal/trace"
	"qrpanels/internal/ui"
)

var version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, newRootCmd())
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and prints any error not already shown to the user,
// including cobra's own argument and flag errors.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	var shown reportedError
	if err != nil && !errors.As(err, &shown) {
		fmt.Fprintf(cmd.ErrOrStderr(), "qrpanels: %v\n", err)
	}
	return err
}

// reportedError marks an error a panel Reporter has already printed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	var configPath, logFile string

	root := &cobra.Command{
		Use:           "qrpanels",
		Short:         "Generate, preview and save QR codes from four independent panels",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context(), configPath, logFile)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "qrpanels.yaml", "Path to config file")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (overrides log_file)")

	var out string
	encodeCmd := &cobra.Command{
		Use:   "encode TEXT",
		Short: "Encode TEXT and save it as a PNG without starting the UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd.Context(), configPath, logFile, args[0], out, cmd.ErrOrStderr())
		},
	}
	encodeCmd.Flags().StringVarP(&out, "output", "o", "", "Output path (default: default_filename from config)")
	root.AddCommand(encodeCmd)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qrpanels %s\n", version)
		},
	})
	return root
}

// app holds everything both commands need.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	enc     *qr.Encoder
	tracing *trace.Provider
	closers []func() error
}

func (a *app) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.tracing.Shutdown(ctx); err != nil {
		a.log.Warn("trace shutdown", "error", err)
	}
	for _, c := range a.closers {
		_ = c()
	}
}

// setup loads .env and config, then builds the logger, tracer and encoder.
// fallback receives logs when no log file is configured.
func setup(ctx context.Context, configPath, logFile string, fallback io.Writer) (*app, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	a := &app{cfg: cfg}
	w := fallback
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f.Close)
		w = f
	}
	a.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(a.log)

	opts, err := cfg.EncoderOptions()
	if err != nil {
		return nil, err
	}
	a.enc = qr.NewEncoder(opts)

	a.tracing, err = trace.NewProvider(ctx, version)
	if err != nil {
		a.log.Warn("tracing disabled", "error", err)
	}
	a.tracing.Install()

	a.log.Info("starting qrpanels", "version", version, "panels", cfg.Panels,
		"error_correction", cfg.ErrorCorrection, "box_size", cfg.BoxSize, "border", cfg.Border)
	return a, nil
}

// runUI starts the terminal window. The UI owns the terminal, so logs are
// discarded unless a log file is configured.
func runUI(ctx context.Context, configPath, logFile string) error {
	a, err := setup(ctx, configPath, logFile, io.Discard)
	if err != nil {
		return err
	}
	defer a.Close()

	window := ui.NewWindowModel(a.cfg, a.enc,
		ui.WithWindowLogger(a.log),
		ui.WithContext(ctx),
		ui.WithPanelOptions(panel.WithTracer(a.tracing.Tracer(panel.TracerName))),
	)
	p := tea.NewProgram(window.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// runEncode generates and saves a single code through the same Panel the
// window uses. Panel reports are printed on errOut and the returned error is
// marked as reported.
func runEncode(ctx context.Context, configPath, logFile, text, out string, errOut io.Writer) error {
	rep := &stderrReporter{w: errOut}
	a, err := setup(ctx, configPath, logFile, errOut)
	if err != nil {
		return err
	}
	defer a.Close()

	if out == "" {
		out = a.cfg.DefaultFilename
	}
	p := panel.New("cli", "encode", a.enc,
		panel.WithLogger(a.log),
		panel.WithTracer(a.tracing.Tracer(panel.TracerName)),
		panel.WithReporter(rep),
	)
	p.SetInput(text)
	if err := p.Generate(ctx); err != nil {
		return rep.mark(err)
	}
	if err := p.Save(ctx, out); err != nil {
		return rep.mark(err)
	}
	fmt.Fprintf(errOut, "wrote %s (version %d)\n", out, p.Code().Version())
	return nil
}

// stderrReporter prints panel reports as single lines.
type stderrReporter struct {
	w        io.Writer
	reported bool
}

// mark wraps err as reported if the reporter printed anything.
func (r *stderrReporter) mark(err error) error {
	if r.reported {
		return reportedError{err: err}
	}
	return err
}

func (r *stderrReporter) Warn(title, message string) {
	r.reported = true
	fmt.Fprintf(r.w, "warning: %s: %s\n", title, strings.ReplaceAll(message, "\n", " "))
}

func (r *stderrReporter) Error(title, message string) {
	r.reported = true
	fmt.Fprintf(r.w, "error: %s: %s\n", title, strings.ReplaceAll(message, "\n", " "))
}
