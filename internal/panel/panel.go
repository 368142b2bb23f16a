// Package panel holds the display-independent half of a QR panel: the input
// text, the generated code and the generate/save actions. Problems are handed
// to an injected Reporter instead of being shown directly.
package panel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"qrpanels/internal/qr"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// ErrNoImage is returned by Save before any successful Generate.
var ErrNoImage = errors.New("no generated image to save")

// State is the panel's position in the generate/save lifecycle.
type State int

const (
	NoImage State = iota
	HasImage
)

func (s State) String() string {
	switch s {
	case NoImage:
		return "NoImage"
	case HasImage:
		return "HasImage"
	default:
		return "Unknown"
	}
}

// Dialog titles and messages shown through the Reporter.
const (
	TitleInputRequired = "Input required"
	TitleGenerateError = "Generation error"
	TitleSaveError     = "Save error"

	MsgInputRequired    = "Enter a URL or text."
	MsgCapacityExceeded = "The text exceeds the maximum capacity of a QR code."
	msgSaveFailedPrefix = "Could not save the image:\n"
)

const (
	// TracerName is the instrumentation name of panel spans.
	TracerName = "qrpanels/panel"

	attrPanelID    = "qrpanels.panel.id"
	attrQRVersion  = "qrpanels.qr.version"
	attrFilePath   = "qrpanels.file.path"
	attrInputBytes = "qrpanels.input.bytes"
)

// Panel is one independent generate/preview/save unit.
type Panel struct {
	ID    string
	Title string

	input string
	state State
	code  *qr.Code

	enc      *qr.Encoder
	reporter Reporter
	tracer   oteltrace.Tracer
	log      *slog.Logger
}

// Option configures a Panel.
type Option func(*Panel)

// WithReporter sets where warnings and errors are surfaced.
func WithReporter(r Reporter) Option {
	return func(p *Panel) { p.reporter = r }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t oteltrace.Tracer) Option {
	return func(p *Panel) { p.tracer = t }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Panel) { p.log = l }
}

// New creates an empty panel in the NoImage state.
func New(id, title string, enc *qr.Encoder, opts ...Option) *Panel {
	p := &Panel{
		ID:       id,
		Title:    title,
		state:    NoImage,
		enc:      enc,
		reporter: NopReporter{},
		tracer:   otel.Tracer(TracerName),
		log:      slog.Default(),
	}
	for _, o := range opts {
		o(p)
	}
	p.log = p.log.With("panel", id)
	return p
}

// SetInput replaces the current input text.
func (p *Panel) SetInput(text string) { p.input = text }

// Input returns the current input text.
func (p *Panel) Input() string { return p.input }

// State returns the lifecycle state.
func (p *Panel) State() State { return p.state }

// CanSave reports whether Save has an image to write.
func (p *Panel) CanSave() bool { return p.state == HasImage }

// Code returns the current generated code, or nil in the NoImage state.
func (p *Panel) Code() *qr.Code { return p.code }

// Generate encodes the trimmed input. On success the new code replaces any
// previous one; on failure the panel is left untouched and the Reporter is told.
func (p *Panel) Generate(ctx context.Context) error {
	_, span := p.tracer.Start(ctx, "panel.generate", oteltrace.WithAttributes(
		attribute.String(attrPanelID, p.ID),
		attribute.Int(attrInputBytes, len(strings.TrimSpace(p.input))),
	))
	defer span.End()

	code, err := p.enc.Encode(p.input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		switch {
		case errors.Is(err, qr.ErrEmptyInput):
			p.log.Warn("generate rejected", "error", err)
			p.reporter.Warn(TitleInputRequired, MsgInputRequired)
		case errors.Is(err, qr.ErrCapacityExceeded):
			p.log.Warn("generate rejected", "error", err)
			p.reporter.Error(TitleGenerateError, MsgCapacityExceeded)
		default:
			p.log.Error("generate failed", "error", err)
			p.reporter.Error(TitleGenerateError, err.Error())
		}
		return err
	}

	p.code = code
	p.state = HasImage
	span.SetAttributes(attribute.Int(attrQRVersion, code.Version()))
	p.log.Info("generated", "version", code.Version(), "bytes", len(code.Content()))
	return nil
}

// Save writes the current code as a PNG at path. An empty path means the user
// cancelled the file prompt and is a no-op. The code is kept on failure so the
// save can be retried.
func (p *Panel) Save(ctx context.Context, path string) error {
	if path == "" {
		p.log.Debug("save cancelled")
		return nil
	}
	if p.state != HasImage {
		return ErrNoImage
	}

	_, span := p.tracer.Start(ctx, "panel.save", oteltrace.WithAttributes(
		attribute.String(attrPanelID, p.ID),
		attribute.String(attrFilePath, path),
	))
	defer span.End()

	if err := qr.WriteFile(path, p.code); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.log.Error("save failed", "path", path, "error", err)
		p.reporter.Error(TitleSaveError, msgSaveFailedPrefix+err.Error())
		return fmt.Errorf("save %s: %w", p.ID, err)
	}
	p.log.Info("saved", "path", path)
	return nil
}
