// Package qr wraps QR symbol construction and the PNG image codec behind a
// small API: text in, module matrix and raster out.
package qr

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyInput is returned when the text is empty or whitespace only.
	ErrEmptyInput = errors.New("no text to encode")
	// ErrCapacityExceeded is returned when no symbol version can hold the text
	// at the configured error-correction level.
	ErrCapacityExceeded = errors.New("text exceeds the maximum QR code capacity")
	// ErrIOFailure wraps every error raised while writing an image to disk.
	ErrIOFailure = errors.New("could not save image")
)

const (
	DefaultBoxSize = 10
	DefaultBorder  = 4
)

// Options controls symbol construction and rasterization.
type Options struct {
	Level      qrcode.RecoveryLevel
	BoxSize    int // pixels per module
	Border     int // quiet zone, in modules
	Foreground color.Color
	Background color.Color
}

// DefaultOptions favors capacity: Low error correction, 10px modules, 4-module border.
func DefaultOptions() Options {
	return Options{
		Level:      qrcode.Low,
		BoxSize:    DefaultBoxSize,
		Border:     DefaultBorder,
		Foreground: color.Black,
		Background: color.White,
	}
}

// ParseLevel maps a config name to a recovery level.
func ParseLevel(name string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "low", "l":
		return qrcode.Low, nil
	case "medium", "m":
		return qrcode.Medium, nil
	case "high", "q":
		return qrcode.High, nil
	case "highest", "h":
		return qrcode.Highest, nil
	}
	return qrcode.Low, fmt.Errorf("unknown error correction level %q", name)
}

// LevelName returns the config name of a recovery level.
func LevelName(l qrcode.RecoveryLevel) string {
	switch l {
	case qrcode.Low:
		return "low"
	case qrcode.Medium:
		return "medium"
	case qrcode.High:
		return "high"
	case qrcode.Highest:
		return "highest"
	default:
		return "unknown"
	}
}

// Encoder turns text into QR codes using a fixed set of Options.
type Encoder struct {
	opts Options
}

// NewEncoder fills zero-valued fields of opts from DefaultOptions.
// A negative border is treated as no border.
func NewEncoder(opts Options) *Encoder {
	def := DefaultOptions()
	if opts.BoxSize <= 0 {
		opts.BoxSize = def.BoxSize
	}
	if opts.Border < 0 {
		opts.Border = 0
	}
	if opts.Foreground == nil {
		opts.Foreground = def.Foreground
	}
	if opts.Background == nil {
		opts.Background = def.Background
	}
	return &Encoder{opts: opts}
}

// Options returns the encoder's effective options.
func (e *Encoder) Options() Options {
	return e.opts
}

// Encode trims text and builds the smallest symbol that holds it.
func (e *Encoder) Encode(text string) (*Code, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	q, err := qrcode.New(text, e.opts.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes at %s error correction: %v",
			ErrCapacityExceeded, len(text), LevelName(e.opts.Level), err)
	}
	// The configured border is added when rasterizing.
	q.DisableBorder = true

	return &Code{
		content: text,
		version: q.VersionNumber,
		modules: q.Bitmap(),
		opts:    e.opts,
	}, nil
}
