package quire

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/quire/internal/builder"
	"github.com/aretw0/quire/internal/config"
	"github.com/aretw0/quire/internal/validator"
	"github.com/aretw0/quire/pkg/domain"
)

// Option configures the loading pipeline.
type Option func(*loader)

// WithLogger sets a structured logger for build diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *loader) {
		l.logger = logger
	}
}

// WithStrictPresets makes an unrecognized preset name fail the build with
// domain.ErrUnknownPreset instead of resolving to an empty option list.
func WithStrictPresets() Option {
	return func(l *loader) {
		l.strictPresets = true
	}
}

// WithoutValidation skips the structural pre-validation pass. Intended for
// documents already validated by the caller; the builder still fails fast on
// unknown type tags.
func WithoutValidation() Option {
	return func(l *loader) {
		l.skipValidation = true
	}
}

type loader struct {
	logger         *slog.Logger
	strictPresets  bool
	skipValidation bool
}

// Load reads a questionnaire document (YAML or JSON), validates its
// structure, and builds the typed questionnaire. Any failure aborts the whole
// load; no partial questionnaire is returned.
func Load(path string, opts ...Option) (*domain.Questionnaire, error) {
	doc, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(doc, opts...)
}

// Build validates and constructs a questionnaire from an already-decoded raw
// document.
func Build(doc map[string]any, opts ...Option) (*domain.Questionnaire, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	if !l.skipValidation {
		if err := validator.ValidateDocument(doc); err != nil {
			return nil, fmt.Errorf("invalid questionnaire config: %w", err)
		}
	}

	builderOpts := []builder.Option{}
	if l.logger != nil {
		builderOpts = append(builderOpts, builder.WithLogger(l.logger))
	}
	if l.strictPresets {
		builderOpts = append(builderOpts, builder.WithStrictPresets())
	}

	return builder.New(builderOpts...).Build(doc)
}
