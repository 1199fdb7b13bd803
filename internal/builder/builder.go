// Package builder turns validated questionnaire documents into typed,
// evaluable questionnaires. Construction is all-or-nothing: an unknown
// question or condition tag aborts the entire build.
package builder

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/quire/pkg/domain"
	"github.com/aretw0/quire/pkg/preset"
	"github.com/mitchellh/mapstructure"
)

// questionConstructors is the fixed type-tag lookup table for questions.
// Extending the question kinds touches only this table.
var questionConstructors = map[string]func(*Builder, questionConfig) (*domain.Question, error){
	domain.QuestionText:     (*Builder).buildText,
	domain.QuestionBoolean:  (*Builder).buildBoolean,
	domain.QuestionRadio:    (*Builder).buildOptions,
	domain.QuestionCheckbox: (*Builder).buildCheckbox,
	domain.QuestionDropdown: (*Builder).buildOptions,
}

// conditionConstructors is the fixed type-tag lookup table for visibility nodes.
// Populated in init to avoid an initialization cycle: the composite
// constructors recurse through buildCondition, which reads this table.
var conditionConstructors map[string]func(*Builder, conditionConfig) (*domain.Condition, error)

func init() {
	conditionConstructors = map[string]func(*Builder, conditionConfig) (*domain.Condition, error){
		domain.ConditionValueCheck: (*Builder).buildValueCheck,
		domain.ConditionAnd:        (*Builder).buildAnd,
		domain.ConditionOr:         (*Builder).buildOr,
		domain.ConditionNot:        (*Builder).buildNot,
	}
}

// Builder constructs questionnaires from raw documents.
type Builder struct {
	logger        *slog.Logger
	strictPresets bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the structured logger used for build diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithStrictPresets makes an unrecognized preset name fail the build with
// domain.ErrUnknownPreset instead of resolving to an empty option list.
func WithStrictPresets() Option {
	return func(b *Builder) {
		b.strictPresets = true
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b
}

// Build constructs a questionnaire from the raw document. The document is
// expected to have passed validator.ValidateDocument; Build still fails fast
// on semantically unknown type tags.
func (b *Builder) Build(doc map[string]any) (*domain.Questionnaire, error) {
	var cfg questionnaireConfig
	if err := decode(doc, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode questionnaire config: %w", err)
	}

	questionnaire := &domain.Questionnaire{
		ID:        cfg.ID,
		Title:     cfg.Title,
		Questions: make([]*domain.Question, 0, len(cfg.Questions)),
	}

	// Declaration order is display and numbering order.
	for _, qc := range cfg.Questions {
		question, err := b.buildQuestion(qc)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", qc.ID, err)
		}
		questionnaire.Questions = append(questionnaire.Questions, question)
	}

	return questionnaire, nil
}

func (b *Builder) buildQuestion(cfg questionConfig) (*domain.Question, error) {
	construct, ok := questionConstructors[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownQuestionType, cfg.Type)
	}

	question, err := construct(b, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Visibility != nil {
		visibility, err := b.buildCondition(*cfg.Visibility)
		if err != nil {
			return nil, err
		}
		question.Visibility = visibility
	}
	return question, nil
}

func (b *Builder) buildText(cfg questionConfig) (*domain.Question, error) {
	return &domain.Question{
		ID:        cfg.ID,
		Kind:      domain.QuestionText,
		Text:      cfg.Text,
		MinLength: cfg.MinLength,
		MaxLength: cfg.MaxLength,
	}, nil
}

func (b *Builder) buildBoolean(cfg questionConfig) (*domain.Question, error) {
	return &domain.Question{
		ID:      cfg.ID,
		Kind:    domain.QuestionBoolean,
		Text:    cfg.Text,
		Options: domain.BooleanOptions(),
	}, nil
}

func (b *Builder) buildOptions(cfg questionConfig) (*domain.Question, error) {
	options, err := b.resolveOptions(cfg)
	if err != nil {
		return nil, err
	}
	return &domain.Question{
		ID:      cfg.ID,
		Kind:    cfg.Type,
		Text:    cfg.Text,
		Options: options,
	}, nil
}

func (b *Builder) buildCheckbox(cfg questionConfig) (*domain.Question, error) {
	question, err := b.buildOptions(cfg)
	if err != nil {
		return nil, err
	}
	question.AllowOther = cfg.AllowOther
	question.AllowNone = cfg.AllowNone
	return question, nil
}

// resolveOptions substitutes a preset's canonical list when the question
// declares one, otherwise materializes the literal options.
func (b *Builder) resolveOptions(cfg questionConfig) ([]domain.Option, error) {
	if cfg.Preset != "" {
		options, ok := preset.Resolve(cfg.Preset)
		if !ok {
			if b.strictPresets {
				return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPreset, cfg.Preset)
			}
			// Historical behavior: an unknown preset yields an empty option
			// list instead of failing the build.
			b.logger.Warn("unknown preset resolves to empty options", "preset", cfg.Preset, "question", cfg.ID)
			return nil, nil
		}
		return options, nil
	}

	options := make([]domain.Option, 0, len(cfg.Options))
	for _, oc := range cfg.Options {
		options = append(options, domain.Option{
			Label:     oc.Label,
			Value:     oc.Value,
			ShowValue: oc.ShowValue == nil || *oc.ShowValue,
		})
	}
	return options, nil
}

func (b *Builder) buildCondition(cfg conditionConfig) (*domain.Condition, error) {
	construct, ok := conditionConstructors[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownConditionType, cfg.Type)
	}
	return construct(b, cfg)
}

func (b *Builder) buildValueCheck(cfg conditionConfig) (*domain.Condition, error) {
	return domain.NewValueCheck(cfg.QuestionID, cfg.QuestionText, cfg.ExpectedValue), nil
}

func (b *Builder) buildAnd(cfg conditionConfig) (*domain.Condition, error) {
	children, err := b.buildChildren(cfg.Conditions)
	if err != nil {
		return nil, err
	}
	return domain.NewAnd(children...), nil
}

func (b *Builder) buildOr(cfg conditionConfig) (*domain.Condition, error) {
	children, err := b.buildChildren(cfg.Conditions)
	if err != nil {
		return nil, err
	}
	return domain.NewOr(children...), nil
}

func (b *Builder) buildNot(cfg conditionConfig) (*domain.Condition, error) {
	if cfg.Condition == nil {
		return nil, fmt.Errorf("not condition requires a child condition")
	}
	child, err := b.buildCondition(*cfg.Condition)
	if err != nil {
		return nil, err
	}
	return domain.NewNot(child), nil
}

func (b *Builder) buildChildren(configs []conditionConfig) ([]*domain.Condition, error) {
	children := make([]*domain.Condition, 0, len(configs))
	for _, cc := range configs {
		child, err := b.buildCondition(cc)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func decode(input any, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  output,
		TagName: "mapstructure",
		// JSON decoding yields float64 for the integer length bounds.
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
