// Package prompt implements the interactive terminal session that collects a
// response snapshot for a questionnaire. Visibility is re-evaluated against
// the answers accumulated so far, so gated questions appear exactly when
// their conditions become true.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/quire/internal/logging"
	"github.com/aretw0/quire/internal/presentation/tui"
	"github.com/aretw0/quire/pkg/domain"
)

// Session drives one interactive pass over a questionnaire.
type Session struct {
	reader *bufio.Reader
	writer io.Writer
	styles *tui.Styles
	render func(string) (string, error)
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithStyles sets the terminal style set (explicitly threaded, never global).
func WithStyles(styles *tui.Styles) Option {
	return func(s *Session) {
		s.styles = styles
	}
}

// WithContentRenderer pipes question prompts through a markdown renderer.
func WithContentRenderer(render func(string) (string, error)) Option {
	return func(s *Session) {
		s.render = render
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a Session reading answers from r and writing prompts to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Session {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	s := &Session{
		reader: bufio.NewReader(r),
		writer: w,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.styles == nil {
		s.styles = tui.NewStyles(false)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// Run walks the questionnaire in declaration order, asking each question that
// is visible given the answers so far, and returns the collected snapshot.
// EOF on the input aborts the session with the partial snapshot and the error.
func (s *Session) Run(q *domain.Questionnaire) (domain.Responses, error) {
	responses := domain.Responses{}

	fmt.Fprintf(s.writer, "%s\n%s\n", s.styles.Title(q.Title), strings.Repeat("=", len(q.Title)))

	number := 0
	for _, question := range q.Questions {
		if !question.IsVisible(responses) {
			s.logger.Debug("question hidden", "id", question.ID)
			continue
		}
		number++

		answer, err := s.ask(number, question)
		if err != nil {
			return responses, err
		}
		responses[question.ID] = answer
	}

	return responses, nil
}

func (s *Session) ask(number int, q *domain.Question) (any, error) {
	text := q.Text
	if s.render != nil {
		if rendered, err := s.render(text); err == nil {
			text = strings.TrimSpace(rendered)
		}
	}
	fmt.Fprintf(s.writer, "\n%s %s\n", s.styles.Number(fmt.Sprintf("%d.", number)), s.styles.Prompt(text))

	switch q.Kind {
	case domain.QuestionText:
		return s.askText(q)
	case domain.QuestionBoolean:
		return s.askBoolean()
	case domain.QuestionRadio, domain.QuestionDropdown:
		return s.askSingleChoice(q)
	case domain.QuestionCheckbox:
		return s.askMultiChoice(q)
	default:
		// Unreachable after construction; kinds are fixed by the builder.
		return nil, fmt.Errorf("cannot prompt for question kind %q", q.Kind)
	}
}

func (s *Session) askText(q *domain.Question) (any, error) {
	if q.MinLength != nil || q.MaxLength != nil {
		fmt.Fprintf(s.writer, "  %s\n", s.styles.Hint(textBoundsHint(q)))
	}
	for {
		answer, err := s.readLine()
		if err != nil {
			return nil, err
		}
		if q.MinLength != nil && len(answer) < *q.MinLength {
			s.retry(fmt.Sprintf("Answer must be at least %d characters.", *q.MinLength))
			continue
		}
		if q.MaxLength != nil && len(answer) > *q.MaxLength {
			s.retry(fmt.Sprintf("Answer must be at most %d characters.", *q.MaxLength))
			continue
		}
		return answer, nil
	}
}

func (s *Session) askBoolean() (any, error) {
	fmt.Fprintf(s.writer, "  %s\n", s.styles.Hint("[y/n]"))
	for {
		answer, err := s.readLine()
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes", "true":
			return true, nil
		case "n", "no", "false":
			return false, nil
		}
		s.retry("Please answer y or n.")
	}
}

func (s *Session) askSingleChoice(q *domain.Question) (any, error) {
	options := q.EffectiveOptions()
	s.printOptions(options)
	for {
		answer, err := s.readLine()
		if err != nil {
			return nil, err
		}
		index, ok := parseChoice(answer, len(options))
		if !ok {
			s.retry(fmt.Sprintf("Enter a number between 1 and %d.", len(options)))
			continue
		}
		return options[index].Value, nil
	}
}

// askMultiChoice collects a comma-separated selection. Choosing the synthetic
// "Other" entry triggers a free-text follow-up appended alongside the
// sentinel. An empty line selects nothing.
func (s *Session) askMultiChoice(q *domain.Question) (any, error) {
	options := q.EffectiveOptions()
	s.printOptions(options)
	fmt.Fprintf(s.writer, "  %s\n", s.styles.Hint("Comma-separated numbers, empty for none."))

	for {
		answer, err := s.readLine()
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return []any{}, nil
		}

		selected, ok := parseChoices(answer, len(options))
		if !ok {
			s.retry(fmt.Sprintf("Enter comma-separated numbers between 1 and %d.", len(options)))
			continue
		}

		values := make([]any, 0, len(selected)+1)
		other := false
		for _, index := range selected {
			values = append(values, options[index].Value)
			if options[index].Value == domain.OtherValue {
				other = true
			}
		}

		if other {
			fmt.Fprintf(s.writer, "  %s ", s.styles.Hint("Please specify:"))
			free, err := s.readRaw()
			if err != nil {
				return nil, err
			}
			if free != "" {
				values = append(values, free)
			}
		}
		return values, nil
	}
}

func (s *Session) printOptions(options []domain.Option) {
	for i, opt := range options {
		fmt.Fprintf(s.writer, "  %d) %s\n", i+1, opt.Label)
	}
}

func (s *Session) retry(message string) {
	fmt.Fprintf(s.writer, "%s\n", s.styles.ErrorText(message))
}

func (s *Session) readLine() (string, error) {
	fmt.Fprint(s.writer, "> ")
	return s.readRaw()
}

func (s *Session) readRaw() (string, error) {
	text, err := s.reader.ReadString('\n')
	if err != nil && text == "" {
		if err == io.EOF {
			return "", fmt.Errorf("input closed: %w", err)
		}
		return "", err
	}

	clean, sErr := sanitizeInput(strings.TrimSpace(text))
	if sErr != nil {
		s.retry(fmt.Sprintf("Error: %v. Please try again.", sErr))
		return s.readRaw()
	}
	return clean, nil
}

func textBoundsHint(q *domain.Question) string {
	switch {
	case q.MinLength != nil && q.MaxLength != nil:
		return fmt.Sprintf("Between %d and %d characters.", *q.MinLength, *q.MaxLength)
	case q.MinLength != nil:
		return fmt.Sprintf("At least %d characters.", *q.MinLength)
	default:
		return fmt.Sprintf("At most %d characters.", *q.MaxLength)
	}
}

func parseChoice(input string, count int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n - 1, true
}

func parseChoices(input string, count int) ([]int, bool) {
	parts := strings.Split(input, ",")
	indices := make([]int, 0, len(parts))
	seen := make(map[int]bool)
	for _, part := range parts {
		index, ok := parseChoice(part, count)
		if !ok {
			return nil, false
		}
		if seen[index] {
			continue
		}
		seen[index] = true
		indices = append(indices, index)
	}
	return indices, true
}
