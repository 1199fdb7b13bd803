package domain

import "errors"

// ErrUnknownQuestionType is returned at build time when a question's type tag
// has no registered constructor. The whole build aborts; no partial
// questionnaire is produced.
var ErrUnknownQuestionType = errors.New("unknown question type")

// ErrUnknownConditionType is returned at build time when a visibility node's
// type tag has no registered constructor.
var ErrUnknownConditionType = errors.New("unknown condition type")

// ErrUnknownPreset is returned at build time for an unrecognized preset name
// when the builder runs in strict-preset mode.
var ErrUnknownPreset = errors.New("unknown preset")

// ErrResponsesNotFound is returned when no saved response snapshot exists for
// a questionnaire id.
var ErrResponsesNotFound = errors.New("responses not found")
