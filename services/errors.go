package services

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationFailed is the only error a Completer returns. The cause is logged.
	ErrGenerationFailed = errors.New("generation failed")

	ErrNoJSON          = errors.New("no JSON found in response")
	ErrMalformedJSON   = errors.New("malformed JSON in response")
	ErrSchemaViolation = errors.New("response does not match the expected shape")

	// ErrInvalidInput marks bad learner-supplied parameters, caught before any network call.
	ErrInvalidInput = errors.New("invalid input")
)

// Stage names the step of the JSON pipeline that rejected a response.
type Stage string

const (
	StageLocate   Stage = "locate"
	StageDecode   Stage = "decode"
	StageValidate Stage = "validate"
)

// ParseError reports why a model response could not become a typed record.
type ParseError struct {
	Stage  Stage
	Field  string
	Reason string
	// Fenced is set when the raw text contained ``` markers.
	Fenced bool
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s %s", e.kind(), e.Field, e.Reason)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.kind(), e.Err)
	default:
		return e.kind().Error()
	}
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.kind()}
	}
	return []error{e.kind(), e.Err}
}

func (e *ParseError) kind() error {
	switch e.Stage {
	case StageLocate:
		return ErrNoJSON
	case StageDecode:
		return ErrMalformedJSON
	default:
		return ErrSchemaViolation
	}
}

func schemaViolation(field, reason string, fenced bool) *ParseError {
	return &ParseError{Stage: StageValidate, Field: field, Reason: reason, Fenced: fenced}
}

// InputError carries the message shown to the learner for a rejected parameter.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return "invalid input: " + e.Message }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

func invalidInput(msg string) error {
	return &InputError{Message: msg}
}

// UseCase identifies a practice operation for logging, metrics and messages.
type UseCase string

const (
	UseParagraph         UseCase = "paragraph"
	UseTranslation       UseCase = "translation"
	UseCorrection        UseCase = "correction"
	UseTenseQuestions    UseCase = "tense_questions"
	UseReadingExercise   UseCase = "reading_exercise"
	UseWritingPrompt     UseCase = "writing_prompt"
	UseWritingEvaluation UseCase = "writing_evaluation"
)

var generationMessages = map[UseCase]string{
	UseParagraph:         "Failed to generate paragraph. Please check your API key and try again.",
	UseTranslation:       "Failed to translate paragraph. Please try again.",
	UseCorrection:        "Failed to correct translation. Please try again.",
	UseTenseQuestions:    "Failed to generate questions. Please check your API key and try again.",
	UseReadingExercise:   "Failed to generate reading passage. Please check your internet connection and try again.",
	UseWritingPrompt:     "Failed to generate writing prompt. Please check your internet connection and try again.",
	UseWritingEvaluation: "Failed to evaluate writing. Please check your internet connection and try again.",
}

// UserMessage turns any error returned by Practice into a short message for the learner.
func UserMessage(use UseCase, err error) string {
	if err == nil {
		return ""
	}
	var ierr *InputError
	if errors.As(err, &ierr) {
		return ierr.Message
	}

	var perr *ParseError
	if errors.As(err, &perr) {
		switch {
		case use == UseTenseQuestions:
			return "Failed to parse questions. Please try again."
		case use == UseWritingEvaluation:
			return "Failed to parse the evaluation response. Please try again."
		case perr.Fenced:
			return "The AI returned formatted text instead of pure JSON. Please try again."
		case perr.Stage == StageLocate:
			return "The AI did not return a valid JSON response. Please try again with a different model."
		default:
			return "Failed to parse the AI response. The response may be incomplete or malformed. Please try again."
		}
	}

	if msg, ok := generationMessages[use]; ok {
		return msg
	}
	return "Something went wrong. Please try again."
}
