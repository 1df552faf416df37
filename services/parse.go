package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"englishcoach/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON key names so errors point at what the model actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseTenseQuestions accepts a JSON array of exactly n questions.
func ParseTenseQuestions(raw string, n int) ([]models.TenseQuestion, error) {
	// Elements are decoded one by one so type errors carry their index.
	var elems []json.RawMessage
	if perr := extractJSON(raw, arrayPayload, &elems); perr != nil {
		return nil, perr
	}
	fenced := strings.Contains(raw, "```")

	if len(elems) != n {
		return nil, schemaViolation("questions", fmt.Sprintf("must contain exactly %d items, got %d", n, len(elems)), fenced)
	}
	questions := make([]models.TenseQuestion, n)
	for i, elem := range elems {
		prefix := fmt.Sprintf("[%d]", i)
		if perr := decodeJSON(elem, prefix, fenced, &questions[i]); perr != nil {
			return nil, perr
		}
		if perr := validateRecord(&questions[i], prefix, fenced); perr != nil {
			return nil, perr
		}
	}
	return questions, nil
}

// ParseReadingExercise accepts a passage with exactly five questions.
func ParseReadingExercise(raw string) (models.ReadingExercise, error) {
	return parseObject[models.ReadingExercise](raw)
}

// ParseWritingPrompt accepts a complete writing task.
func ParseWritingPrompt(raw string) (models.WritingPrompt, error) {
	return parseObject[models.WritingPrompt](raw)
}

// ParseWritingFeedback accepts a fully scored evaluation.
func ParseWritingFeedback(raw string) (models.WritingFeedback, error) {
	return parseObject[models.WritingFeedback](raw)
}

func parseObject[T any](raw string) (T, error) {
	var zero, out T
	if perr := extractJSON(raw, objectPayload, &out); perr != nil {
		return zero, perr
	}
	if perr := validateRecord(&out, "", strings.Contains(raw, "```")); perr != nil {
		return zero, perr
	}
	return out, nil
}

// validateRecord runs the struct tags and reports the first violation.
func validateRecord(v any, prefix string, fenced bool) *ParseError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ParseError{Stage: StageValidate, Field: prefix, Reason: err.Error(), Fenced: fenced, Err: err}
	}
	fe := verrs[0]
	return schemaViolation(fieldPath(prefix, fe.Namespace()), describe(fe), fenced)
}

// fieldPath drops the Go type name that leads every validator namespace.
func fieldPath(prefix, namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		path = namespace
	}
	if prefix == "" {
		return path
	}
	return prefix + "." + path
}

func describe(fe validator.FieldError) string {
	collection := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		if collection {
			return fmt.Sprintf("must contain exactly %s items", fe.Param())
		}
		return fmt.Sprintf("must have length %s", fe.Param())
	case "min":
		if collection {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if collection {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
