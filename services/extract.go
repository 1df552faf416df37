package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// payloadShape selects the delimiters scanned for when locating JSON in prose.
type payloadShape int

const (
	objectPayload payloadShape = iota
	arrayPayload
)

func (s payloadShape) delims() (open, close string) {
	if s == arrayPayload {
		return "[", "]"
	}
	return "{", "}"
}

// locateJSON slices raw from the first opening delimiter to the last closing
// one. Code fences, prose and other wrapping outside that range are ignored.
func locateJSON(raw string, shape payloadShape) (string, error) {
	open, close := shape.delims()
	start := strings.Index(raw, open)
	if start == -1 {
		return "", fmt.Errorf("no %q in response", open)
	}
	end := strings.LastIndex(raw, close)
	if end == -1 || end < start {
		return "", fmt.Errorf("no %q after %q in response", close, open)
	}
	return raw[start : end+1], nil
}

// extractJSON runs the locate and decode stages into v.
func extractJSON(raw string, shape payloadShape, v any) *ParseError {
	fenced := strings.Contains(raw, "```")

	body, err := locateJSON(raw, shape)
	if err != nil {
		return &ParseError{Stage: StageLocate, Fenced: fenced, Err: err}
	}
	return decodeJSON([]byte(body), "", fenced, v)
}

// decodeJSON unmarshals body into v. A JSON type mismatch is reported as a
// validation failure at prefix plus the offending field.
func decodeJSON(body []byte, prefix string, fenced bool, v any) *ParseError {
	err := json.Unmarshal(body, v)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return &ParseError{Stage: StageDecode, Fenced: fenced, Err: err}
	}
	field := typeErr.Field
	switch {
	case field != "" && prefix != "":
		field = prefix + "." + field
	case field == "" && prefix != "":
		field = prefix
	case field == "":
		field = "(root)"
	}
	return &ParseError{
		Stage:  StageValidate,
		Field:  field,
		Reason: fmt.Sprintf("has JSON type %s, expected %s", typeErr.Value, typeErr.Type),
		Fenced: fenced,
		Err:    err,
	}
}
