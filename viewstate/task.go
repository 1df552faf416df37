// Package viewstate holds serializable per-screen records for the practice
// screens. Records change only through the named actions on each type.
package viewstate

import (
	"context"
	"errors"

	"englishcoach/services"
)

// Phase is where a Task is in its request lifecycle.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseGenerating Phase = "generating"
	PhaseReady      Phase = "ready"
	PhaseFailed     Phase = "failed"

	// Quiz screens refine PhaseReady.
	PhaseAnswering Phase = "answering"
	PhaseScored    Phase = "scored"
)

var (
	ErrBusy     = errors.New("a request is already in progress")
	ErrNotReady = errors.New("nothing has been generated yet")
	ErrScored   = errors.New("answers have already been checked")
	ErrNoOption = errors.New("question index out of range")
	ErrNoPrompt = errors.New("generate a writing prompt first")
)

// Task tracks one generate action and the last value it produced.
type Task[T any] struct {
	Phase    Phase  `json:"phase"`
	Value    T      `json:"value"`
	HasValue bool   `json:"hasValue"`
	Error    string `json:"error,omitempty"`
}

// StartGenerate moves the task to generating. Only one request may be in flight.
func (t *Task[T]) StartGenerate() error {
	if t.Phase == PhaseGenerating {
		return ErrBusy
	}
	t.Phase = PhaseGenerating
	t.Error = ""
	return nil
}

// GenerateSucceeded stores v. It is ignored unless a request is in flight.
func (t *Task[T]) GenerateSucceeded(v T) {
	if t.Phase != PhaseGenerating {
		return
	}
	t.Phase = PhaseReady
	t.Value = v
	t.HasValue = true
}

// GenerateFailed records msg and keeps the last good value.
func (t *Task[T]) GenerateFailed(msg string) {
	if t.Phase != PhaseGenerating {
		return
	}
	t.Phase = PhaseFailed
	t.Error = msg
}

func (t *Task[T]) Reset() {
	*t = Task[T]{Phase: PhaseIdle}
}

func (t *Task[T]) Busy() bool {
	return t.Phase == PhaseGenerating
}

// Ready reports whether the task holds a value from its latest request.
func (t *Task[T]) Ready() bool {
	return t.Phase == PhaseReady && t.HasValue
}

// Run drives task through one request: start, call fn, record the outcome
// with the learner-facing message for use.
func Run[T any](ctx context.Context, task *Task[T], use services.UseCase, fn func(context.Context) (T, error)) error {
	if err := task.StartGenerate(); err != nil {
		return err
	}
	v, err := fn(ctx)
	if err != nil {
		task.GenerateFailed(services.UserMessage(use, err))
		return err
	}
	task.GenerateSucceeded(v)
	return nil
}

func phaseOf[T any](t *Task[T]) Phase {
	if t.Phase == "" {
		return PhaseIdle
	}
	return t.Phase
}
