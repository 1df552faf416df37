package services

import (
	"context"
	"errors"
	"testing"

	"englishcoach/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPractice(stub *stubCompleter) *Practice {
	return NewPractice(stub, NewRegistry(`{"demo":"Demo"}`), "")
}

func TestPractice_Defaults(t *testing.T) {
	p := newTestPractice(&stubCompleter{})

	assert.Equal(t, "Indonesian", p.TranslationLanguage())
	assert.Equal(t, []models.ModelOption{{ID: "demo", Name: "Demo"}}, p.ListModels())
}

func TestPractice_GenerateParagraph(t *testing.T) {
	stub := &stubCompleter{reply: "  Space is vast.\n"}
	p := newTestPractice(stub)

	text, err := p.GenerateParagraph(context.Background(), "demo", "space exploration", 1)

	require.NoError(t, err)
	assert.Equal(t, "Space is vast.", text)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, "demo", stub.calls[0].Model)
}

func TestPractice_EmptyTextIsGenerationFailure(t *testing.T) {
	p := newTestPractice(&stubCompleter{reply: " \n "})

	_, err := p.Translate(context.Background(), "demo", "Hello.")

	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Equal(t, "Failed to translate paragraph. Please try again.", UserMessage(UseTranslation, err))
}

func TestPractice_TranslateAndCorrect(t *testing.T) {
	stub := &stubCompleter{reply: "Halo."}
	p := NewPractice(stub, NewRegistry(`{"demo":"Demo"}`), "Spanish")

	_, err := p.Translate(context.Background(), "demo", "Hello.")
	require.NoError(t, err)
	_, err = p.CorrectTranslation(context.Background(), "demo", "Hello.", "Hola.")
	require.NoError(t, err)

	require.Len(t, stub.calls, 2)
	assert.Contains(t, stub.calls[0].Prompt, "Spanish")
	assert.Contains(t, stub.calls[1].Prompt, "Hola.")
}

func TestPractice_InputErrorsMakeNoCall(t *testing.T) {
	stub := &stubCompleter{reply: "unused"}
	p := newTestPractice(stub)
	ctx := context.Background()
	task := sampleWritingPrompt()

	checks := map[string]error{}
	_, checks["no model"] = p.GenerateParagraph(ctx, " ", "space", 1)
	_, checks["no topic"] = p.GenerateParagraph(ctx, "demo", "", 1)
	_, checks["too many paragraphs"] = p.GenerateParagraph(ctx, "demo", "space", 6)
	_, checks["nothing to translate"] = p.Translate(ctx, "demo", "  ")
	_, checks["no user translation"] = p.CorrectTranslation(ctx, "demo", "Hello.", "")
	_, checks["no tenses"] = p.GenerateTenseQuestions(ctx, "demo", nil, 5)
	_, checks["unknown tense"] = p.GenerateTenseQuestions(ctx, "demo", []string{"Past Perfect Progressive Passive"}, 5)
	_, checks["zero questions"] = p.GenerateTenseQuestions(ctx, "demo", []string{"Past Simple"}, 0)
	_, checks["unknown level"] = p.GenerateReadingExercise(ctx, "demo", "expert", "Health and Wellness")
	_, checks["no reading topic"] = p.GenerateReadingExercise(ctx, "demo", "beginner", "")
	_, checks["unknown writing type"] = p.GenerateWritingPrompt(ctx, "demo", "beginner", "Poem", "Food and Health")
	_, checks["no writing"] = p.EvaluateWriting(ctx, "demo", "beginner", "Essay", task, "   ")
	_, checks["no task"] = p.EvaluateWriting(ctx, "demo", "beginner", "Essay", models.WritingPrompt{}, "text")

	for name, err := range checks {
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
	assert.Empty(t, stub.calls)

	assert.Equal(t, "Please select at least one tense type", UserMessage(UseTenseQuestions, checks["no tenses"]))
	assert.Equal(t, "Please select an AI model.", UserMessage(UseParagraph, checks["no model"]))
}

func TestPractice_GenerateTenseQuestions(t *testing.T) {
	stub := &stubCompleter{reply: mustJSON(t, sampleQuestions(5))}
	p := newTestPractice(stub)

	questions, err := p.GenerateTenseQuestions(context.Background(), "demo", []string{"past simple", "Past Simple"}, 5)

	require.NoError(t, err)
	assert.Len(t, questions, 5)
	require.Len(t, stub.calls, 1)
	assert.Contains(t, stub.calls[0].Prompt, "5")
	assert.Contains(t, stub.calls[0].Prompt, "following English tenses: Past Simple.")
	assert.Equal(t, 2000, stub.calls[0].MaxTokens)
}

func TestPractice_GenerateTenseQuestions_WrongCount(t *testing.T) {
	p := newTestPractice(&stubCompleter{reply: mustJSON(t, sampleQuestions(4))})

	_, err := p.GenerateTenseQuestions(context.Background(), "demo", []string{"Past Simple"}, 5)

	assert.ErrorIs(t, err, ErrSchemaViolation)
	assert.Equal(t, "Failed to parse questions. Please try again.", UserMessage(UseTenseQuestions, err))
}

func TestPractice_GenerateReadingExercise(t *testing.T) {
	want := sampleExercise(5)
	stub := &stubCompleter{reply: mustJSON(t, want)}
	p := newTestPractice(stub)

	got, err := p.GenerateReadingExercise(context.Background(), "demo", "beginner", "Health and Wellness")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.Len(t, stub.calls, 1)
	req := stub.calls[0]
	assert.Equal(t, "demo", req.Model)
	assert.Contains(t, req.Prompt, "beginner")
	assert.Contains(t, req.Prompt, "Health and Wellness")
	assert.Equal(t, 2500, req.MaxTokens)
}

func TestPractice_GenerateReadingExercise_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		kind  error
		msg   string
	}{
		{
			name: "four questions",
			kind: ErrSchemaViolation,
			msg:  "Failed to parse the AI response. The response may be incomplete or malformed. Please try again.",
		},
		{
			name:  "prose only",
			reply: "Sorry, I cannot do that.",
			kind:  ErrNoJSON,
			msg:   "The AI did not return a valid JSON response. Please try again with a different model.",
		},
		{
			name:  "fenced and broken",
			reply: "```json\n{\"passage\": \"x\",\n```",
			kind:  ErrNoJSON,
			msg:   "The AI returned formatted text instead of pure JSON. Please try again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := tt.reply
			if reply == "" {
				reply = mustJSON(t, sampleExercise(4))
			}
			p := newTestPractice(&stubCompleter{reply: reply})

			_, err := p.GenerateReadingExercise(context.Background(), "demo", "Beginner", "Health and Wellness")

			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.msg, UserMessage(UseReadingExercise, err))
		})
	}
}

func TestPractice_Writing(t *testing.T) {
	task := sampleWritingPrompt()
	stub := &stubCompleter{reply: mustJSON(t, task)}
	p := newTestPractice(stub)
	ctx := context.Background()

	got, err := p.GenerateWritingPrompt(ctx, "demo", "beginner", "essay", "Food and Health")
	require.NoError(t, err)
	assert.Equal(t, task, got)
	assert.Contains(t, stub.calls[0].Prompt, "Writing Type: Essay")

	stub.reply = mustJSON(t, sampleFeedback())
	fb, err := p.EvaluateWriting(ctx, "demo", "beginner", "Essay", got, "I like rice and vegetables.")
	require.NoError(t, err)
	assert.Equal(t, 7, fb.OverallScore)
	assert.InDelta(t, 0.3, stub.calls[1].Temperature, 1e-6)

	stub.reply = `{"overallScore": 12}`
	_, err = p.EvaluateWriting(ctx, "demo", "beginner", "Essay", got, "I like rice.")
	assert.ErrorIs(t, err, ErrSchemaViolation)
	assert.Equal(t, "Failed to parse the evaluation response. Please try again.", UserMessage(UseWritingEvaluation, err))
}

func TestPractice_TransportErrorsBecomeGenerationFailed(t *testing.T) {
	p := newTestPractice(&stubCompleter{err: errors.New("dial tcp: connection refused")})

	_, err := p.GenerateWritingPrompt(context.Background(), "demo", "beginner", "Essay", "Food and Health")

	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
	assert.Equal(t,
		"Failed to generate writing prompt. Please check your internet connection and try again.",
		UserMessage(UseWritingPrompt, err))
}
