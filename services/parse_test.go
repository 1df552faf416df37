package services

import (
	"errors"
	"strings"
	"testing"

	"englishcoach/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireParseError(t *testing.T, err error, kind error) *ParseError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	var perr *ParseError
	require.True(t, errors.As(err, &perr), "expected *ParseError, got %T", err)
	return perr
}

func TestParseTenseQuestions_ExactCount(t *testing.T) {
	want := sampleQuestions(5)

	got, err := ParseTenseQuestions(mustJSON(t, want), 5)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseTenseQuestions_WrongCount(t *testing.T) {
	for _, n := range []int{4, 6} {
		raw := mustJSON(t, sampleQuestions(n))

		_, err := ParseTenseQuestions(raw, 5)

		perr := requireParseError(t, err, ErrSchemaViolation)
		assert.Equal(t, "questions", perr.Field)
		assert.Equal(t, StageValidate, perr.Stage)
	}
}

func TestParseTenseQuestions_FencedArray(t *testing.T) {
	raw := "Sure! ```json\n" + mustJSON(t, sampleQuestions(2)) + "\n```"

	got, err := ParseTenseQuestions(raw, 2)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestParseTenseQuestions_ArrayInsideObject(t *testing.T) {
	raw := `{"questions": ` + mustJSON(t, sampleQuestions(3)) + `}`

	got, err := ParseTenseQuestions(raw, 3)

	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestParseTenseQuestions_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *models.TenseQuestion)
		field  string
	}{
		{"three options", func(q *models.TenseQuestion) { q.Options = q.Options[:3] }, "[1].options"},
		{"empty option", func(q *models.TenseQuestion) { q.Options[2] = "" }, "[1].options[2]"},
		{"answer outside set", func(q *models.TenseQuestion) { q.CorrectAnswer = "E" }, "[1].correctAnswer"},
		{"answer with text", func(q *models.TenseQuestion) { q.CorrectAnswer = "A. go" }, "[1].correctAnswer"},
		{"missing question", func(q *models.TenseQuestion) { q.Question = "" }, "[1].question"},
		{"missing explanation", func(q *models.TenseQuestion) { q.Explanation = "" }, "[1].explanation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := sampleQuestions(3)
			tt.mutate(&qs[1])

			_, err := ParseTenseQuestions(mustJSON(t, qs), 3)

			perr := requireParseError(t, err, ErrSchemaViolation)
			assert.Equal(t, tt.field, perr.Field)
			assert.NotEmpty(t, perr.Reason)
		})
	}
}

func TestParse_NoJSON(t *testing.T) {
	raw := "I'm sorry, I can't help with that request."

	_, err := ParseTenseQuestions(raw, 5)
	perr := requireParseError(t, err, ErrNoJSON)
	assert.Equal(t, StageLocate, perr.Stage)

	_, err = ParseReadingExercise(raw)
	requireParseError(t, err, ErrNoJSON)
}

func TestParse_ClosingBeforeOpening(t *testing.T) {
	_, err := ParseWritingPrompt("} nothing useful {")
	requireParseError(t, err, ErrNoJSON)
}

func TestParse_MalformedJSON(t *testing.T) {
	raw := `Here you go: {"passage": "Sleep matters", "questions": [ {"question": "Why?",, } ]}`

	_, err := ParseReadingExercise(raw)

	perr := requireParseError(t, err, ErrMalformedJSON)
	assert.Equal(t, StageDecode, perr.Stage)
	assert.False(t, perr.Fenced)
}

func TestParse_FencedFlag(t *testing.T) {
	raw := "```json\n{\"passage\": \"x\", \"questions\": []}\n```"

	_, err := ParseReadingExercise(raw)

	perr := requireParseError(t, err, ErrSchemaViolation)
	assert.True(t, perr.Fenced)
	assert.Equal(t, "questions", perr.Field)
}

func TestParse_WrongJSONTypeIsSchemaViolation(t *testing.T) {
	raw := strings.Replace(mustJSON(t, sampleFeedback()), `"overallScore": 7`, `"overallScore": "seven"`, 1)

	_, err := ParseWritingFeedback(raw)

	perr := requireParseError(t, err, ErrSchemaViolation)
	assert.Equal(t, "overallScore", perr.Field)
}

func TestParseTenseQuestions_WrongJSONTypeCarriesIndex(t *testing.T) {
	raw := `[
		{"question": "She _____ tea.", "options": ["A. drinks", "B. drink", "C. drinking", "D. drunk"], "correctAnswer": "A", "explanation": "Third person."},
		{"question": "They _____ late.", "options": "A. a", "correctAnswer": "B", "explanation": "Plural."}
	]`

	_, err := ParseTenseQuestions(raw, 2)

	perr := requireParseError(t, err, ErrSchemaViolation)
	assert.Equal(t, "[1].options", perr.Field)
}

func TestParseReadingExercise(t *testing.T) {
	want := sampleExercise(5)
	raw := "Here is your exercise:\n" + mustJSON(t, want) + "\nGood luck!"

	got, err := ParseReadingExercise(raw)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseReadingExercise_FourQuestionsRejected(t *testing.T) {
	_, err := ParseReadingExercise(mustJSON(t, sampleExercise(4)))

	perr := requireParseError(t, err, ErrSchemaViolation)
	assert.Equal(t, "questions", perr.Field)
	assert.Contains(t, perr.Reason, "exactly 5")
}

func TestParseReadingExercise_NestedQuestionViolation(t *testing.T) {
	ex := sampleExercise(5)
	ex.Questions[4].Options = append(ex.Questions[4].Options, "E. extra")

	_, err := ParseReadingExercise(mustJSON(t, ex))

	perr := requireParseError(t, err, ErrSchemaViolation)
	assert.Equal(t, "questions[4].options", perr.Field)
}

func TestParseWritingPrompt(t *testing.T) {
	want := sampleWritingPrompt()

	got, err := ParseWritingPrompt(mustJSON(t, want))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ParseWritingPrompt(`{"title": "T", "prompt": "P", "requirements": "write well", "wordCount": "100", "timeLimit": "20", "tips": []}`)
	perr := requireParseError(t, err, ErrSchemaViolation)
	assert.Equal(t, "requirements", perr.Field)

	_, err = ParseWritingPrompt(`{"title": "T", "prompt": "P", "requirements": ["a"], "wordCount": "100", "timeLimit": "20"}`)
	perr = requireParseError(t, err, ErrSchemaViolation)
	assert.Equal(t, "tips", perr.Field)
}

func TestParseWritingFeedback(t *testing.T) {
	want := sampleFeedback()

	got, err := ParseWritingFeedback(mustJSON(t, want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseWritingFeedback_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.WritingFeedback)
		field  string
	}{
		{"overall out of range", func(f *models.WritingFeedback) { f.OverallScore = 11 }, "overallScore"},
		{"no strengths", func(f *models.WritingFeedback) { f.Strengths = nil }, "strengths"},
		{"grammar score zero", func(f *models.WritingFeedback) { f.Grammar.Score = 0 }, "grammar.score"},
		{"missing vocabulary", func(f *models.WritingFeedback) { f.Vocabulary = models.AspectFeedback{} }, "vocabulary"},
		{"empty content feedback", func(f *models.WritingFeedback) { f.Content.Feedback = "" }, "content.feedback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := sampleFeedback()
			tt.mutate(&fb)

			_, err := ParseWritingFeedback(mustJSON(t, fb))

			perr := requireParseError(t, err, ErrSchemaViolation)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}
