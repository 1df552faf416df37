package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"englishcoach/models"

	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply string
	err   error
	calls []models.CompletionRequest
}

func (s *stubCompleter) Complete(_ context.Context, req models.CompletionRequest) (string, error) {
	s.calls = append(s.calls, req)
	return s.reply, s.err
}

func sampleQuestion(i int) models.TenseQuestion {
	letters := []string{"A", "B", "C", "D"}
	return models.TenseQuestion{
		Question:      fmt.Sprintf("Question %d: She _____ to school every day.", i+1),
		Options:       []string{"A. go", "B. goes", "C. going", "D. gone"},
		CorrectAnswer: letters[i%4],
		Explanation:   "Third person singular takes -s in the present simple.",
	}
}

func sampleQuestions(n int) []models.TenseQuestion {
	out := make([]models.TenseQuestion, n)
	for i := range out {
		out[i] = sampleQuestion(i)
	}
	return out
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	return string(b)
}

func sampleExercise(questions int) models.ReadingExercise {
	return models.ReadingExercise{
		Passage:   "Sleep is one of the most important parts of a healthy life. Adults need seven to nine hours each night.",
		Questions: sampleQuestions(questions),
	}
}

func sampleWritingPrompt() models.WritingPrompt {
	return models.WritingPrompt{
		Title:        "My Favourite Healthy Meal",
		Prompt:       "Describe a healthy meal you enjoy and explain why it is good for you.",
		Requirements: []string{"Name the ingredients", "Explain one health benefit", "Use the present simple"},
		WordCount:    "100-150 words",
		TimeLimit:    "20-30 minutes",
		Tips:         []string{"Plan before you write", "Check your verbs"},
	}
}

func sampleFeedback() models.WritingFeedback {
	return models.WritingFeedback{
		OverallScore: 7,
		Strengths:    []string{"Clear topic sentence"},
		Improvements: []string{"Vary sentence length"},
		Grammar:      models.GrammarFeedback{Score: 6, Issues: []string{"'He go' should be 'He goes'"}},
		Vocabulary:   models.AspectFeedback{Score: 7, Feedback: "Good range of food words."},
		Structure:    models.AspectFeedback{Score: 8, Feedback: "Logical order."},
		Content:      models.AspectFeedback{Score: 7, Feedback: "Relevant to the prompt."},
	}
}
