package services

import (
	"errors"
	"fmt"
	"strings"

	"englishcoach/models"
)

var ErrInvalidOption = errors.New("option has no A-D letter")

// ParseOptionLetter reads the answer letter from "B. went" (or plain "b").
// The text before the first '.' must be exactly one of A, B, C or D.
func ParseOptionLetter(option string) (string, error) {
	head, _, _ := strings.Cut(option, ".")
	letter := strings.ToUpper(strings.TrimSpace(head))
	switch letter {
	case "A", "B", "C", "D":
		return letter, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOption, option)
}

// CheckAnswers scores answers against questions by position. Unanswered or
// unreadable answers count as wrong.
func CheckAnswers(questions []models.TenseQuestion, answers []string) models.Score {
	score := models.Score{Total: len(questions), Results: make([]models.AnswerResult, 0, len(questions))}
	for i, q := range questions {
		res := models.AnswerResult{Index: i, CorrectAnswer: q.CorrectAnswer}
		if i < len(answers) {
			res.Answer = answers[i]
			if letter, err := ParseOptionLetter(answers[i]); err == nil {
				res.Answer = letter
				res.Correct = letter == q.CorrectAnswer
			}
		}
		if res.Correct {
			score.Correct++
		}
		score.Results = append(score.Results, res)
	}
	return score
}

// AnswersFromMap converts sparse per-index selections into a positional slice.
func AnswersFromMap(selected map[int]string, n int) []string {
	out := make([]string, n)
	for i, a := range selected {
		if i >= 0 && i < n {
			out[i] = a
		}
	}
	return out
}

// WordCount counts whitespace-separated words the way the writing screen does.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
