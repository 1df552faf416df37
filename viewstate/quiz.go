package viewstate

import (
	"fmt"

	"englishcoach/models"
	"englishcoach/services"
)

// Quiz holds the learner's selections for a list of questions.
type Quiz struct {
	Answers map[int]string `json:"answers,omitempty"`
	Score   *models.Score  `json:"score,omitempty"`
}

func (q *Quiz) phase() Phase {
	switch {
	case q.Score != nil:
		return PhaseScored
	case len(q.Answers) > 0:
		return PhaseAnswering
	default:
		return PhaseReady
	}
}

func (q *Quiz) selectAnswer(questions []models.TenseQuestion, index int, option string) error {
	if q.Score != nil {
		return ErrScored
	}
	if index < 0 || index >= len(questions) {
		return fmt.Errorf("%w: %d", ErrNoOption, index)
	}
	letter, err := services.ParseOptionLetter(option)
	if err != nil {
		return err
	}
	if q.Answers == nil {
		q.Answers = map[int]string{}
	}
	q.Answers[index] = letter
	return nil
}

func (q *Quiz) check(questions []models.TenseQuestion) (models.Score, error) {
	if q.Score != nil {
		return *q.Score, ErrScored
	}
	score := services.CheckAnswers(questions, services.AnswersFromMap(q.Answers, len(questions)))
	q.Score = &score
	return score, nil
}

func (q *Quiz) clear() {
	*q = Quiz{}
}
