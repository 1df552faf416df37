package viewstate

import (
	"context"

	"englishcoach/models"
	"englishcoach/services"
)

// ParagraphScreen generates an English paragraph, then translates it or
// corrects the learner's own translation.
type ParagraphScreen struct {
	Model           string       `json:"model"`
	Topic           string       `json:"topic"`
	Count           int          `json:"count"`
	Paragraph       Task[string] `json:"paragraph"`
	UserTranslation string       `json:"userTranslation"`
	Translation     Task[string] `json:"translation"`
	Correction      Task[string] `json:"correction"`
}

func NewParagraphScreen(model string) *ParagraphScreen {
	return &ParagraphScreen{Model: model, Topic: models.ParagraphTopics[0], Count: 1}
}

func (s *ParagraphScreen) busy() bool {
	return s.Paragraph.Busy() || s.Translation.Busy() || s.Correction.Busy()
}

func (s *ParagraphScreen) SetParams(model, topic string, count int) error {
	if s.busy() {
		return ErrBusy
	}
	s.Model, s.Topic, s.Count = model, topic, count
	return nil
}

func (s *ParagraphScreen) SetUserTranslation(text string) error {
	if s.Correction.Busy() {
		return ErrBusy
	}
	s.UserTranslation = text
	return nil
}

// Generate replaces the paragraph. A new paragraph clears translation work on the old one.
func (s *ParagraphScreen) Generate(ctx context.Context, p *services.Practice) error {
	err := Run(ctx, &s.Paragraph, services.UseParagraph, func(ctx context.Context) (string, error) {
		return p.GenerateParagraph(ctx, s.Model, s.Topic, s.Count)
	})
	if err == nil {
		s.UserTranslation = ""
		s.Translation.Reset()
		s.Correction.Reset()
	}
	return err
}

func (s *ParagraphScreen) Translate(ctx context.Context, p *services.Practice) error {
	if !s.Paragraph.HasValue {
		return ErrNotReady
	}
	return Run(ctx, &s.Translation, services.UseTranslation, func(ctx context.Context) (string, error) {
		return p.Translate(ctx, s.Model, s.Paragraph.Value)
	})
}

func (s *ParagraphScreen) Correct(ctx context.Context, p *services.Practice) error {
	if !s.Paragraph.HasValue {
		return ErrNotReady
	}
	return Run(ctx, &s.Correction, services.UseCorrection, func(ctx context.Context) (string, error) {
		return p.CorrectTranslation(ctx, s.Model, s.Paragraph.Value, s.UserTranslation)
	})
}

func (s *ParagraphScreen) Reset() {
	*s = *NewParagraphScreen(s.Model)
}

// TenseScreen is the multiple-choice tense drill.
type TenseScreen struct {
	Model      string                       `json:"model"`
	TenseTypes []string                     `json:"tenseTypes"`
	Count      int                          `json:"count"`
	Questions  Task[[]models.TenseQuestion] `json:"questions"`
	Quiz       Quiz                         `json:"quiz"`
}

func NewTenseScreen(model string) *TenseScreen {
	return &TenseScreen{Model: model, TenseTypes: []string{models.TenseTypes[0]}, Count: models.QuestionCounts[0]}
}

// Phase folds the quiz progress into the request phase.
func (s *TenseScreen) Phase() Phase {
	if s.Questions.Ready() {
		return s.Quiz.phase()
	}
	return phaseOf(&s.Questions)
}

func (s *TenseScreen) SetParams(model string, tenseTypes []string, count int) error {
	if s.Questions.Busy() {
		return ErrBusy
	}
	s.Model, s.Count = model, count
	s.TenseTypes = append([]string(nil), tenseTypes...)
	return nil
}

// ToggleTense adds or removes one tense from the selection.
func (s *TenseScreen) ToggleTense(tense string) error {
	if s.Questions.Busy() {
		return ErrBusy
	}
	for i, t := range s.TenseTypes {
		if t == tense {
			s.TenseTypes = append(s.TenseTypes[:i], s.TenseTypes[i+1:]...)
			return nil
		}
	}
	s.TenseTypes = append(s.TenseTypes, tense)
	return nil
}

func (s *TenseScreen) Generate(ctx context.Context, p *services.Practice) error {
	err := Run(ctx, &s.Questions, services.UseTenseQuestions, func(ctx context.Context) ([]models.TenseQuestion, error) {
		return p.GenerateTenseQuestions(ctx, s.Model, s.TenseTypes, s.Count)
	})
	if err == nil {
		s.Quiz.clear()
	}
	return err
}

func (s *TenseScreen) SelectAnswer(index int, option string) error {
	if !s.Questions.Ready() {
		return ErrNotReady
	}
	return s.Quiz.selectAnswer(s.Questions.Value, index, option)
}

func (s *TenseScreen) CheckAnswers() (models.Score, error) {
	if !s.Questions.Ready() {
		return models.Score{}, ErrNotReady
	}
	return s.Quiz.check(s.Questions.Value)
}

func (s *TenseScreen) Reset() {
	model, tenses, count := s.Model, s.TenseTypes, s.Count
	*s = TenseScreen{Model: model, TenseTypes: tenses, Count: count}
}

// ReadingScreen is a passage with five comprehension questions.
type ReadingScreen struct {
	Model    string                       `json:"model"`
	Level    string                       `json:"level"`
	Topic    string                       `json:"topic"`
	Exercise Task[models.ReadingExercise] `json:"exercise"`
	Quiz     Quiz                         `json:"quiz"`
}

func NewReadingScreen(model string) *ReadingScreen {
	return &ReadingScreen{Model: model, Level: models.Levels[0].ID, Topic: models.ReadingTopics[0]}
}

func (s *ReadingScreen) Phase() Phase {
	if s.Exercise.Ready() {
		return s.Quiz.phase()
	}
	return phaseOf(&s.Exercise)
}

func (s *ReadingScreen) SetParams(model, level, topic string) error {
	if s.Exercise.Busy() {
		return ErrBusy
	}
	s.Model, s.Level, s.Topic = model, level, topic
	return nil
}

func (s *ReadingScreen) Generate(ctx context.Context, p *services.Practice) error {
	err := Run(ctx, &s.Exercise, services.UseReadingExercise, func(ctx context.Context) (models.ReadingExercise, error) {
		return p.GenerateReadingExercise(ctx, s.Model, s.Level, s.Topic)
	})
	if err == nil {
		s.Quiz.clear()
	}
	return err
}

func (s *ReadingScreen) SelectAnswer(index int, option string) error {
	if !s.Exercise.Ready() {
		return ErrNotReady
	}
	return s.Quiz.selectAnswer(s.Exercise.Value.Questions, index, option)
}

func (s *ReadingScreen) CheckAnswers() (models.Score, error) {
	if !s.Exercise.Ready() {
		return models.Score{}, ErrNotReady
	}
	return s.Quiz.check(s.Exercise.Value.Questions)
}

func (s *ReadingScreen) Reset() {
	*s = ReadingScreen{Model: s.Model, Level: s.Level, Topic: s.Topic}
}

// WritingScreen generates a writing task and evaluates the learner's text.
type WritingScreen struct {
	Model       string                       `json:"model"`
	Level       string                       `json:"level"`
	WritingType string                       `json:"writingType"`
	Topic       string                       `json:"topic"`
	Prompt      Task[models.WritingPrompt]   `json:"prompt"`
	Text        string                       `json:"text"`
	Feedback    Task[models.WritingFeedback] `json:"feedback"`
}

func NewWritingScreen(model string) *WritingScreen {
	return &WritingScreen{
		Model:       model,
		Level:       models.Levels[0].ID,
		WritingType: models.WritingTypes[0],
		Topic:       models.WritingTopics[0],
	}
}

func (s *WritingScreen) SetParams(model, level, writingType, topic string) error {
	if s.Prompt.Busy() || s.Feedback.Busy() {
		return ErrBusy
	}
	s.Model, s.Level, s.WritingType, s.Topic = model, level, writingType, topic
	return nil
}

func (s *WritingScreen) SetText(text string) error {
	if s.Feedback.Busy() {
		return ErrBusy
	}
	s.Text = text
	return nil
}

func (s *WritingScreen) WordCount() int {
	return services.WordCount(s.Text)
}

// GeneratePrompt fetches a new task and discards the text written for the old one.
func (s *WritingScreen) GeneratePrompt(ctx context.Context, p *services.Practice) error {
	err := Run(ctx, &s.Prompt, services.UseWritingPrompt, func(ctx context.Context) (models.WritingPrompt, error) {
		return p.GenerateWritingPrompt(ctx, s.Model, s.Level, s.WritingType, s.Topic)
	})
	if err == nil {
		s.Text = ""
		s.Feedback.Reset()
	}
	return err
}

func (s *WritingScreen) Evaluate(ctx context.Context, p *services.Practice) error {
	if !s.Prompt.HasValue {
		return ErrNoPrompt
	}
	return Run(ctx, &s.Feedback, services.UseWritingEvaluation, func(ctx context.Context) (models.WritingFeedback, error) {
		return p.EvaluateWriting(ctx, s.Model, s.Level, s.WritingType, s.Prompt.Value, s.Text)
	})
}

func (s *WritingScreen) Reset() {
	*s = WritingScreen{Model: s.Model, Level: s.Level, WritingType: s.WritingType, Topic: s.Topic}
}
