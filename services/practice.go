package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"englishcoach/metrics"
	"englishcoach/models"

	"github.com/rs/zerolog/log"
)

const (
	maxParagraphs = 5
	maxQuestions  = 20
)

// Practice exposes the operations the practice screens call. Each operation
// makes at most one completion request.
type Practice struct {
	completer Completer
	registry  *Registry
	language  string
}

// NewPractice wires the service. language is the translation target, e.g. "Indonesian".
func NewPractice(completer Completer, registry *Registry, language string) *Practice {
	if language == "" {
		language = "Indonesian"
	}
	return &Practice{completer: completer, registry: registry, language: language}
}

func (p *Practice) ListModels() []models.ModelOption {
	return p.registry.ListModels()
}

func (p *Practice) TranslationLanguage() string {
	return p.language
}

func (p *Practice) GenerateParagraph(ctx context.Context, model, topic string, count int) (string, error) {
	if err := requireModel(model); err != nil {
		return "", err
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", invalidInput("Please choose a topic for the paragraph.")
	}
	if count < 1 || count > maxParagraphs {
		return "", invalidInput(fmt.Sprintf("Paragraph count must be between 1 and %d.", maxParagraphs))
	}
	return p.completeText(ctx, UseParagraph, ParagraphRequest(model, topic, count))
}

func (p *Practice) Translate(ctx context.Context, model, text string) (string, error) {
	if err := requireModel(model); err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", invalidInput("There is no paragraph to translate yet.")
	}
	return p.completeText(ctx, UseTranslation, TranslationRequest(model, text, p.language))
}

func (p *Practice) CorrectTranslation(ctx context.Context, model, englishText, userTranslation string) (string, error) {
	if err := requireModel(model); err != nil {
		return "", err
	}
	if strings.TrimSpace(englishText) == "" {
		return "", invalidInput("There is no paragraph to compare against yet.")
	}
	if strings.TrimSpace(userTranslation) == "" {
		return "", invalidInput("Please write your translation first.")
	}
	return p.completeText(ctx, UseCorrection, CorrectionRequest(model, englishText, userTranslation, p.language))
}

func (p *Practice) GenerateTenseQuestions(ctx context.Context, model string, tenseTypes []string, count int) ([]models.TenseQuestion, error) {
	if err := requireModel(model); err != nil {
		return nil, err
	}
	tenses, err := normalizeTenses(tenseTypes)
	if err != nil {
		return nil, err
	}
	if count < 1 || count > maxQuestions {
		return nil, invalidInput(fmt.Sprintf("Number of questions must be between 1 and %d.", maxQuestions))
	}

	raw, err := p.complete(ctx, UseTenseQuestions, TenseQuestionsRequest(model, tenses, count))
	if err != nil {
		return nil, err
	}
	questions, err := ParseTenseQuestions(raw, count)
	if err != nil {
		return nil, p.rejected(UseTenseQuestions, raw, err)
	}
	p.succeeded(UseTenseQuestions)
	return questions, nil
}

func (p *Practice) GenerateReadingExercise(ctx context.Context, model, levelID, topic string) (models.ReadingExercise, error) {
	if err := requireModel(model); err != nil {
		return models.ReadingExercise{}, err
	}
	level, err := requireLevel(levelID)
	if err != nil {
		return models.ReadingExercise{}, err
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return models.ReadingExercise{}, invalidInput("Please choose a topic for the passage.")
	}

	raw, err := p.complete(ctx, UseReadingExercise, ReadingExerciseRequest(model, level, topic))
	if err != nil {
		return models.ReadingExercise{}, err
	}
	exercise, err := ParseReadingExercise(raw)
	if err != nil {
		return models.ReadingExercise{}, p.rejected(UseReadingExercise, raw, err)
	}
	p.succeeded(UseReadingExercise)
	return exercise, nil
}

func (p *Practice) GenerateWritingPrompt(ctx context.Context, model, levelID, writingType, topic string) (models.WritingPrompt, error) {
	if err := requireModel(model); err != nil {
		return models.WritingPrompt{}, err
	}
	level, err := requireLevel(levelID)
	if err != nil {
		return models.WritingPrompt{}, err
	}
	wt, err := requireWritingType(writingType)
	if err != nil {
		return models.WritingPrompt{}, err
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return models.WritingPrompt{}, invalidInput("Please choose a topic for the writing task.")
	}

	raw, err := p.complete(ctx, UseWritingPrompt, WritingPromptRequest(model, level, wt, topic))
	if err != nil {
		return models.WritingPrompt{}, err
	}
	prompt, err := ParseWritingPrompt(raw)
	if err != nil {
		return models.WritingPrompt{}, p.rejected(UseWritingPrompt, raw, err)
	}
	p.succeeded(UseWritingPrompt)
	return prompt, nil
}

func (p *Practice) EvaluateWriting(ctx context.Context, model, levelID, writingType string, task models.WritingPrompt, userText string) (models.WritingFeedback, error) {
	if err := requireModel(model); err != nil {
		return models.WritingFeedback{}, err
	}
	level, err := requireLevel(levelID)
	if err != nil {
		return models.WritingFeedback{}, err
	}
	wt, err := requireWritingType(writingType)
	if err != nil {
		return models.WritingFeedback{}, err
	}
	if strings.TrimSpace(task.Prompt) == "" {
		return models.WritingFeedback{}, invalidInput("Please generate a writing prompt first.")
	}
	if strings.TrimSpace(userText) == "" {
		return models.WritingFeedback{}, invalidInput("Please write something before requesting evaluation.")
	}

	raw, err := p.complete(ctx, UseWritingEvaluation, WritingEvaluationRequest(model, level, wt, task, userText))
	if err != nil {
		return models.WritingFeedback{}, err
	}
	feedback, err := ParseWritingFeedback(raw)
	if err != nil {
		return models.WritingFeedback{}, p.rejected(UseWritingEvaluation, raw, err)
	}
	p.succeeded(UseWritingEvaluation)
	return feedback, nil
}

func (p *Practice) complete(ctx context.Context, use UseCase, req models.CompletionRequest) (string, error) {
	raw, err := p.completer.Complete(ctx, req)
	if err != nil {
		metrics.Generations.WithLabelValues(string(use), "transport_error").Inc()
		if !errors.Is(err, ErrGenerationFailed) {
			log.Error().Err(err).Str("use_case", string(use)).Msg("completer returned an unclassified error")
			err = ErrGenerationFailed
		}
		return "", err
	}
	return raw, nil
}

func (p *Practice) completeText(ctx context.Context, use UseCase, req models.CompletionRequest) (string, error) {
	raw, err := p.complete(ctx, use, req)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		metrics.Generations.WithLabelValues(string(use), "transport_error").Inc()
		log.Error().Str("use_case", string(use)).Str("model", req.Model).Msg("completion returned no text")
		return "", ErrGenerationFailed
	}
	p.succeeded(use)
	return text, nil
}

func (p *Practice) rejected(use UseCase, raw string, err error) error {
	stage := StageValidate
	var perr *ParseError
	if errors.As(err, &perr) {
		stage = perr.Stage
	}
	metrics.ParseFailures.WithLabelValues(string(use), string(stage)).Inc()
	metrics.Generations.WithLabelValues(string(use), "parse_error").Inc()
	log.Warn().Err(err).Str("use_case", string(use)).Str("stage", string(stage)).
		Str("raw", raw).Msg("model response rejected")
	return err
}

func (p *Practice) succeeded(use UseCase) {
	metrics.Generations.WithLabelValues(string(use), "ok").Inc()
}

func requireModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return invalidInput("Please select an AI model.")
	}
	return nil
}

func requireLevel(id string) (models.Level, error) {
	level, ok := models.LookupLevel(strings.ToLower(strings.TrimSpace(id)))
	if !ok {
		return models.Level{}, invalidInput(fmt.Sprintf("Unknown difficulty level %q.", id))
	}
	return level, nil
}

func requireWritingType(t string) (string, error) {
	for _, known := range models.WritingTypes {
		if strings.EqualFold(known, strings.TrimSpace(t)) {
			return known, nil
		}
	}
	return "", invalidInput(fmt.Sprintf("Unknown writing type %q.", t))
}

// normalizeTenses accepts names case-insensitively, drops duplicates and keeps order.
func normalizeTenses(tenseTypes []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, t := range tenseTypes {
		name := strings.TrimSpace(t)
		if name == "" {
			continue
		}
		canonical := ""
		for _, known := range models.TenseTypes {
			if strings.EqualFold(known, name) {
				canonical = known
				break
			}
		}
		if canonical == "" {
			return nil, invalidInput(fmt.Sprintf("Unknown tense type %q.", name))
		}
		if !seen[canonical] {
			seen[canonical] = true
			out = append(out, canonical)
		}
	}
	if len(out) == 0 {
		return nil, invalidInput("Please select at least one tense type")
	}
	return out, nil
}
