package services

import (
	"fmt"
	"strings"

	"englishcoach/models"
)

// jsonOnlySystemPrompt is sent as the system message for every structured use case.
const jsonOnlySystemPrompt = `You are a precise content generator for an English learning application.
You always respond with ONLY valid JSON: no markdown, no code fences, no comments and no text before or after the JSON.
You follow the requested key names, array lengths and allowed values exactly.`

func newRequest(model, prompt string) models.CompletionRequest {
	return models.CompletionRequest{
		Model:       model,
		Prompt:      prompt,
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
		TopP:        defaultTopP,
	}
}

// ParagraphRequest asks for count paragraphs about topic.
func ParagraphRequest(model, topic string, count int) models.CompletionRequest {
	prompt := fmt.Sprintf("Write a short paragraph about %s", topic)
	if count > 1 {
		prompt = fmt.Sprintf("Generate %d paragraphs about: %s", count, topic)
	}
	return newRequest(model, prompt)
}

// TranslationRequest asks for a translation of English text into language.
func TranslationRequest(model, text, language string) models.CompletionRequest {
	return newRequest(model, fmt.Sprintf("Translate this English text to %s:\n\n%s", language, text))
}

// CorrectionRequest asks the model to correct a learner's translation.
func CorrectionRequest(model, englishText, userTranslation, language string) models.CompletionRequest {
	return newRequest(model, fmt.Sprintf(
		`Below is an English paragraph and a %[1]s translation written by a student. Please correct any errors in the %[1]s translation and provide feedback.

English paragraph:
%[2]s

Student's %[1]s translation:
%[3]s

Corrections and feedback:`,
		language, englishText, userTranslation,
	))
}

// TenseQuestionsRequest asks for exactly count multiple-choice tense questions.
func TenseQuestionsRequest(model string, tenseTypes []string, count int) models.CompletionRequest {
	tenses := strings.Join(tenseTypes, ", ")
	req := newRequest(model, fmt.Sprintf(
		`Generate exactly %[1]d multiple-choice questions to practice the following English tenses: %[2]s.
Distribute the questions evenly among the selected tenses.

Rules:
- The response must be a JSON array containing exactly %[1]d objects.
- Every object has exactly these keys: "question", "options", "correctAnswer", "explanation".
- "options" is an array of exactly 4 strings labelled "A. ", "B. ", "C. " and "D. " in that order.
- "correctAnswer" is a single letter: "A", "B", "C" or "D".
- "explanation" explains in detail why the answer is correct.

Example of one element:
{
  "question": "_____ you _____ to the party yesterday?",
  "options": ["A. Did, go", "B. Have, gone", "C. Were, going", "D. Are, going"],
  "correctAnswer": "A",
  "explanation": "The correct answer is A (Did, go) because this is a past simple question. We use 'did' as an auxiliary verb followed by the base form 'go' for a finished event at a specific time in the past (yesterday)."
}

Tenses: %[2]s
Number of questions: %[1]d

Respond with ONLY the JSON array, no additional text.`,
		count, tenses,
	))
	req.SystemPrompt = jsonOnlySystemPrompt
	req.MaxTokens = 2000
	return req
}

// ReadingExerciseRequest asks for a passage and exactly five questions.
func ReadingExerciseRequest(model string, level models.Level, topic string) models.CompletionRequest {
	req := newRequest(model, fmt.Sprintf(
		`You are a reading comprehension generator. Create a %[1]s-level reading passage about "%[2]s" for English language learners.

Requirements:
- Passage: %[3]s
- Vocabulary: %[4]s
- Exactly 5 multiple-choice questions with exactly 4 options each (A, B, C, D)
- Each question must test a different comprehension skill: main idea, details, inference, vocabulary, and author's purpose
- "correctAnswer" is a single letter: "A", "B", "C" or "D"

JSON Format (respond with ONLY this JSON object, no other text):
{
  "passage": "Your reading passage text here...",
  "questions": [
    {
      "question": "Question text?",
      "options": [
        "A. First option",
        "B. Second option",
        "C. Third option",
        "D. Fourth option"
      ],
      "correctAnswer": "A",
      "explanation": "Brief explanation of why this answer is correct."
    }
  ]
}

Topic: %[2]s
Level: %[1]s

Respond with ONLY the JSON object, no additional text.`,
		level.ID, topic, level.ReadingWords, level.Vocabulary,
	))
	req.SystemPrompt = jsonOnlySystemPrompt
	req.MaxTokens = 2500
	req.Temperature = 0.7
	return req
}

// WritingPromptRequest asks for a writing task of the given type.
func WritingPromptRequest(model string, level models.Level, writingType, topic string) models.CompletionRequest {
	req := newRequest(model, fmt.Sprintf(
		`You are a writing instructor. Create a %[1]s-level %[2]s writing prompt about "%[3]s" for English language learners.

Requirements:
- Create an engaging and clear writing prompt
- Include specific requirements based on the writing type and level
- Provide helpful tips for completing the task
- Set appropriate word count: %[4]s
- Time limit: %[5]s

JSON Format (respond with ONLY this JSON object, no other text):
{
  "title": "Engaging title for the writing task",
  "prompt": "Clear and detailed writing prompt that explains what the student should write about...",
  "requirements": [
    "Specific requirement 1",
    "Specific requirement 2",
    "Specific requirement 3"
  ],
  "wordCount": "%[4]s",
  "timeLimit": "%[5]s",
  "tips": [
    "Helpful tip 1",
    "Helpful tip 2",
    "Helpful tip 3"
  ]
}

Writing Type: %[6]s
Topic: %[3]s
Level: %[1]s

Respond with ONLY the JSON object, no additional text.`,
		level.ID, strings.ToLower(writingType), topic, level.WritingWords, level.TimeLimit, writingType,
	))
	req.SystemPrompt = jsonOnlySystemPrompt
	req.MaxTokens = 1500
	req.Temperature = 0.7
	return req
}

// WritingEvaluationRequest asks for scored feedback on the learner's text.
func WritingEvaluationRequest(model string, level models.Level, writingType string, task models.WritingPrompt, userText string) models.CompletionRequest {
	req := newRequest(model, fmt.Sprintf(
		`You are an experienced English writing instructor. Evaluate this %[1]s-level %[2]s writing sample and provide detailed feedback.

Original Prompt: "%[3]s"
Requirements: %[4]s

Student's Writing:
"""
%[5]s
"""

Provide comprehensive feedback with scores (whole numbers from 1 to 10) and specific comments.

JSON Format (respond with ONLY this JSON object, no other text):
{
  "overallScore": 8,
  "strengths": [
    "Specific strength 1",
    "Specific strength 2",
    "Specific strength 3"
  ],
  "improvements": [
    "Specific improvement suggestion 1",
    "Specific improvement suggestion 2",
    "Specific improvement suggestion 3"
  ],
  "grammar": {
    "score": 8,
    "issues": [
      "Specific grammar issue 1",
      "Specific grammar issue 2"
    ]
  },
  "vocabulary": {
    "score": 7,
    "feedback": "Detailed feedback about vocabulary usage..."
  },
  "structure": {
    "score": 8,
    "feedback": "Detailed feedback about text structure and organization..."
  },
  "content": {
    "score": 8,
    "feedback": "Detailed feedback about content quality and relevance..."
  }
}

Level: %[1]s
Writing Type: %[6]s

Respond with ONLY the JSON object, no additional text.`,
		level.ID, strings.ToLower(writingType), task.Prompt, strings.Join(task.Requirements, ", "), userText, writingType,
	))
	req.SystemPrompt = jsonOnlySystemPrompt
	req.MaxTokens = 2000
	req.Temperature = 0.3
	return req
}
