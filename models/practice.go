package models

// ModelOption is a selectable remote model and its display label
type ModelOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompletionRequest is one prompt sent to the completion endpoint
type CompletionRequest struct {
	Model        string  `json:"model"`
	Prompt       string  `json:"prompt"`
	SystemPrompt string  `json:"systemPrompt,omitempty"`
	MaxTokens    int     `json:"maxTokens"`
	Temperature  float32 `json:"temperature"`
	TopP         float32 `json:"topP"`
}

// TenseQuestion is a multiple-choice question with four lettered options.
// Reading exercises reuse the same shape.
type TenseQuestion struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"len=4,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required,oneof=A B C D"`
	Explanation   string   `json:"explanation" validate:"required"`
}

// ReadingExercise is a passage followed by exactly five comprehension questions
type ReadingExercise struct {
	Passage   string          `json:"passage" validate:"required"`
	Questions []TenseQuestion `json:"questions" validate:"len=5,dive"`
}

// WritingPrompt is a generated writing task
type WritingPrompt struct {
	Title        string   `json:"title" validate:"required"`
	Prompt       string   `json:"prompt" validate:"required"`
	Requirements []string `json:"requirements" validate:"required,min=1,dive,required"`
	WordCount    string   `json:"wordCount" validate:"required"`
	TimeLimit    string   `json:"timeLimit" validate:"required"`
	Tips         []string `json:"tips" validate:"required,dive,required"`
}

// GrammarFeedback scores grammar and lists concrete issues
type GrammarFeedback struct {
	Score  int      `json:"score" validate:"min=1,max=10"`
	Issues []string `json:"issues" validate:"required"`
}

// AspectFeedback scores one aspect of a piece of writing
type AspectFeedback struct {
	Score    int    `json:"score" validate:"min=1,max=10"`
	Feedback string `json:"feedback" validate:"required"`
}

// WritingFeedback is the evaluation of a learner's writing
type WritingFeedback struct {
	OverallScore int             `json:"overallScore" validate:"min=1,max=10"`
	Strengths    []string        `json:"strengths" validate:"required,min=1"`
	Improvements []string        `json:"improvements" validate:"required,min=1"`
	Grammar      GrammarFeedback `json:"grammar" validate:"required"`
	Vocabulary   AspectFeedback  `json:"vocabulary" validate:"required"`
	Structure    AspectFeedback  `json:"structure" validate:"required"`
	Content      AspectFeedback  `json:"content" validate:"required"`
}

// AnswerResult is the outcome for a single question
type AnswerResult struct {
	Index         int    `json:"index"`
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
}

// Score is the result of checking a learner's answers
type Score struct {
	Correct int            `json:"correct"`
	Total   int            `json:"total"`
	Results []AnswerResult `json:"results"`
}
