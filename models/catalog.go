package models

// Level describes how content is sized for a difficulty level
type Level struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ReadingWords string `json:"readingWords"`
	Vocabulary   string `json:"vocabulary"`
	WritingWords string `json:"writingWords"`
	TimeLimit    string `json:"timeLimit"`
}

// Catalog lists the enumerated choices offered by each practice screen
type Catalog struct {
	Levels          []Level  `json:"levels"`
	ParagraphTopics []string `json:"paragraphTopics"`
	TenseTypes      []string `json:"tenseTypes"`
	QuestionCounts  []int    `json:"questionCounts"`
	ReadingTopics   []string `json:"readingTopics"`
	WritingTypes    []string `json:"writingTypes"`
	WritingTopics   []string `json:"writingTopics"`
}

var Levels = []Level{
	{
		ID:           "beginner",
		Name:         "Beginner",
		Description:  "Simple texts with basic vocabulary",
		ReadingWords: "100-150 words",
		Vocabulary:   "Simple, common words",
		WritingWords: "100-150 words",
		TimeLimit:    "20-30 minutes",
	},
	{
		ID:           "intermediate",
		Name:         "Intermediate",
		Description:  "Moderate complexity with varied vocabulary",
		ReadingWords: "150-200 words",
		Vocabulary:   "Mix of common and moderate vocabulary",
		WritingWords: "150-250 words",
		TimeLimit:    "30-45 minutes",
	},
	{
		ID:           "advanced",
		Name:         "Advanced",
		Description:  "Complex texts with advanced vocabulary",
		ReadingWords: "200-250 words",
		Vocabulary:   "Advanced vocabulary with complex sentence structures",
		WritingWords: "250-400 words",
		TimeLimit:    "45-60 minutes",
	},
}

var ParagraphTopics = []string{
	"climate change",
	"artificial intelligence",
	"sustainable living",
	"cultural diversity",
	"space exploration",
}

var TenseTypes = []string{
	"Present Simple",
	"Present Continuous",
	"Past Simple",
	"Past Continuous",
	"Present Perfect",
	"Future Simple",
	"Conditional",
	"Inversion",
}

var QuestionCounts = []int{5, 10, 15, 20}

var ReadingTopics = []string{
	"Science and Technology",
	"History and Culture",
	"Environment and Nature",
	"Business and Economics",
	"Arts and Entertainment",
	"Health and Wellness",
}

var WritingTypes = []string{"Essay", "Story", "Letter", "Report", "Review", "Description"}

var WritingTopics = []string{
	"Technology and Innovation",
	"Education and Learning",
	"Environment and Climate",
	"Travel and Culture",
	"Food and Health",
	"Social Media and Communication",
	"Work and Career",
	"Hobbies and Entertainment",
}

// LookupLevel finds a level by id
func LookupLevel(id string) (Level, bool) {
	for _, l := range Levels {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

// DefaultCatalog returns every built-in choice list
func DefaultCatalog() Catalog {
	return Catalog{
		Levels:          Levels,
		ParagraphTopics: ParagraphTopics,
		TenseTypes:      TenseTypes,
		QuestionCounts:  QuestionCounts,
		ReadingTopics:   ReadingTopics,
		WritingTypes:    WritingTypes,
		WritingTopics:   WritingTopics,
	}
}
