package routes

import (
	"net/http"

	"englishcoach/models"
	"englishcoach/services"

	"github.com/gin-gonic/gin"
)

type practiceHandlers struct {
	practice *services.Practice
}

// SetupPracticeRoutes registers every practice endpoint on router
func SetupPracticeRoutes(router gin.IRouter, practice *services.Practice) {
	h := &practiceHandlers{practice: practice}

	router.GET("/models", h.listModels)
	router.GET("/catalog", getCatalog)

	router.POST("/paragraph", h.generateParagraph)
	translation := router.Group("/translation")
	{
		translation.POST("", h.translate)
		translation.POST("/correct", h.correctTranslation)
	}

	tense := router.Group("/tense")
	{
		tense.POST("/questions", h.generateTenseQuestions)
		tense.POST("/check", checkTenseAnswers)
	}

	reading := router.Group("/reading")
	{
		reading.POST("/exercise", h.generateReadingExercise)
		reading.POST("/check", checkReadingAnswers)
	}

	writing := router.Group("/writing")
	{
		writing.POST("/prompt", h.generateWritingPrompt)
		writing.POST("/evaluate", h.evaluateWriting)
	}
}

func (h *practiceHandlers) listModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": h.practice.ListModels()})
}

func getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultCatalog())
}

func (h *practiceHandlers) generateParagraph(c *gin.Context) {
	var req struct {
		Model string `json:"model"`
		Topic string `json:"topic"`
		Count int    `json:"count"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	paragraph, err := h.practice.GenerateParagraph(c.Request.Context(), req.Model, req.Topic, req.Count)
	if err != nil {
		respondError(c, services.UseParagraph, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paragraph": paragraph})
}

func (h *practiceHandlers) translate(c *gin.Context) {
	var req struct {
		Model string `json:"model"`
		Text  string `json:"text"`
	}
	if !bindJSON(c, &req) {
		return
	}

	translation, err := h.practice.Translate(c.Request.Context(), req.Model, req.Text)
	if err != nil {
		respondError(c, services.UseTranslation, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"translation": translation,
		"language":    h.practice.TranslationLanguage(),
	})
}

func (h *practiceHandlers) correctTranslation(c *gin.Context) {
	var req struct {
		Model           string `json:"model"`
		EnglishText     string `json:"englishText"`
		UserTranslation string `json:"userTranslation"`
	}
	if !bindJSON(c, &req) {
		return
	}

	feedback, err := h.practice.CorrectTranslation(c.Request.Context(), req.Model, req.EnglishText, req.UserTranslation)
	if err != nil {
		respondError(c, services.UseCorrection, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}

func (h *practiceHandlers) generateTenseQuestions(c *gin.Context) {
	var req struct {
		Model      string   `json:"model"`
		TenseTypes []string `json:"tenseTypes"`
		Count      int      `json:"count"`
	}
	if !bindJSON(c, &req) {
		return
	}

	questions, err := h.practice.GenerateTenseQuestions(c.Request.Context(), req.Model, req.TenseTypes, req.Count)
	if err != nil {
		respondError(c, services.UseTenseQuestions, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func checkTenseAnswers(c *gin.Context) {
	var req struct {
		Questions []models.TenseQuestion `json:"questions" binding:"required"`
		Answers   []string               `json:"answers"`
	}
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, services.CheckAnswers(req.Questions, req.Answers))
}

func (h *practiceHandlers) generateReadingExercise(c *gin.Context) {
	var req struct {
		Model string `json:"model"`
		Level string `json:"level"`
		Topic string `json:"topic"`
	}
	if !bindJSON(c, &req) {
		return
	}

	exercise, err := h.practice.GenerateReadingExercise(c.Request.Context(), req.Model, req.Level, req.Topic)
	if err != nil {
		respondError(c, services.UseReadingExercise, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func checkReadingAnswers(c *gin.Context) {
	var req struct {
		Exercise models.ReadingExercise `json:"exercise"`
		Answers  []string               `json:"answers"`
	}
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, services.CheckAnswers(req.Exercise.Questions, req.Answers))
}

func (h *practiceHandlers) generateWritingPrompt(c *gin.Context) {
	var req struct {
		Model       string `json:"model"`
		Level       string `json:"level"`
		WritingType string `json:"writingType"`
		Topic       string `json:"topic"`
	}
	if !bindJSON(c, &req) {
		return
	}

	prompt, err := h.practice.GenerateWritingPrompt(c.Request.Context(), req.Model, req.Level, req.WritingType, req.Topic)
	if err != nil {
		respondError(c, services.UseWritingPrompt, err)
		return
	}
	c.JSON(http.StatusOK, prompt)
}

func (h *practiceHandlers) evaluateWriting(c *gin.Context) {
	var req struct {
		Model       string               `json:"model"`
		Level       string               `json:"level"`
		WritingType string               `json:"writingType"`
		Prompt      models.WritingPrompt `json:"prompt"`
		Text        string               `json:"text"`
	}
	if !bindJSON(c, &req) {
		return
	}

	feedback, err := h.practice.EvaluateWriting(c.Request.Context(), req.Model, req.Level, req.WritingType, req.Prompt, req.Text)
	if err != nil {
		respondError(c, services.UseWritingEvaluation, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"feedback":  feedback,
		"wordCount": services.WordCount(req.Text),
	})
}
