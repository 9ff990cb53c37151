package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aldrik-cruze/historical-news/internal/model"
	"github.com/aldrik-cruze/historical-news/internal/quiz"
)

type QuestionGenerator interface {
	Generate(event model.EventRecord) []model.QuizQuestion
}

type SessionStore interface {
	Create(event model.EventRecord, questions []model.QuizQuestion) model.QuizSession
	Answer(id string, index int, option string) error
	Reveal(id string) (model.QuizSession, error)
	Delete(id string) bool
}

type QuizHandler struct {
	generator QuestionGenerator
	sessions  SessionStore
}

func NewQuizHandler(generator QuestionGenerator, sessions SessionStore) *QuizHandler {
	return &QuizHandler{generator: generator, sessions: sessions}
}

// CreateQuiz turns a selected event into a live quiz session. Correct
// answers stay server-side until the session is revealed.
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid quiz payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event payload"})
		return
	}

	event := model.EventRecord{
		Text:     req.Text,
		Year:     *req.Year,
		Type:     req.Type,
		ImageURL: req.ImageURL,
		PageURL:  req.PageURL,
	}
	event.Normalize()

	questions := h.generator.Generate(event)
	session := h.sessions.Create(event, questions)

	res := QuizResponse{
		ID:            session.ID,
		Event:         toEventResponse(session.Event),
		Questions:     make([]QuestionResponse, 0, len(session.Questions)),
		QuestionCount: len(session.Questions),
	}
	for _, q := range session.Questions {
		res.Questions = append(res.Questions, QuestionResponse{
			Prompt:     q.Prompt,
			Options:    q.Options,
			Difficulty: q.Difficulty,
		})
	}

	c.JSON(http.StatusCreated, res)
}

func (h *QuizHandler) AnswerQuiz(c *gin.Context) {
	id := c.Param("id")

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer payload"})
		return
	}

	err := h.sessions.Answer(id, *req.Index, req.Option)
	switch {
	case errors.Is(err, quiz.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
	case errors.Is(err, quiz.ErrRevealed):
		c.JSON(http.StatusConflict, gin.H{"error": "Quiz already revealed"})
	case errors.Is(err, quiz.ErrBadIndex), errors.Is(err, quiz.ErrBadOption):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		slog.Error("error recording answer", "quiz_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	default:
		c.Status(http.StatusNoContent)
	}
}

func (h *QuizHandler) RevealQuiz(c *gin.Context) {
	id := c.Param("id")

	session, err := h.sessions.Reveal(id)
	if errors.Is(err, quiz.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	if err != nil {
		slog.Error("error revealing quiz", "quiz_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	res := RevealResponse{
		ID:        session.ID,
		Score:     session.Score(),
		Total:     len(session.Questions),
		Questions: make([]ResultQuestionResponse, 0, len(session.Questions)),
	}
	for i, q := range session.Questions {
		selected, answered := session.Answers[i]
		res.Questions = append(res.Questions, ResultQuestionResponse{
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Selected:      selected,
			Answered:      answered,
			Correct:       answered && selected == q.CorrectAnswer,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *QuizHandler) DismissQuiz(c *gin.Context) {
	id := c.Param("id")

	if !h.sessions.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
