package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kimiqo/TechCrush-individual-project/services"
)

type QuizHandler struct {
	quizService *services.QuizService
	log         *logrus.Logger
}

func NewQuizHandler(quizService *services.QuizService, log *logrus.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		log:         log,
	}
}

// currentUser returns the authenticated identity, or nil when the deployment
// runs without the auth gate.
func currentUser(c *gin.Context) *services.AuthUser {
	userID, ok := c.Get("user_id")
	if !ok {
		return nil
	}
	email, _ := c.Get("email")
	emailStr, _ := email.(string)
	return &services.AuthUser{ID: userID.(uint), Email: emailStr}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	quiz, err := h.quizService.CreateQuiz(&req, currentUser(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) GetQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes(currentUser(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuizByID(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return
	}

	quiz, err := h.quizService.GetQuiz(uint(quizID))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) SubmitAnswers(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz ID"})
		return
	}

	var req services.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.quizService.SubmitAnswers(uint(quizID), &req, currentUser(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *QuizHandler) renderError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	case errors.Is(err, services.ErrQuizNotFound), errors.Is(err, services.ErrEmptyQuiz):
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
	default:
		h.log.WithError(err).Error("quiz operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}
}
