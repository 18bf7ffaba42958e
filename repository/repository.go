package repository

import (
	"errors"

	"github.com/Kimiqo/TechCrush-individual-project/models"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// QuizStore is the persistence surface the quiz workflow consumes. Calls made
// on the store passed to the Transact callback participate in that transaction;
// returning an error from the callback rolls the whole unit back.
type QuizStore interface {
	Transact(fn func(tx QuizStore) error) error
	CreateQuiz(quiz *models.Quiz) error
	CreateQuestions(questions []models.Question) error
	CreateEmailLog(entry *models.EmailLog) error
	QuizByID(id uint) (*models.Quiz, error)
	QuizSummaries(ownerID *uint) ([]models.Quiz, error)
	AnswerKey(quizID uint) ([]models.Question, error)
}

// UserStore is the persistence surface the auth service consumes.
type UserStore interface {
	CreateUser(user *models.User) error
	UserByEmail(email string) (*models.User, error)
}
