package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Kimiqo/TechCrush-individual-project/models"
	"github.com/Kimiqo/TechCrush-individual-project/repository"
)

// AuthUser identifies the signed-in caller in authenticated mode. A nil
// AuthUser means the deployment runs open and the client supplies the email.
type AuthUser struct {
	ID    uint
	Email string
}

type QuizService struct {
	store    repository.QuizStore
	notifier Notifier
	validate *validator.Validate
	log      *logrus.Logger
}

func NewQuizService(store repository.QuizStore, notifier Notifier, log *logrus.Logger) *QuizService {
	return &QuizService{
		store:    store,
		notifier: notifier,
		validate: validator.New(),
		log:      log,
	}
}

type CreateQuizRequest struct {
	Title     string                  `json:"title"`
	Email     string                  `json:"email"`
	Questions []CreateQuestionRequest `json:"questions"`
}

type CreateQuestionRequest struct {
	QuestionText    string                `json:"questionText"`
	Options         []CreateOptionRequest `json:"options"`
	CorrectOptionID int                   `json:"correctOptionId"`
}

type CreateOptionRequest struct {
	Text string `json:"text"`
}

type SubmitAnswersRequest struct {
	Email   string   `json:"email"`
	Answers []Answer `json:"answers"`
}

func (s *QuizService) validateCreate(req *CreateQuizRequest) error {
	var fields []FieldError
	if strings.TrimSpace(req.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "title is required"})
	}
	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		fields = append(fields, FieldError{Field: "email", Message: "a valid email is required"})
	}
	if len(req.Questions) == 0 {
		fields = append(fields, FieldError{Field: "questions", Message: "at least one question is required"})
	}
	for i, q := range req.Questions {
		name := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.QuestionText) == "" {
			fields = append(fields, FieldError{Field: name + ".questionText", Message: "question text is required"})
		}
		if len(q.Options) < 2 {
			fields = append(fields, FieldError{Field: name + ".options", Message: "at least two options are required"})
		}
		if q.CorrectOptionID < 1 || q.CorrectOptionID > len(q.Options) {
			fields = append(fields, FieldError{Field: name + ".correctOptionId", Message: "must reference one of the options"})
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// CreateQuiz persists the quiz, its questions and the creation email log as
// one unit, then fires a best-effort notification. In authenticated mode the
// owner's email overrides anything the client sent.
func (s *QuizService) CreateQuiz(req *CreateQuizRequest, owner *AuthUser) (*models.Quiz, error) {
	if owner != nil {
		req.Email = owner.Email
	}
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}

	quiz := &models.Quiz{Title: req.Title, Email: req.Email}
	if owner != nil {
		quiz.UserID = &owner.ID
	}

	var questions []models.Question
	err := s.store.Transact(func(tx repository.QuizStore) error {
		if err := tx.CreateQuiz(quiz); err != nil {
			return err
		}
		questions = make([]models.Question, 0, len(req.Questions))
		for _, q := range req.Questions {
			options := make(models.OptionList, 0, len(q.Options))
			for i, opt := range q.Options {
				options = append(options, models.Option{ID: i + 1, Text: opt.Text})
			}
			questions = append(questions, models.Question{
				QuizID:          quiz.ID,
				QuestionText:    q.QuestionText,
				Options:         options,
				CorrectOptionID: q.CorrectOptionID,
			})
		}
		if err := tx.CreateQuestions(questions); err != nil {
			return err
		}
		return tx.CreateEmailLog(&models.EmailLog{
			QuizID:    quiz.ID,
			Recipient: req.Email,
			Type:      models.EmailTypeCreation,
		})
	})
	if err != nil {
		return nil, &PersistenceError{Op: "create quiz", Err: err}
	}
	quiz.Questions = questions

	subject := fmt.Sprintf("Quiz %q Created", quiz.Title)
	body := fmt.Sprintf("Your quiz %q with %d question(s) has been created successfully.", quiz.Title, len(quiz.Questions))
	if !s.notifier.Send(quiz.Email, subject, body) {
		s.log.WithFields(logrus.Fields{"quiz_id": quiz.ID, "recipient": quiz.Email}).Warn("creation notification failed")
	}

	return quiz, nil
}

// ListQuizzes returns quiz summaries ordered by id; in authenticated mode only
// the owner's quizzes.
func (s *QuizService) ListQuizzes(owner *AuthUser) ([]models.Quiz, error) {
	var ownerID *uint
	if owner != nil {
		ownerID = &owner.ID
	}
	quizzes, err := s.store.QuizSummaries(ownerID)
	if err != nil {
		return nil, &PersistenceError{Op: "list quizzes", Err: err}
	}
	return quizzes, nil
}

// GetQuiz returns the quiz with its questions, correct option ids included.
func (s *QuizService) GetQuiz(id uint) (*models.Quiz, error) {
	quiz, err := s.store.QuizByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get quiz", Err: err}
	}
	return quiz, nil
}

func (s *QuizService) validateSubmit(req *SubmitAnswersRequest) error {
	var fields []FieldError
	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		fields = append(fields, FieldError{Field: "email", Message: "a valid email is required"})
	}
	if len(req.Answers) == 0 {
		fields = append(fields, FieldError{Field: "answers", Message: "at least one answer is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// SubmitAnswers scores a submission and records the submission email log in
// one transaction, then fires a best-effort notification. The result is
// returned regardless of the notification outcome.
func (s *QuizService) SubmitAnswers(quizID uint, req *SubmitAnswersRequest, submitter *AuthUser) (*ScoreResult, error) {
	if submitter != nil {
		req.Email = submitter.Email
	}
	if err := s.validateSubmit(req); err != nil {
		return nil, err
	}

	var (
		quizTitle string
		result    ScoreResult
	)
	err := s.store.Transact(func(tx repository.QuizStore) error {
		quiz, err := tx.QuizByID(quizID)
		if err != nil {
			return err
		}
		quizTitle = quiz.Title

		key, err := tx.AnswerKey(quizID)
		if err != nil {
			return err
		}
		result, err = ScoreAnswers(key, req.Answers)
		if err != nil {
			return err
		}

		return tx.CreateEmailLog(&models.EmailLog{
			QuizID:    quizID,
			Recipient: req.Email,
			Type:      models.EmailTypeSubmission,
		})
	})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, ErrQuizNotFound
	case errors.Is(err, ErrEmptyQuiz):
		return nil, ErrEmptyQuiz
	case err != nil:
		return nil, &PersistenceError{Op: "submit answers", Err: err}
	}

	subject := fmt.Sprintf("Quiz Results for %q", quizTitle)
	body := fmt.Sprintf("You scored %d/%d (%s%%) on %q.", result.Score, result.Total, result.Percentage, quizTitle)
	if !s.notifier.Send(req.Email, subject, body) {
		s.log.WithFields(logrus.Fields{"quiz_id": quizID, "recipient": req.Email}).Warn("submission notification failed")
	}

	return &result, nil
}
