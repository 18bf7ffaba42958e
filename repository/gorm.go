package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Kimiqo/TechCrush-individual-project/models"
)

// GormStore implements QuizStore and UserStore on top of gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transact(fn func(tx QuizStore) error) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&GormStore{db: tx}); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func (s *GormStore) CreateQuiz(quiz *models.Quiz) error {
	return s.db.Create(quiz).Error
}

func (s *GormStore) CreateQuestions(questions []models.Question) error {
	return s.db.Create(&questions).Error
}

func (s *GormStore) CreateEmailLog(entry *models.EmailLog) error {
	return s.db.Create(entry).Error
}

func (s *GormStore) QuizByID(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id")
		}).
		First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *GormStore) QuizSummaries(ownerID *uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	query := s.db.Select("id", "title", "email", "created_at").Order("id")
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	}
	err := query.Find(&quizzes).Error
	return quizzes, err
}

func (s *GormStore) AnswerKey(quizID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.
		Select("id", "correct_option_id").
		Where("quiz_id = ?", quizID).
		Order("id").
		Find(&questions).Error
	return questions, err
}

func (s *GormStore) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *GormStore) UserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
