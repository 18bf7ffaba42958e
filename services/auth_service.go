package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kimiqo/TechCrush-individual-project/models"
	"github.com/Kimiqo/TechCrush-individual-project/repository"
)

const tokenLifetime = time.Hour

type AuthService struct {
	users     repository.UserStore
	notifier  Notifier
	jwtSecret string
	validate  *validator.Validate
	log       *logrus.Logger
}

func NewAuthService(users repository.UserStore, notifier Notifier, jwtSecret string, log *logrus.Logger) *AuthService {
	return &AuthService{
		users:     users,
		notifier:  notifier,
		jwtSecret: jwtSecret,
		validate:  validator.New(),
		log:       log,
	}
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) validateCredentials(req *Credentials) error {
	var fields []FieldError
	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		fields = append(fields, FieldError{Field: "email", Message: "a valid email is required"})
	}
	if len(req.Password) < 6 {
		fields = append(fields, FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Register creates a user with a bcrypt password hash and sends a best-effort
// welcome email.
func (s *AuthService) Register(req *Credentials) (*models.User, error) {
	if err := s.validateCredentials(req); err != nil {
		return nil, err
	}

	if _, err := s.users.UserByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, &PersistenceError{Op: "look up user", Err: err}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: req.Email, PasswordHash: string(hash)}
	if err := s.users.CreateUser(user); err != nil {
		return nil, &PersistenceError{Op: "create user", Err: err}
	}

	body := fmt.Sprintf("Thank you for signing up, %s! Start creating quizzes now.", user.Email)
	if !s.notifier.Send(user.Email, "Welcome to QuizMaster!", body) {
		s.log.WithField("email", user.Email).Warn("welcome email failed to send")
	}

	return user, nil
}

// Login verifies the credentials and issues a signed bearer token.
func (s *AuthService) Login(req *Credentials) (string, *models.User, error) {
	user, err := s.users.UserByEmail(req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, &PersistenceError{Op: "look up user", Err: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}

	return signed, user, nil
}
