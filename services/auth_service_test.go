package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kimiqo/TechCrush-individual-project/models"
	"github.com/Kimiqo/TechCrush-individual-project/repository"
)

type fakeUserStore struct {
	nextID uint
	users  map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) CreateUser(user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserStore) UserByEmail(email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

const testSecret = "test-secret"

func newAuthService(users *fakeUserStore, notifier *stubNotifier) *AuthService {
	return NewAuthService(users, notifier, testSecret, testLogger())
}

func TestRegisterHashesPassword(t *testing.T) {
	users := newFakeUserStore()
	notifier := &stubNotifier{ok: true}
	svc := newAuthService(users, notifier)

	user, err := svc.Register(&Credentials{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))

	// Welcome email is best-effort but attempted.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "a@b.com", notifier.sent[0].to)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users, &stubNotifier{ok: true})

	_, err := svc.Register(&Credentials{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(&Credentials{Email: "a@b.com", Password: "other-pass"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidatesInput(t *testing.T) {
	svc := newAuthService(newFakeUserStore(), &stubNotifier{ok: true})

	_, err := svc.Register(&Credentials{Email: "nope", Password: "short"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users, &stubNotifier{ok: true})

	registered, err := svc.Register(&Credentials{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	token, user, err := svc.Login(&Credentials{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(registered.ID), claims["sub"])
	assert.Equal(t, "a@b.com", claims["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(users, &stubNotifier{ok: true})

	_, err := svc.Register(&Credentials{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Login(&Credentials{Email: "a@b.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(newFakeUserStore(), &stubNotifier{ok: true})

	_, _, err := svc.Login(&Credentials{Email: "ghost@b.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
