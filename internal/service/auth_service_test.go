package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/samadhi-tracker/internal/config"
	"github.com/user/samadhi-tracker/internal/model"
)

// bcrypt at the default production cost makes the suite crawl; the minimum
// cost is fine for correctness tests.
func testAuthConfig() *config.AppConfig {
	return &config.AppConfig{
		JWTSecret:     "test-secret",
		JWTExpiration: time.Hour,
		BcryptCost:    4,
	}
}

func newAuthService(users *fakeUserRepo, activity *fakeActivityRepo) *AuthService {
	return NewAuthService(users, NewActivityService(activity, zerolog.Nop()), testAuthConfig())
}

func TestRegisterAndLogin(t *testing.T) {
	users := &fakeUserRepo{}
	activity := &fakeActivityRepo{}
	svc := newAuthService(users, activity)

	country := "Colombia"
	registered, err := svc.Register(RegisterInput{
		UserID:   "ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Country:  &country,
	}, "1.2.3.4", "test-agent")

	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "ana", registered.User.UserID)
	assert.Equal(t, model.RoleUser, registered.User.Role)
	assert.Equal(t, model.LanguageES, registered.User.Language)
	assert.NotEqual(t, "secret123", registered.User.Password, "password must be stored hashed")

	loggedIn, err := svc.Login("ana", "secret123", "1.2.3.4", "test-agent")
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.Token)

	// Registration and login both leave an audit row.
	require.Len(t, activity.logs, 2)
	assert.Equal(t, model.ActionRegister, activity.logs[0].Action)
	assert.Equal(t, model.ActionLogin, activity.logs[1].Action)
}

func TestRegisterRejectsDuplicateUserID(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{}, &fakeActivityRepo{})

	_, err := svc.Register(RegisterInput{UserID: "ana", Email: "a@example.com", Password: "secret123"}, "", "")
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{UserID: "ana", Email: "b@example.com", Password: "secret123"}, "", "")
	assert.ErrorIs(t, err, ErrUserIDTaken)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{}, &fakeActivityRepo{})

	_, err := svc.Register(RegisterInput{UserID: "ana", Email: "a@example.com", Password: "secret123"}, "", "")
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{UserID: "bob", Email: "a@example.com", Password: "secret123"}, "", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{}, &fakeActivityRepo{})

	_, err := svc.Register(RegisterInput{UserID: "ana", Email: "a@example.com", Password: "secret123"}, "", "")
	require.NoError(t, err)

	_, err = svc.Login("ana", "wrong", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{}, &fakeActivityRepo{})

	_, err := svc.Login("nobody", "whatever", "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRoundTrip(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{}, &fakeActivityRepo{})

	registered, err := svc.Register(RegisterInput{UserID: "ana", Email: "a@example.com", Password: "secret123"}, "", "")
	require.NoError(t, err)

	user, err := svc.Verify(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, user.ID)
	assert.Equal(t, "ana", user.UserID)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{}, &fakeActivityRepo{})

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTokenSignedWithOtherSecret(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users, &fakeActivityRepo{})

	registered, err := svc.Register(RegisterInput{UserID: "ana", Email: "a@example.com", Password: "secret123"}, "", "")
	require.NoError(t, err)

	other := NewAuthService(users, NewActivityService(&fakeActivityRepo{}, zerolog.Nop()), &config.AppConfig{
		JWTSecret:     "different-secret",
		JWTExpiration: time.Hour,
		BcryptCost:    4,
	})
	_, err = other.Verify(registered.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsDeletedUser(t *testing.T) {
	users := &fakeUserRepo{}
	svc := newAuthService(users, &fakeActivityRepo{})

	registered, err := svc.Register(RegisterInput{UserID: "ana", Email: "a@example.com", Password: "secret123"}, "", "")
	require.NoError(t, err)

	require.NoError(t, users.DeleteUser(registered.User.ID))

	_, err = svc.Verify(registered.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenClaims(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{}, &fakeActivityRepo{})

	user := &model.User{ID: "id-1", UserID: "ana", Email: "a@example.com", Role: model.RoleAdmin}
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "id-1", claims["id"])
	assert.Equal(t, "ana", claims["userId"])
	assert.Equal(t, "a@example.com", claims["email"])
	assert.Equal(t, model.RoleAdmin, claims["role"])
}
