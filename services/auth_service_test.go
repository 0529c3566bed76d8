package services

import (
	"testing"

	"github.com/prodcat-api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBob(t *testing.T, s *AuthService) dto.AuthResponse {
	t.Helper()
	response, verrs, err := s.Register(map[string]any{
		"name":                  "Bob",
		"email":                 "bob@example.com",
		"password":              "password",
		"password_confirmation": "password",
	})
	require.NoError(t, err)
	require.False(t, verrs.Any(), "unexpected validation errors: %v", verrs)
	return response
}

func TestRegisterSuccess(t *testing.T) {
	setupTestDB(t)
	s := NewAuthService()

	response := registerBob(t, s)

	assert.NotZero(t, response.User.ID)
	assert.Equal(t, "Bob", response.User.Name)
	assert.NotEmpty(t, response.Token)
	// The password is stored hashed.
	assert.NotEqual(t, "password", response.User.Password)

	user, err := s.Authenticate(response.Token)
	require.NoError(t, err)
	assert.Equal(t, response.User.ID, user.ID)
}

func TestRegisterRequiredFields(t *testing.T) {
	setupTestDB(t)
	s := NewAuthService()

	_, verrs, err := s.Register(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Missing user name."}, verrs["name"])
	assert.Equal(t, []string{"Missing email."}, verrs["email"])
	assert.Equal(t, []string{"Missing password."}, verrs["password"])
}

func TestRegisterInvalidEmail(t *testing.T) {
	setupTestDB(t)
	s := NewAuthService()

	_, verrs, err := s.Register(map[string]any{
		"name":                  "Bob",
		"email":                 "invalid email address",
		"password":              "password",
		"password_confirmation": "password",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"The email must be a valid email address."}, verrs["email"])
}

func TestRegisterPasswordMismatch(t *testing.T) {
	setupTestDB(t)
	s := NewAuthService()

	_, verrs, err := s.Register(map[string]any{
		"name":                  "Bob",
		"email":                 "bob@example.com",
		"password":              "password",
		"password_confirmation": "password2",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Passwords do not match."}, verrs["password"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	s := NewAuthService()
	registerBob(t, s)

	_, verrs, err := s.Register(map[string]any{
		"name":                  "Other Bob",
		"email":                 "bob@example.com",
		"password":              "password",
		"password_confirmation": "password",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"User with this e-mail already exists."}, verrs["email"])
}

func TestLoginSuccessKeepsOlderTokens(t *testing.T) {
	setupTestDB(t)
	s := NewAuthService()
	first := registerBob(t, s)

	response, verrs, err := s.Login(map[string]any{
		"email":    "bob@example.com",
		"password": "password",
	})
	require.NoError(t, err)
	require.False(t, verrs.Any())
	assert.NotEqual(t, first.Token, response.Token)

	// Both sessions stay valid.
	_, err = s.Authenticate(first.Token)
	assert.NoError(t, err)
	_, err = s.Authenticate(response.Token)
	assert.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	setupTestDB(t)
	s := NewAuthService()
	registerBob(t, s)

	_, wrongPassword, err := s.Login(map[string]any{
		"email":    "bob@example.com",
		"password": "nope",
	})
	require.NoError(t, err)

	_, unknownEmail, err := s.Login(map[string]any{
		"email":    "nobody@example.com",
		"password": "password",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Invalid user e-mail or password."}, wrongPassword["user"])
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestLoginRequiredFields(t *testing.T) {
	setupTestDB(t)
	s := NewAuthService()

	_, verrs, err := s.Login(map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Missing email."}, verrs["email"])
	assert.Equal(t, []string{"Missing password."}, verrs["password"])
}

func TestLogoutRevokesEveryToken(t *testing.T) {
	setupTestDB(t)
	s := NewAuthService()
	first := registerBob(t, s)

	second, verrs, err := s.Login(map[string]any{
		"email":    "bob@example.com",
		"password": "password",
	})
	require.NoError(t, err)
	require.False(t, verrs.Any())

	require.NoError(t, s.Logout(first.User.ID))

	_, err = s.Authenticate(first.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = s.Authenticate(second.Token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthenticateRejectsTamperedTokens(t *testing.T) {
	setupTestDB(t)
	s := NewAuthService()
	response := registerBob(t, s)

	for _, token := range []string{
		"",
		"garbage",
		"1|wrong-secret",
		"9999|" + response.Token,
		response.Token + "x",
	} {
		_, err := s.Authenticate(token)
		assert.ErrorIs(t, err, ErrUnauthenticated, "token %q", token)
	}
}
