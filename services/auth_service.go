package services

import (
	"errors"

	"github.com/prodcat-api/dto"
	"github.com/prodcat-api/models"
	"github.com/prodcat-api/repositories"
	"github.com/prodcat-api/utils"
	"github.com/prodcat-api/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tokenName labels issued tokens in the store.
const tokenName = "prodcat-api-token"

// ErrUnauthenticated is returned for any missing, malformed or revoked
// bearer token.
var ErrUnauthenticated = errors.New("unauthenticated")

// invalidCredentials is the single message for unknown e-mail and wrong
// password alike, keyed under a synthetic "user" field so the response never
// reveals which of the two it was.
var invalidCredentials = validation.Errors{"user": {"Invalid user e-mail or password."}}

// AuthService handles registration, login and token revocation
type AuthService struct {
	userRepo  *repositories.UserRepository
	tokenRepo *repositories.AccessTokenRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService() *AuthService {
	return &AuthService{
		userRepo:  repositories.NewUserRepository(),
		tokenRepo: repositories.NewAccessTokenRepository(),
	}
}

// Register validates the input, creates the account with a bcrypt password
// hash and issues a first bearer token.
func (s *AuthService) Register(input map[string]any) (dto.AuthResponse, validation.Errors, error) {
	v := validation.New().
		Field("name", validation.Required(), validation.String()).
		Field("email", validation.Required(), validation.Email(), validation.Unique(s.emailTaken)).
		Field("password", validation.Required(), validation.String(), validation.Confirmed()).
		Messages(map[string]string{
			"name.required":      "Missing user name.",
			"email.required":     "Missing email.",
			"email.unique":       "User with this e-mail already exists.",
			"password.required":  "Missing password.",
			"password.confirmed": "Passwords do not match.",
		})

	if errs := v.Validate(input); errs.Any() {
		return dto.AuthResponse{}, errs, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(stringField(input, "password")), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthResponse{}, nil, err
	}

	user, err := s.userRepo.Create(models.User{
		Name:     stringField(input, "name"),
		Email:    stringField(input, "email"),
		Password: string(hashed),
	})
	if err != nil {
		return dto.AuthResponse{}, nil, err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return dto.AuthResponse{}, nil, err
	}

	return dto.AuthResponse{User: user, Token: token}, nil, nil
}

// Login verifies the credentials and issues a fresh token. Earlier tokens
// stay valid, so concurrent sessions are allowed.
func (s *AuthService) Login(input map[string]any) (dto.AuthResponse, validation.Errors, error) {
	v := validation.New().
		Field("email", validation.Required(), validation.String()).
		Field("password", validation.Required(), validation.String()).
		Messages(map[string]string{
			"email.required":    "Missing email.",
			"password.required": "Missing password.",
		})

	if errs := v.Validate(input); errs.Any() {
		return dto.AuthResponse{}, errs, nil
	}

	user, err := s.userRepo.FindByEmail(stringField(input, "email"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthResponse{}, invalidCredentials, nil
		}
		return dto.AuthResponse{}, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(stringField(input, "password"))) != nil {
		return dto.AuthResponse{}, invalidCredentials, nil
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return dto.AuthResponse{}, nil, err
	}

	return dto.AuthResponse{User: user, Token: token}, nil, nil
}

// Logout revokes every token the user holds.
func (s *AuthService) Logout(userID uint) error {
	return s.tokenRepo.DeleteByUserID(userID)
}

// IssueToken mints an opaque bearer token for the user. The secret is
// stored hashed; the returned plain text form is shown to the client once.
func (s *AuthService) IssueToken(user models.User) (string, error) {
	secret := utils.NewTokenSecret()
	token, err := s.tokenRepo.Create(models.AccessToken{
		UserID:    user.ID,
		Name:      tokenName,
		TokenHash: utils.HashToken(secret),
	})
	if err != nil {
		return "", err
	}
	return utils.FormatToken(token.ID, secret), nil
}

// Authenticate resolves a plain text bearer token to its user. Any parse,
// lookup or hash mismatch collapses into ErrUnauthenticated.
func (s *AuthService) Authenticate(raw string) (models.User, error) {
	id, secret, err := utils.ParseToken(raw)
	if err != nil {
		return models.User{}, ErrUnauthenticated
	}

	token, err := s.tokenRepo.FindByID(id)
	if err != nil {
		return models.User{}, ErrUnauthenticated
	}

	if !utils.HashEquals(token.TokenHash, utils.HashToken(secret)) {
		return models.User{}, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return models.User{}, ErrUnauthenticated
	}

	// Last-used bookkeeping never blocks an otherwise valid request.
	_ = s.tokenRepo.Touch(token.ID)

	return user, nil
}

func (s *AuthService) emailTaken(email string) bool {
	taken, err := s.userRepo.EmailExists(email)
	if err != nil {
		return false
	}
	return taken
}
