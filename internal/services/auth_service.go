package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bugtrail/bug-tracker-api/internal/auth"
	"github.com/bugtrail/bug-tracker-api/internal/models"
	"github.com/bugtrail/bug-tracker-api/internal/repository"
)

var (
	ErrEmailTaken           = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and login against the credential store
// and the token service.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *auth.JWTService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// AuthResult is the success payload of both register and login.
type AuthResult struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// RegisterInput holds the fields required to create a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// Register creates a user with a bcrypt-hashed password and issues a token.
// The existence check and the insert are not atomic; the unique index on
// email backstops concurrent registration of the same address.
func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)

	exists, err := s.users.ExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{
		Token:   token,
		Message: "User registered successfully",
	}, nil
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResult{
		Token:   token,
		Message: "Login successful",
	}, nil
}
