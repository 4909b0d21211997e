package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/user/samadhi-tracker/internal/config"
	"github.com/user/samadhi-tracker/internal/model"
	"github.com/user/samadhi-tracker/internal/repository"
)

var (
	ErrUserIDTaken        = errors.New("user id already in use")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid user or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	UserID   string  `json:"userId" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Country  *string `json:"country,omitempty"`
	Language string  `json:"language" validate:"omitempty,oneof=ES EN"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// AuthService handles registration, login and token verification.
type AuthService struct {
	Users    repository.UserRepositoryInterface
	Activity *ActivityService
	Cfg      *config.AppConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepositoryInterface, activity *ActivityService, cfg *config.AppConfig) *AuthService {
	return &AuthService{Users: users, Activity: activity, Cfg: cfg}
}

// Register creates an account after checking both unique identities, then
// issues a token and logs the registration.
func (s *AuthService) Register(input RegisterInput, ip, userAgent string) (*AuthResponse, error) {
	if _, err := s.Users.GetUserByUserID(input.UserID); err == nil {
		return nil, ErrUserIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.Users.GetUserByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.Cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	language := input.Language
	if language == "" {
		language = model.LanguageES
	}

	user := &model.User{
		UserID:   input.UserID,
		Email:    input.Email,
		Password: string(hash),
		Role:     model.RoleUser,
		Country:  input.Country,
		Language: language,
	}
	if _, err := s.Users.CreateUser(user); err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.Activity.Record(user.ID, model.ActionRegister, "New user registered", ip, userAgent)

	return &AuthResponse{Token: token, User: user}, nil
}

// Login validates credentials by public user id and issues a token.
func (s *AuthService) Login(userID, password, ip, userAgent string) (*AuthResponse, error) {
	user, err := s.Users.GetUserByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	s.Activity.Record(user.ID, model.ActionLogin, "User logged in", ip, userAgent)

	return &AuthResponse{Token: token, User: user}, nil
}

// Verify parses a token and resolves its subject against the store.
func (s *AuthService) Verify(tokenString string) (*model.User, error) {
	claims, err := ParseToken(tokenString, s.Cfg.JWTSecret)
	if err != nil {
		return nil, err
	}
	id, _ := claims["id"].(string)
	if id == "" {
		return nil, ErrInvalidToken
	}
	user, err := s.Users.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// GenerateToken signs an HS256 token carrying the user's identity and role.
func (s *AuthService) GenerateToken(user *model.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":     user.ID,
		"userId": user.UserID,
		"email":  user.Email,
		"role":   user.Role,
		"exp":    time.Now().Add(s.Cfg.JWTExpiration).Unix(),
	})
	return token.SignedString([]byte(s.Cfg.JWTSecret))
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
