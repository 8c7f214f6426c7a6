package services

import (
	"errors"
	"time"

	"github.com/M-harib/TaskFlow/database"
	"github.com/M-harib/TaskFlow/models"
	"github.com/M-harib/TaskFlow/utils/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Use the JWTClaims from token package
type JWTClaims = token.JWTClaims

type AuthServiceInterface interface {
	SignUp(db *database.Database, username, password string) error
	Login(db *database.Database, username, password string) (string, error)
	ValidateToken(tokenString string) (*JWTClaims, error)
	HashPassword(password string) (string, error)
	ComparePasswords(hashedPassword, password string) error
}

type AuthService struct {
	jwtSecret     []byte
	jwtExpiration time.Duration
}

func NewAuthService(jwtSecret string, jwtExpirationHours int) *AuthService {
	return &AuthService{
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: time.Duration(jwtExpirationHours) * time.Hour,
	}
}

// SignUp registers a new user. The plaintext password is bcrypt-hashed and
// never persisted or logged. Signup does not log the user in; callers obtain
// a token through Login.
func (s *AuthService) SignUp(db *database.Database, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	var existing models.User
	err := db.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		// A concurrent signup can slip past the lookup; the unique index
		// reports it as a duplicate either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return err
	}

	return nil
}

// Login verifies the credentials and issues a signed token whose subject is
// the user id. Unknown username and wrong password both return
// ErrInvalidCredentials so responses cannot be used to enumerate accounts.
func (s *AuthService) Login(db *database.Database, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidInput
	}

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := s.ComparePasswords(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	tokenString, err := token.GenerateToken(user.ID, user.Username, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken uses the token utility to validate tokens
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	return token.ValidateToken(tokenString, s.jwtSecret)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
