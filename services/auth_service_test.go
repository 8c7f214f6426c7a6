package services

import (
	"testing"

	"github.com/M-harib/TaskFlow/models"
	"github.com/M-harib/TaskFlow/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestAuthService() *AuthService {
	return NewAuthService("test-secret", 1)
}

func TestSignUp(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	authService := newTestAuthService()

	t.Run("Valid Signup", func(t *testing.T) {
		err := authService.SignUp(db, "alice", "pw1")
		assert.NoError(t, err)

		var user models.User
		err = db.DB.Where("username = ?", "alice").First(&user).Error
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "pw1", user.PasswordHash)
	})

	t.Run("Missing Username", func(t *testing.T) {
		err := authService.SignUp(db, "", "pw1")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Missing Password", func(t *testing.T) {
		err := authService.SignUp(db, "bob", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		err := authService.SignUp(db, "alice", "another-password")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("Unique Index Violation Translates To Duplicate", func(t *testing.T) {
		// A concurrent signup can insert between the existence check and
		// the create; the store must then report the duplicate as
		// gorm.ErrDuplicatedKey for SignUp to map it to ErrUserExists.
		duplicate := models.User{
			ID:           uuid.New(),
			Username:     "alice",
			PasswordHash: "other-hash",
		}
		err := db.DB.Create(&duplicate).Error
		assert.Error(t, err)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}

func TestLogin(t *testing.T) {
	db, close := testutils.SetupTestDB()
	defer close()

	authService := newTestAuthService()
	assert.NoError(t, authService.SignUp(db, "alice", "pw1"))

	t.Run("Valid Credentials Yield Token With User Subject", func(t *testing.T) {
		tokenString, err := authService.Login(db, "alice", "pw1")
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		var user models.User
		assert.NoError(t, db.DB.Where("username = ?", "alice").First(&user).Error)

		claims, err := authService.ValidateToken(tokenString)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.ID.String(), claims.Subject)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		_, err := authService.Login(db, "alice", "")
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = authService.Login(db, "", "pw1")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Wrong Password And Unknown User Are Indistinguishable", func(t *testing.T) {
		_, wrongPasswordErr := authService.Login(db, "alice", "wrong")
		_, unknownUserErr := authService.Login(db, "nobody", "pw1")

		assert.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)
		assert.Equal(t, wrongPasswordErr, unknownUserErr)
	})

	t.Run("Token From Other Secret Rejected", func(t *testing.T) {
		otherService := NewAuthService("other-secret", 1)
		tokenString, err := otherService.Login(db, "alice", "pw1")
		assert.NoError(t, err)

		_, err = authService.ValidateToken(tokenString)
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	authService := newTestAuthService()

	hash, err := authService.HashPassword("pw1")
	assert.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.NoError(t, authService.ComparePasswords(hash, "pw1"))
	assert.Error(t, authService.ComparePasswords(hash, "pw2"))

	// Per-password random salt: hashing twice never yields the same digest.
	otherHash, err := authService.HashPassword("pw1")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, otherHash)
}
