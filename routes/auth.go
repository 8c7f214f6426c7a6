package routes

import (
	"errors"
	"net/http"

	"github.com/M-harib/TaskFlow/database"
	"github.com/M-harib/TaskFlow/services"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func RegisterAuthRoutes(router *gin.Engine, db *database.Database, authService services.AuthServiceInterface) {
	router.POST("/signup", func(c *gin.Context) { SignUp(c, db, authService) })
	router.POST("/login", func(c *gin.Context) { Login(c, db, authService) })
}

func SignUp(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	var request credentialsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}

	if err := authService.SignUp(db, request.Username, request.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		case errors.Is(err, services.ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

func Login(c *gin.Context, db *database.Database, authService services.AuthServiceInterface) {
	var request credentialsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		return
	}

	token, err := authService.Login(db, request.Username, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password required"})
		case errors.Is(err, services.ErrInvalidCredentials):
			// Identical body for unknown user and wrong password.
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}
