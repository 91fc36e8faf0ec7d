package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"fuelogistics/internal/auth"
	"fuelogistics/internal/middleware"
	"fuelogistics/internal/models"
	"fuelogistics/internal/store"
)

// AuthController handles registration, login and the current-user lookup.
// Sessions are stateless JWTs; logout is a client-side token discard.
type AuthController struct {
	users *store.UserStore
}

func NewAuthController(users *store.UserStore) *AuthController {
	return &AuthController{users: users}
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a user and returns it with a fresh token.
// POST /api/register
func (ac *AuthController) Register(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}

	var errs []FieldError
	if input.Username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	}
	if input.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}
	if input.Role != models.RoleAdmin && input.Role != models.RoleUser {
		errs = append(errs, FieldError{Field: "role", Message: "role must be admin or user"})
	}
	if len(errs) > 0 {
		respondValidationError(c, errs)
		return
	}

	if _, err := ac.users.GetByUsername(input.Username); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Error("Error checking existing username.")
		respondInternalError(c)
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		logrus.WithError(err).Error("Error hashing password.")
		respondInternalError(c)
		return
	}

	user := models.User{Username: input.Username, Password: hashed, Role: input.Role}
	if err := ac.users.Create(&user); err != nil {
		logrus.WithError(err).Error("Error creating user.")
		respondInternalError(c)
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		logrus.WithError(err).Error("Error generating token.")
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login verifies credentials and returns a token. Usernames that look like
// email addresses are matched lowercased.
// POST /api/login
func (ac *AuthController) Login(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}

	username := input.Username
	if strings.Contains(username, "@") {
		username = strings.ToLower(username)
	}

	user, err := ac.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		logrus.WithError(err).Error("Error fetching user for login.")
		respondInternalError(c)
		return
	}

	if !auth.ComparePassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		logrus.WithError(err).Error("Error generating token.")
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout exists for API symmetry with the dashboard; tokens are stateless.
// POST /api/logout
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CurrentUser returns the authenticated user's record.
// GET /api/user
func (ac *AuthController) CurrentUser(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	user, err := ac.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		logrus.WithError(err).Error("Error fetching current user.")
		respondInternalError(c)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers returns every account. Admin only.
// GET /api/users
func (ac *AuthController) ListUsers(c *gin.Context) {
	users, err := ac.users.List()
	if err != nil {
		logrus.WithError(err).Error("Error listing users.")
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// DeleteUser removes an account. Admin only.
// DELETE /api/users/:id
func (ac *AuthController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ac.users.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		logrus.WithError(err).WithField("user_id", id).Error("Error deleting user.")
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
