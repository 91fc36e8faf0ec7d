package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// FieldError reports one violated field in a request body. A 400 response
// enumerates every violation, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func respondValidationError(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation error",
		"errors":  errs,
	})
}

func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
}

func respondInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// parseID reads the :id path parameter. A malformed id cannot name any
// record, so it reports not-found rather than a validation error.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return 0, false
	}
	return uint(id), true
}
