package controllers

import (
	"errors"
	"log"
	"net/http"

	"blogapi/services"

	"github.com/gin-gonic/gin"
)

// fail translates a service error into its HTTP shape. Unknown errors are
// logged and answered with a generic 500 so internals never leak.
func fail(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": resource + " already exists"})
	case errors.Is(err, services.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not available"})
	default:
		log.Printf("%s: unexpected error: %v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
