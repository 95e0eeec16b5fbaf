package handlers

import "github.com/gin-gonic/gin"

// respondError writes the failure envelope shared by every endpoint.
// Store errors deliberately expose the underlying description; this backend
// is an internal tool and the raw text is relied on for debugging.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}
