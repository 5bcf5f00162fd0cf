// Package identity authorizes requests that modify a maze.
package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextMazeID is the key used to store the maze a token grants access to in the Gin context.
	ContextMazeID = "mazeID"
)

// Authoriz verifies the bearer edit token and stores the maze it is scoped to in the context.
func Authoriz(ts i.EditTokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing edit token"})
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		mazeID, err := ts.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid edit token"})
			return
		}

		c.Set(ContextMazeID, mazeID)
		c.Next()
	}
}

// RequireMazeScope rejects requests whose token was issued for a maze other than the ID path parameter.
// It must run after Authoriz.
func RequireMazeScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		scoped, ok := c.Get(ContextMazeID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing edit token"})
			return
		}

		requested, err := uuid.Parse(c.Param("ID"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
			return
		}

		if id, ok := scoped.(uuid.UUID); !ok || id != requested {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "edit token does not grant access to this maze"})
			return
		}
		c.Next()
	}
}
