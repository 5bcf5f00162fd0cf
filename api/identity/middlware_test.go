package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubTokenizer struct {
	tokens map[string]uuid.UUID
}

func (s *stubTokenizer) Issue(mazeID uuid.UUID, _ time.Duration) (string, error) {
	token := "token-" + mazeID.String()
	s.tokens[token] = mazeID
	return token, nil
}

func (s *stubTokenizer) Verify(token string) (uuid.UUID, error) {
	id, ok := s.tokens[token]
	if !ok {
		return uuid.Nil, errors.New("unknown token")
	}
	return id, nil
}

func newTestEngine(ts *stubTokenizer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authoriz(ts))
	r.POST("/mazes/:ID", RequireMazeScope(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthorization(t *testing.T) {
	ts := &stubTokenizer{tokens: map[string]uuid.UUID{}}
	r := newTestEngine(ts)

	mazeID := uuid.New()
	token, _ := ts.Issue(mazeID, time.Minute)

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{name: "valid token for maze", path: "/mazes/" + mazeID.String(), header: "Bearer " + token, status: http.StatusNoContent},
		{name: "lower case scheme", path: "/mazes/" + mazeID.String(), header: "bearer " + token, status: http.StatusNoContent},
		{name: "missing header", path: "/mazes/" + mazeID.String(), status: http.StatusUnauthorized},
		{name: "malformed header", path: "/mazes/" + mazeID.String(), header: token, status: http.StatusUnauthorized},
		{name: "unknown token", path: "/mazes/" + mazeID.String(), header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "token for another maze", path: "/mazes/" + uuid.NewString(), header: "Bearer " + token, status: http.StatusForbidden},
		{name: "bad maze id", path: "/mazes/not-a-uuid", header: "Bearer " + token, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
