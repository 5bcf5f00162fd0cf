package i

import (
	"time"

	"github.com/google/uuid"
)

// EditTokenizer issues and verifies tokens that grant edit rights on a single maze.
type EditTokenizer interface {
	// Issue creates a token for mazeID valid for ttl.
	Issue(mazeID uuid.UUID, ttl time.Duration) (string, error)

	// Verify validates a token and returns the maze it grants access to.
	Verify(token string) (uuid.UUID, error)
}
