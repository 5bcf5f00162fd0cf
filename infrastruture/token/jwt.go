package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// editClaims scopes a token to a single maze.
type editClaims struct {
	MazeID string `json:"maze_id"`
	jwt.StandardClaims
}

// EditTokenService signs and verifies maze edit tokens.
// Implements i.EditTokenizer.
type EditTokenService struct {
	secretKey string
	issuer    string
	now       func() time.Time
}

var _ i.EditTokenizer = &EditTokenService{}

// NewEditTokenService creates a token service that signs with secretKey using HS256.
func NewEditTokenService(secretKey, issuer string) *EditTokenService {
	return &EditTokenService{
		secretKey: secretKey,
		issuer:    issuer,
		now:       time.Now,
	}
}

// Issue creates a token granting edit rights on mazeID for ttl.
func (s *EditTokenService) Issue(mazeID uuid.UUID, ttl time.Duration) (string, error) {
	now := s.now().UTC()
	claims := editClaims{
		MazeID: mazeID.String(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    s.issuer,
			Subject:   mazeID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// Verify parses and validates a token, returning the maze it is scoped to.
func (s *EditTokenService) Verify(tokenString string) (uuid.UUID, error) {
	claims := &editClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.getSigningKey)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return uuid.Nil, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, claims.Issuer)
	}

	mazeID, err := uuid.Parse(claims.MazeID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad maze id: %s", ErrInvalidToken, err)
	}
	return mazeID, nil
}

// getSigningKey returns the signing key for token validation.
func (s *EditTokenService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
