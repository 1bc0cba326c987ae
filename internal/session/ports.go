package session

import (
	"github.com/golang-jwt/jwt"

	tokenIssuer "taskpad/pkg/jwt"
)

type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

// Revoker is consulted with the token id of every presented session token.
// A nil Revoker means no revocation store is wired and tokens are trusted
// until they expire.
type Revoker interface {
	Revoked(tokenID string) bool
}
