package session

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"taskpad/internal/core"
	tokenIssuer "taskpad/pkg/jwt"
)

const cookieName = "session"

var ErrNoSession error = errors.New("no valid session")

// Manager maps an authenticated browser to an identity through a signed,
// expiring token held in a cookie. No session state is kept server-side.
type Manager struct {
	issuer  TokenIssuer
	revoker Revoker
	ttl     time.Duration
}

func NewManager(issuer TokenIssuer, revoker Revoker, ttl time.Duration) *Manager {
	return &Manager{
		issuer:  issuer,
		revoker: revoker,
		ttl:     ttl,
	}
}

// Issue starts a session by setting the cookie to a freshly signed token.
func (m *Manager) Issue(w http.ResponseWriter, identity core.Identity) error {
	token := m.issuer.Generate(tokenIssuer.TokenInfo{
		UserName:   identity.Username,
		Subject:    strconv.FormatUint(uint64(identity.UserID), 10),
		Expiration: m.ttl,
	})

	signed, err := m.issuer.Sign(token)
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Authenticate resolves the request's session cookie to an identity. Any
// missing, tampered, expired or revoked token yields ErrNoSession.
func (m *Manager) Authenticate(r *http.Request) (core.Identity, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return core.Identity{}, ErrNoSession
	}

	claims, err := m.issuer.Validate(cookie.Value)
	if err != nil {
		return core.Identity{}, fmt.Errorf("%w: %w", ErrNoSession, err)
	}

	if m.revoker != nil {
		if jti, ok := claims["jti"].(string); ok && m.revoker.Revoked(jti) {
			return core.Identity{}, fmt.Errorf("%w: token revoked", ErrNoSession)
		}
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return core.Identity{}, fmt.Errorf("%w: missing subject claim", ErrNoSession)
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return core.Identity{}, fmt.Errorf("%w: parse subject claim: %w", ErrNoSession, err)
	}

	username, ok := claims["username"].(string)
	if !ok {
		return core.Identity{}, fmt.Errorf("%w: missing username claim", ErrNoSession)
	}

	return core.Identity{UserID: uint(userID), Username: username}, nil
}

// Clear destroys the session by expiring the cookie on the client.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
