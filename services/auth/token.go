package auth

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/autosphere/storefront/lib/mytime"
)

const (
	SessionCookieName = "autosphere_session"
	loginPath         = "/login"
)

type Authenticator interface {
	IdentityFromRequest(r *http.Request) (Identity, bool)
}

type claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	nower  mytime.Nower
}

func NewTokenIssuer(secret string, ttl time.Duration, nower mytime.Nower) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		nower:  nower,
	}
}

func (ti *TokenIssuer) Issue(identity Identity) (string, error) {
	now := ti.nower.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: identity.Email,
		Name:  identity.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	})

	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %s", err)
	}
	return signed, nil
}

func (ti *TokenIssuer) Verify(tokenString string) (Identity, error) {
	parsed := claims{}
	_, err := jwt.ParseWithClaims(tokenString, &parsed, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(ti.nower.Now))
	if err != nil {
		return Identity{}, fmt.Errorf("invalid token: %s", err)
	}
	if parsed.Subject == "" {
		return Identity{}, fmt.Errorf("invalid token: missing subject")
	}

	return Identity{
		UID:         parsed.Subject,
		Email:       parsed.Email,
		DisplayName: parsed.Name,
	}, nil
}

// IdentityFromRequest looks for a bearer token first and falls back to the session cookie.
func (ti *TokenIssuer) IdentityFromRequest(r *http.Request) (Identity, bool) {
	tokenString := bearerToken(r)
	if tokenString == "" {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			return Identity{}, false
		}
		tokenString = cookie.Value
	}

	identity, err := ti.Verify(tokenString)
	if err != nil {
		return Identity{}, false
	}
	return identity, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}

// LoginRedirectURL points at the login entry point and carries the destination to return to.
func LoginRedirectURL(from string) string {
	return loginPath + "?" + url.Values{"from": []string{from}}.Encode()
}

// RequestDestination is the path plus query of the request, used as return destination after login.
func RequestDestination(r *http.Request) string {
	return r.URL.RequestURI()
}
