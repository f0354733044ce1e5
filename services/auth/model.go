package auth

import (
	"strings"
	"time"
)

const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
)

type User struct {
	UID          string
	Email        string
	DisplayName  string
	PasswordHash string `datastore:",noindex"`
	Provider     string
	CreatedAt    time.Time
	LastModified *time.Time
}

func (u User) Identity() Identity {
	return Identity{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
}

// Identity is the authenticated caller as seen by the other services.
type Identity struct {
	UID         string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

type OAuthSession struct {
	UID       string
	Verifier  string `datastore:",noindex"`
	ReturnURL string
	CreatedAt time.Time
	Done      bool
}

type SignupRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	FullName string `json:"fullName" form:"fullName"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	From     string `json:"-" form:"from"`
}

type SessionResponse struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
