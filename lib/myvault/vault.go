package myvault

import (
	"context"
	"time"

	"github.com/autosphere/storefront/lib/mystore"
)

const (
	CurrentToken = "currentToken"
)

// Token holds the credentials an identity provider handed out for one user.
type Token struct {
	ProviderName string
	UserUID      string
	SessionUID   string
	Scopes       string
	CreatedAt    time.Time
	LastModified *time.Time
	AccessToken  string `datastore:",noindex"`
	RefreshToken string `datastore:",noindex"`
	ExpiresIn    *time.Time
}

type VaultReader interface {
	Get(c context.Context, uid string) (Token, bool, error)
}

type VaultReadWriter interface {
	VaultReader
	Put(c context.Context, uid string, value Token) error
}

func New(c context.Context) (VaultReadWriter, func(), error) {
	return mystore.New[Token](c)
}

// TokenUID is the vault key of the current token of a user at a provider.
func TokenUID(providerName string, userUID string) string {
	return CurrentToken + "_" + providerName + "_" + userUID
}
