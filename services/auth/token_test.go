package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/autosphere/storefront/lib/mytime"
)

type offsetNower struct {
	offset time.Duration
}

func (n offsetNower) Now() time.Time {
	return mytime.ExampleTime.Add(n.offset)
}

func TestTokenIssuer(t *testing.T) {
	identity := Identity{UID: "user-1", Email: "marc@example.com", DisplayName: "Marc"}

	t.Run("Issued token verifies to same identity", func(t *testing.T) {
		// given
		issuer := NewTokenIssuer("my_secret", time.Hour, offsetNower{})
		token, err := issuer.Issue(identity)
		assert.NoError(t, err)

		// when
		got, err := issuer.Verify(token)

		// then
		assert.NoError(t, err)
		assert.Equal(t, identity, got)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		// given
		token, err := NewTokenIssuer("my_secret", time.Hour, offsetNower{}).Issue(identity)
		assert.NoError(t, err)

		// when
		_, err = NewTokenIssuer("my_secret", time.Hour, offsetNower{offset: 2 * time.Hour}).Verify(token)

		// then
		assert.Error(t, err)
	})

	t.Run("Token signed with other secret is rejected", func(t *testing.T) {
		// given
		token, err := NewTokenIssuer("other_secret", time.Hour, offsetNower{}).Issue(identity)
		assert.NoError(t, err)

		// when
		_, err = NewTokenIssuer("my_secret", time.Hour, offsetNower{}).Verify(token)

		// then
		assert.Error(t, err)
	})

	t.Run("Identity from bearer header and from cookie", func(t *testing.T) {
		// given
		issuer := NewTokenIssuer("my_secret", time.Hour, offsetNower{})
		token, err := issuer.Issue(identity)
		assert.NoError(t, err)

		withBearer, _ := http.NewRequest(http.MethodGet, "/", nil)
		withBearer.Header.Set("Authorization", "Bearer "+token)
		withCookie, _ := http.NewRequest(http.MethodGet, "/", nil)
		withCookie.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		without, _ := http.NewRequest(http.MethodGet, "/", nil)

		// when
		fromBearer, bearerOK := issuer.IdentityFromRequest(withBearer)
		fromCookie, cookieOK := issuer.IdentityFromRequest(withCookie)
		_, withoutOK := issuer.IdentityFromRequest(without)

		// then
		assert.True(t, bearerOK)
		assert.Equal(t, identity, fromBearer)
		assert.True(t, cookieOK)
		assert.Equal(t, identity, fromCookie)
		assert.False(t, withoutOK)
	})

	t.Run("Login redirect preserves destination", func(t *testing.T) {
		request, _ := http.NewRequest(http.MethodGet, "/checkout/success?session_id=cs_1&vehicle=AMG", nil)

		assert.Equal(t, "/login?from=%2Fvehicles%2Fmclaren-720s", LoginRedirectURL("/vehicles/mclaren-720s"))
		assert.Equal(t, "/checkout/success?session_id=cs_1&vehicle=AMG", RequestDestination(request))
	})
}
