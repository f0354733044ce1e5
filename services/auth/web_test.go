package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/autosphere/storefront/lib/mypublisher"
	"github.com/autosphere/storefront/lib/mystore"
	"github.com/autosphere/storefront/lib/mytime"
	"github.com/autosphere/storefront/lib/myuuid"
	"github.com/autosphere/storefront/lib/myvault"
)

func TestAuthService(t *testing.T) {

	t.Run("Signup creates user and session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, userStore, _, _, uuider, _, publisher := setup(t, ctrl)

		// given
		uuider.EXPECT().Create().Return("user-1")
		publisher.EXPECT().Publish(gomock.Any(), TopicName, SignedUp{
			UserUID:  "user-1",
			Email:    "marc@example.com",
			Provider: ProviderPassword,
		}).Return(nil)

		// when
		response := doJSON(router, http.MethodPost, "/api/auth/signup", `{"email":" Marc@Example.com ","password":"secret123","fullName":"Marc"}`, "")

		// then
		assert.Equal(t, http.StatusCreated, response.Code)
		resp := SessionResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, Identity{UID: "user-1", Email: "marc@example.com", DisplayName: "Marc"}, resp.User)
		assert.NotNil(t, sessionCookie(response))

		user, exists, err := userStore.Get(ctx, "marc@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
	})

	t.Run("Signup with existing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, userStore, _, _, uuider, _, _ := setup(t, ctrl)

		// given
		givenUser(t, ctx, userStore, "user-1", "marc@example.com", "secret123")
		uuider.EXPECT().Create().Return("user-2")

		// when
		response := doJSON(router, http.MethodPost, "/api/auth/signup", `{"email":"marc@example.com","password":"secret123"}`, "")

		// then
		assert.Equal(t, http.StatusConflict, response.Code)
	})

	t.Run("Signup with short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _, _ := setup(t, ctrl)

		// when
		response := doJSON(router, http.MethodPost, "/api/auth/signup", `{"email":"marc@example.com","password":"abc"}`, "")

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
	})

	t.Run("Login and fetch session with bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, userStore, _, _, _, _, publisher := setup(t, ctrl)

		// given
		givenUser(t, ctx, userStore, "user-1", "marc@example.com", "secret123")
		publisher.EXPECT().Publish(gomock.Any(), TopicName, SignedIn{
			UserUID:  "user-1",
			Provider: ProviderPassword,
			At:       mytime.ExampleTime.Format(time.RFC3339),
		}).Return(nil)

		// when
		response := doJSON(router, http.MethodPost, "/api/auth/login", `{"email":"marc@example.com","password":"secret123"}`, "")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		resp := SessionResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &resp))

		// when
		response = doJSON(router, http.MethodGet, "/api/auth/session", "", resp.Token)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		identity := Identity{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &identity))
		assert.Equal(t, "user-1", identity.UID)
		assert.Equal(t, "marc@example.com", identity.Email)
	})

	t.Run("Login with wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, userStore, _, _, _, _, _ := setup(t, ctrl)

		// given
		givenUser(t, ctx, userStore, "user-1", "marc@example.com", "secret123")

		// when
		response := doJSON(router, http.MethodPost, "/api/auth/login", `{"email":"marc@example.com","password":"wrong"}`, "")

		// then
		assert.Equal(t, http.StatusUnauthorized, response.Code)
	})

	t.Run("Session without token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _, _ := setup(t, ctrl)

		// when
		response := doJSON(router, http.MethodGet, "/api/auth/session", "", "")

		// then
		assert.Equal(t, http.StatusUnauthorized, response.Code)
	})

	t.Run("Login page carries destination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _, _ := setup(t, ctrl)

		// when
		response := doJSON(router, http.MethodGet, "/login?from=/vehicles/mclaren-720s", "", "")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "text/html; charset=utf-8", response.Header().Get("Content-Type"))
		assert.Contains(t, response.Body.String(), `name="from" value="/vehicles/mclaren-720s"`)
	})

	t.Run("Login form redirects to destination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, userStore, _, _, _, _, publisher := setup(t, ctrl)

		// given
		givenUser(t, ctx, userStore, "user-1", "marc@example.com", "secret123")
		publisher.EXPECT().Publish(gomock.Any(), TopicName, gomock.Any()).Return(nil)

		// when
		response := doForm(router, "/login", url.Values{
			"email":    {"marc@example.com"},
			"password": {"secret123"},
			"from":     {"/vehicles/mclaren-720s"},
		})

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/vehicles/mclaren-720s", response.Header().Get("Location"))
		cookie := sessionCookie(response)
		assert.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("Login form ignores foreign destination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, userStore, _, _, _, _, publisher := setup(t, ctrl)

		// given
		givenUser(t, ctx, userStore, "user-1", "marc@example.com", "secret123")
		publisher.EXPECT().Publish(gomock.Any(), TopicName, gomock.Any()).Return(nil)

		// when
		response := doForm(router, "/login", url.Values{
			"email":    {"marc@example.com"},
			"password": {"secret123"},
			"from":     {"https://evil.example.com/"},
		})

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/", response.Header().Get("Location"))
	})

	t.Run("Login form with wrong password renders form again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, userStore, _, _, _, _, _ := setup(t, ctrl)

		// given
		givenUser(t, ctx, userStore, "user-1", "marc@example.com", "secret123")

		// when
		response := doForm(router, "/login", url.Values{
			"email":    {"marc@example.com"},
			"password": {"wrong"},
			"from":     {"/vehicles/mclaren-720s"},
		})

		// then
		assert.Equal(t, http.StatusUnauthorized, response.Code)
		assert.Contains(t, response.Body.String(), "Invalid email or password")
		assert.Contains(t, response.Body.String(), `value="/vehicles/mclaren-720s"`)
		assert.Nil(t, sessionCookie(response))
	})

	t.Run("Logout clears cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _, publisher := setup(t, ctrl)

		// given
		token, err := NewTokenIssuer("my_secret", time.Hour, fixedNower{}).Issue(Identity{UID: "user-1", Email: "marc@example.com"})
		assert.NoError(t, err)
		publisher.EXPECT().Publish(gomock.Any(), TopicName, SignedOut{
			UserUID: "user-1",
			At:      mytime.ExampleTime.Format(time.RFC3339),
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodPost, "/logout", nil)
		assert.NoError(t, err)
		request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		cookie := sessionCookie(response)
		assert.NotNil(t, cookie)
		assert.Equal(t, "", cookie.Value)
		assert.True(t, cookie.MaxAge < 0)
	})

	t.Run("Start google sign-in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, _, sessionStore, _, uuider, oauthClient, _ := setup(t, ctrl)

		// given
		uuider.EXPECT().Create().Return("session-1")
		oauthClient.EXPECT().ComposeAuthURL(gomock.Any(), ComposeAuthURLRequest{
			CompletionURL: "http://localhost:8080/auth/google/done",
			State:         "session-1",
		}).Return("https://accounts.google.com/o/oauth2/v2/auth?state=session-1", "my_verifier", nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/auth/google/start?from=/garage", nil)
		assert.NoError(t, err)
		request.Host = "localhost:8080"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=session-1", response.Header().Get("Location"))

		session, exists, err := sessionStore.Get(ctx, "session-1")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "my_verifier", session.Verifier)
		assert.Equal(t, "/garage", session.ReturnURL)
	})

	t.Run("Complete google sign-in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		ctx, router, userStore, sessionStore, vault, uuider, oauthClient, publisher := setup(t, ctrl)

		// given
		_ = sessionStore.Put(ctx, "session-1", OAuthSession{
			UID:       "session-1",
			Verifier:  "my_verifier",
			ReturnURL: "/garage",
			CreatedAt: mytime.ExampleTime,
		})
		oauthClient.EXPECT().GetAccessToken(gomock.Any(), GetTokenRequest{
			RedirectURI:  "http://localhost:8080/auth/google/done",
			Code:         "my_code",
			CodeVerifier: "my_verifier",
		}).Return(GetTokenResponse{
			AccessToken:  "my_access_token",
			RefreshToken: "my_refresh_token",
			ExpiresIn:    3600,
			Scope:        "openid email profile",
		}, nil)
		oauthClient.EXPECT().GetUserInfo(gomock.Any(), "my_access_token").Return(UserInfo{
			Subject: "12345",
			Email:   "marc@example.com",
			Name:    "Marc",
		}, nil)
		uuider.EXPECT().Create().Return("user-1")
		publisher.EXPECT().Publish(gomock.Any(), TopicName, SignedUp{
			UserUID:  "user-1",
			Email:    "marc@example.com",
			Provider: ProviderGoogle,
		}).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), TopicName, SignedIn{
			UserUID:  "user-1",
			Provider: ProviderGoogle,
			At:       mytime.ExampleTime.Format(time.RFC3339),
		}).Return(nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/auth/google/done?state=session-1&code=my_code", nil)
		assert.NoError(t, err)
		request.Host = "localhost:8080"
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/garage", response.Header().Get("Location"))
		assert.NotNil(t, sessionCookie(response))

		user, exists, err := userStore.Get(ctx, "marc@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, ProviderGoogle, user.Provider)

		token, exists, err := vault.Get(ctx, myvault.TokenUID(ProviderGoogle, "user-1"))
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, "my_access_token", token.AccessToken)
		assert.Equal(t, mytime.ExampleTime.Add(time.Hour), *token.ExpiresIn)

		session, _, _ := sessionStore.Get(ctx, "session-1")
		assert.True(t, session.Done)
	})

	t.Run("Complete google sign-in with unknown state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _, _, _ := setup(t, ctrl)

		// when
		response := doJSON(router, http.MethodGet, "/auth/google/done?state=unknown&code=my_code", "", "")

		// then
		assert.Equal(t, http.StatusNotFound, response.Code)
	})
}

type fixedNower struct{}

func (n fixedNower) Now() time.Time {
	return mytime.ExampleTime
}

func givenUser(t *testing.T, c context.Context, userStore mystore.Store[User], uid string, email string, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	err = userStore.Put(c, email, User{
		UID:          uid,
		Email:        email,
		PasswordHash: string(hash),
		Provider:     ProviderPassword,
		CreatedAt:    mytime.ExampleTime,
	})
	assert.NoError(t, err)
}

func doJSON(router *mux.Router, method string, path string, body string, bearer string) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		request.Header.Set("Authorization", "Bearer "+bearer)
	}
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func doForm(router *mux.Router, path string, values url.Values) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func sessionCookie(response *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range response.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	return nil
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, mystore.Store[User], mystore.Store[OAuthSession], myvault.VaultReadWriter, *myuuid.MockUUIDer, *MockOAuthClient, *mypublisher.MockPublisher) {
	c := context.TODO()
	userStore, _, _ := mystore.NewInMemoryStore[User](c)
	sessionStore, _, _ := mystore.NewInMemoryStore[OAuthSession](c)
	vault, _, _ := mystore.NewInMemoryStore[myvault.Token](c)
	nower := mytime.NewMockNower(ctrl)
	uuider := myuuid.NewMockUUIDer(ctrl)
	oauthClient := NewMockOAuthClient(ctrl)
	publisher := mypublisher.NewMockPublisher(ctrl)

	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	// called by RegisterEndpoints
	publisher.EXPECT().CreateTopic(gomock.Any(), TopicName).Return(nil)

	sut := NewWebService(nower, uuider, userStore, sessionStore, vault, NewTokenIssuer("my_secret", time.Hour, nower), oauthClient, publisher)
	router := mux.NewRouter()
	err := sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return c, router, userStore, sessionStore, vault, uuider, oauthClient, publisher
}
