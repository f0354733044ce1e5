package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/lib/mypublisher"
	"github.com/autosphere/storefront/lib/mystore"
	"github.com/autosphere/storefront/lib/mytime"
	"github.com/autosphere/storefront/lib/myuuid"
	"github.com/autosphere/storefront/lib/myvault"
)

const minPasswordLength = 6

type service struct {
	logger       mylog.Logger
	nower        mytime.Nower
	uuider       myuuid.UUIDer
	userStore    mystore.Store[User]
	sessionStore mystore.Store[OAuthSession]
	vault        myvault.VaultReadWriter
	tokenIssuer  *TokenIssuer
	oauthClient  OAuthClient
	publisher    mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(logger mylog.Logger, nower mytime.Nower, uuider myuuid.UUIDer, userStore mystore.Store[User],
	sessionStore mystore.Store[OAuthSession], vault myvault.VaultReadWriter, tokenIssuer *TokenIssuer,
	oauthClient OAuthClient, publisher mypublisher.Publisher) *service {
	return &service{
		logger:       logger,
		nower:        nower,
		uuider:       uuider,
		userStore:    userStore,
		sessionStore: sessionStore,
		vault:        vault,
		tokenIssuer:  tokenIssuer,
		oauthClient:  oauthClient,
		publisher:    publisher,
	}
}

func (s *service) CreateTopics(c context.Context) error {
	err := s.publisher.CreateTopic(c, TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", TopicName, err)
	}

	return nil
}

func (s *service) signup(c context.Context, req SignupRequest) (SessionResponse, error) {
	email := normalizeEmail(req.Email)
	err := validateCredentials(email, req.Password)
	if err != nil {
		return SessionResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return SessionResponse{}, myerrors.NewInternalError(fmt.Errorf("error hashing password: %s", err))
	}

	now := s.nower.Now()
	user := User{
		UID:          s.uuider.Create(),
		Email:        email,
		DisplayName:  strings.TrimSpace(req.FullName),
		PasswordHash: string(passwordHash),
		Provider:     ProviderPassword,
		CreatedAt:    now,
		LastModified: &now,
	}

	s.logger.Log(c, user.UID, mylog.SeverityInfo, "Signup user %s", user.UID)

	err = s.userStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		_, exists, err := s.userStore.Get(c, email)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching user: %s", err))
		}
		if exists {
			return myerrors.NewConflictError(fmt.Errorf("user with email %s already exists", email))
		}

		err = s.userStore.Put(c, email, user)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing user: %s", err))
		}

		err = s.publisher.Publish(c, TopicName, SignedUp{
			UserUID:  user.UID,
			Email:    user.Email,
			Provider: user.Provider,
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return SessionResponse{}, err
	}

	return s.createSession(user.Identity())
}

func (s *service) login(c context.Context, req LoginRequest) (SessionResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return SessionResponse{}, myerrors.NewInvalidInputError(fmt.Errorf("missing email or password"))
	}

	user, exists, err := s.userStore.Get(c, email)
	if err != nil {
		return SessionResponse{}, myerrors.NewInternalError(fmt.Errorf("error fetching user: %s", err))
	}
	if !exists || user.PasswordHash == "" {
		return SessionResponse{}, myerrors.NewUnauthorizedError(fmt.Errorf("invalid email or password"))
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return SessionResponse{}, myerrors.NewUnauthorizedError(fmt.Errorf("invalid email or password"))
	}

	err = s.publisher.Publish(c, TopicName, SignedIn{
		UserUID:  user.UID,
		Provider: ProviderPassword,
		At:       s.nower.Now().Format(time.RFC3339),
	})
	if err != nil {
		return SessionResponse{}, myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
	}

	s.logger.Log(c, user.UID, mylog.SeverityInfo, "User %s logged in", user.UID)

	return s.createSession(user.Identity())
}

func (s *service) logout(c context.Context, identity Identity) error {
	err := s.publisher.Publish(c, TopicName, SignedOut{
		UserUID: identity.UID,
		At:      s.nower.Now().Format(time.RFC3339),
	})
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
	}

	s.logger.Log(c, identity.UID, mylog.SeverityInfo, "User %s logged out", identity.UID)

	return nil
}

func (s *service) googleStart(c context.Context, returnURL string, currentHostname string) (string, error) {
	now := s.nower.Now()
	sessionUID := s.uuider.Create()

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Start google sign-in %s", sessionUID)

	authURL, verifier, err := s.oauthClient.ComposeAuthURL(c, ComposeAuthURLRequest{
		CompletionURL: createCompletionURL(currentHostname),
		State:         sessionUID,
	})
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("error composing auth url: %s", err))
	}

	err = s.sessionStore.Put(c, sessionUID, OAuthSession{
		UID:       sessionUID,
		Verifier:  verifier,
		ReturnURL: returnURL,
		CreatedAt: now,
	})
	if err != nil {
		return "", myerrors.NewInternalError(fmt.Errorf("error storing oauth session: %s", err))
	}

	return authURL, nil
}

// googleDone completes the sign-in and returns the session together with the url to return to.
func (s *service) googleDone(c context.Context, sessionUID string, code string, currentHostname string) (SessionResponse, string, error) {
	now := s.nower.Now()

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Complete google sign-in %s", sessionUID)

	session, exists, err := s.sessionStore.Get(c, sessionUID)
	if err != nil {
		return SessionResponse{}, "", myerrors.NewInternalError(fmt.Errorf("error fetching oauth session: %s", err))
	}
	if !exists || session.Done {
		return SessionResponse{}, "", myerrors.NewNotFoundError(fmt.Errorf("oauth session %s not found", sessionUID))
	}

	tokenResp, err := s.oauthClient.GetAccessToken(c, GetTokenRequest{
		RedirectURI:  createCompletionURL(currentHostname),
		Code:         code,
		CodeVerifier: session.Verifier,
	})
	if err != nil {
		return SessionResponse{}, "", myerrors.NewAuthenticationError(fmt.Errorf("error getting token: %s", err))
	}

	userInfo, err := s.oauthClient.GetUserInfo(c, tokenResp.AccessToken)
	if err != nil {
		return SessionResponse{}, "", myerrors.NewAuthenticationError(fmt.Errorf("error getting user-info: %s", err))
	}

	email := normalizeEmail(userInfo.Email)
	user := User{}
	err = s.userStore.RunInTransaction(c, func(c context.Context) error {
		// must be idempotent

		existing, exists, err := s.userStore.Get(c, email)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error fetching user: %s", err))
		}

		if exists {
			user = existing
		} else {
			user = User{
				UID:         s.uuider.Create(),
				Email:       email,
				DisplayName: userInfo.Name,
				Provider:    ProviderGoogle,
				CreatedAt:   now,
			}
			err = s.publisher.Publish(c, TopicName, SignedUp{
				UserUID:  user.UID,
				Email:    user.Email,
				Provider: ProviderGoogle,
			})
			if err != nil {
				return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
			}
		}
		user.LastModified = &now

		err = s.userStore.Put(c, email, user)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing user: %s", err))
		}

		err = s.vault.Put(c, myvault.TokenUID(ProviderGoogle, user.UID), myvault.Token{
			ProviderName: ProviderGoogle,
			UserUID:      user.UID,
			SessionUID:   sessionUID,
			Scopes:       tokenResp.Scope,
			CreatedAt:    now,
			LastModified: &now,
			AccessToken:  tokenResp.AccessToken,
			RefreshToken: tokenResp.RefreshToken,
			ExpiresIn:    calculateExpiresIn(now, tokenResp.ExpiresIn),
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing token in vault: %s", err))
		}

		session.Done = true
		err = s.sessionStore.Put(c, sessionUID, session)
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error storing oauth session: %s", err))
		}

		err = s.publisher.Publish(c, TopicName, SignedIn{
			UserUID:  user.UID,
			Provider: ProviderGoogle,
			At:       now.Format(time.RFC3339),
		})
		if err != nil {
			return myerrors.NewInternalError(fmt.Errorf("error publishing event: %s", err))
		}

		return nil
	})
	if err != nil {
		return SessionResponse{}, "", err
	}

	resp, err := s.createSession(user.Identity())
	if err != nil {
		return SessionResponse{}, "", err
	}

	return resp, session.ReturnURL, nil
}

func (s *service) createSession(identity Identity) (SessionResponse, error) {
	token, err := s.tokenIssuer.Issue(identity)
	if err != nil {
		return SessionResponse{}, myerrors.NewInternalError(err)
	}

	return SessionResponse{
		Token: token,
		User:  identity,
	}, nil
}

func validateCredentials(email string, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return myerrors.NewInvalidInputError(fmt.Errorf("invalid email address"))
	}
	if len(password) < minPasswordLength {
		return myerrors.NewInvalidInputError(fmt.Errorf("password must have at least %d characters", minPasswordLength))
	}
	return nil
}

func createCompletionURL(hostname string) string {
	return fmt.Sprintf("%s/auth/google/done", hostname)
}

func calculateExpiresIn(now time.Time, expiresIn int) *time.Time {
	if expiresIn == 0 {
		return nil
	}
	t := now.Add(time.Second * time.Duration(expiresIn))
	return &t
}
