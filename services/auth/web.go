package auth

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/autosphere/storefront/lib/mycontext"
	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/myhttp"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/lib/mypublisher"
	"github.com/autosphere/storefront/lib/mystore"
	"github.com/autosphere/storefront/lib/mytime"
	"github.com/autosphere/storefront/lib/myuuid"
	"github.com/autosphere/storefront/lib/myvault"
)

type webService struct {
	logger      mylog.Logger
	service     *service
	tokenIssuer *TokenIssuer
	tokenTTL    time.Duration
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(nower mytime.Nower, uuider myuuid.UUIDer, userStore mystore.Store[User], sessionStore mystore.Store[OAuthSession],
	vault myvault.VaultReadWriter, tokenIssuer *TokenIssuer, oauthClient OAuthClient, pub mypublisher.Publisher) *webService {
	logger := mylog.New("auth")
	return &webService{
		logger:      logger,
		service:     newService(logger, nower, uuider, userStore, sessionStore, vault, tokenIssuer, oauthClient, pub),
		tokenIssuer: tokenIssuer,
		tokenTTL:    tokenIssuer.ttl,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/auth/signup", s.signupPage()).Methods("POST")
	router.HandleFunc("/api/auth/login", s.loginPage()).Methods("POST")
	router.HandleFunc("/api/auth/logout", s.logoutPage()).Methods("POST")
	router.HandleFunc("/api/auth/session", s.sessionPage()).Methods("GET")

	router.HandleFunc("/login", s.loginFormPage()).Methods("GET")
	router.HandleFunc("/login", s.loginFormSubmitPage()).Methods("POST")
	router.HandleFunc("/logout", s.logoutFormPage()).Methods("POST")

	router.HandleFunc("/auth/google/start", s.googleStartPage()).Methods("GET")
	router.HandleFunc("/auth/google/done", s.googleDonePage()).Methods("GET")

	err := s.service.CreateTopics(c)
	if err != nil {
		return err
	}

	return nil
}

//go:embed templates
var templateFolder embed.FS
var (
	loginPageTemplate *template.Template
)

func init() {
	loginPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/login.html"))
}

type loginPageData struct {
	From    string
	Message string
}

func (s *webService) signupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := SignupRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err)))
			return
		}

		resp, err := s.service.signup(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		s.setSessionCookie(w, r, resp.Token)
		errorWriter.Write(c, w, http.StatusCreated, resp)
	}
}

func (s *webService) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := LoginRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err)))
			return
		}

		resp, err := s.service.login(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		s.setSessionCookie(w, r, resp.Token)
		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s *webService) logoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		identity, authenticated := s.tokenIssuer.IdentityFromRequest(r)
		if authenticated {
			err := s.service.logout(c, identity)
			if err != nil {
				errorWriter.WriteError(c, w, 1, err)
				return
			}
		}

		clearSessionCookie(w)
		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Logged out",
		})
	}
}

func (s *webService) sessionPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		identity, authenticated := s.tokenIssuer.IdentityFromRequest(r)
		if !authenticated {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnauthorizedError(fmt.Errorf("not logged in")))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, identity)
	}
}

func (s *webService) loginFormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		s.renderLoginPage(c, w, http.StatusOK, loginPageData{
			From: myhttp.LocalPath(r.URL.Query().Get("from"), "/"),
		})
	}
}

func (s *webService) loginFormSubmitPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		req := LoginRequest{}
		err = formcodec.NewDecoder().Decode(&req, r.PostForm)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err)))
			return
		}

		destination := myhttp.LocalPath(req.From, "/")

		resp, err := s.service.login(c, req)
		if err != nil {
			s.renderLoginPage(c, w, myerrors.GetHTTPStatus(err), loginPageData{
				From:    destination,
				Message: "Invalid email or password",
			})
			return
		}

		s.setSessionCookie(w, r, resp.Token)
		http.Redirect(w, r, destination, http.StatusSeeOther)
	}
}

func (s *webService) logoutFormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		identity, authenticated := s.tokenIssuer.IdentityFromRequest(r)
		if authenticated {
			err := s.service.logout(c, identity)
			if err != nil {
				errorWriter.WriteError(c, w, 1, err)
				return
			}
		}

		clearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *webService) googleStartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		returnURL := myhttp.LocalPath(r.URL.Query().Get("from"), "/")

		authenticationURL, err := s.service.googleStart(c, returnURL, myhttp.HostnameWithScheme(r))
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		http.Redirect(w, r, authenticationURL, http.StatusSeeOther)
	}
}

func (s *webService) googleDonePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorCode := r.URL.Query().Get("error")
		if errorCode != "" {
			errorDescription := r.URL.Query().Get("error_description")
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("%s (%s)", errorCode, errorDescription)))
			return
		}

		sessionUID := r.URL.Query().Get("state")
		if sessionUID == "" {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing state")))
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(fmt.Errorf("missing code")))
			return
		}

		resp, returnURL, err := s.service.googleDone(c, sessionUID, code, myhttp.HostnameWithScheme(r))
		if err != nil {
			errorWriter.WriteError(c, w, 4, err)
			return
		}

		s.setSessionCookie(w, r, resp.Token)
		http.Redirect(w, r, myhttp.LocalPath(returnURL, "/"), http.StatusSeeOther)
	}
}

func (s *webService) renderLoginPage(c context.Context, w http.ResponseWriter, httpStatus int, data loginPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(httpStatus)
	err := loginPageTemplate.Execute(w, data)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Error rendering login page: %s", err)
	}
}

func (s *webService) setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
