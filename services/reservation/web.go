package reservation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/autosphere/storefront/lib/mycontext"
	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/myhttp"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/services/auth"
)

type webService struct {
	logger        mylog.Logger
	store         Store
	authenticator auth.Authenticator
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(store Store, authenticator auth.Authenticator) *webService {
	return &webService{
		logger:        mylog.New("reservation"),
		store:         store,
		authenticator: authenticator,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/reservations", s.listPage()).Methods("GET")
	router.HandleFunc("/api/reservations/{sessionID}", s.confirmationPage()).Methods("GET")

	return nil
}

func (s *webService) listPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		identity, authenticated := s.authenticator.IdentityFromRequest(r)
		if !authenticated {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnauthorizedError(fmt.Errorf("not logged in")))
			return
		}

		reservations, err := s.store.ListByUser(c, identity.UID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, reservations)
	}
}

func (s *webService) confirmationPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		identity, authenticated := s.authenticator.IdentityFromRequest(r)
		if !authenticated {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnauthorizedError(fmt.Errorf("not logged in")))
			return
		}

		sessionID := mux.Vars(r)["sessionID"]

		found, exists, err := FindOwned(c, s.store, identity.UID, sessionID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
		if !exists {
			errorWriter.WriteError(c, w, 3, myerrors.NewNotFoundError(fmt.Errorf("reservation for session %s not found", sessionID)))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, found.Confirmation())
	}
}

// FindOwned looks up the reservation of a session and hides it from anyone but its owner.
func FindOwned(c context.Context, store Store, userID string, sessionID string) (Reservation, bool, error) {
	found, exists, err := store.FindBySessionID(c, sessionID)
	if err != nil {
		return Reservation{}, false, err
	}
	if !exists || found.UserID != userID {
		return Reservation{}, false, nil
	}
	return found, true, nil
}
