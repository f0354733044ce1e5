package confirmation

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/autosphere/storefront/lib/mycontext"
	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/myhttp"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/services/auth"
	"github.com/autosphere/storefront/services/reservation"
)

type webService struct {
	logger        mylog.Logger
	store         reservation.Store
	authenticator auth.Authenticator
	sleeper       Sleeper
	interval      time.Duration
	maxAttempts   int
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(store reservation.Store, authenticator auth.Authenticator, sleeper Sleeper, interval time.Duration, maxAttempts int) *webService {
	return &webService{
		logger:        mylog.New("confirmation"),
		store:         store,
		authenticator: authenticator,
		sleeper:       sleeper,
		interval:      interval,
		maxAttempts:   maxAttempts,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/checkout/success", s.successPage()).Methods("GET")

	return nil
}

//go:embed templates
var templateFolder embed.FS
var (
	successPageTemplate *template.Template
)

func init() {
	successPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/success.html"))
}

type successPageData struct {
	Found       bool
	VehicleName string
	Status      string
	SessionID   string
}

func (s *webService) successPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		identity, authenticated := s.authenticator.IdentityFromRequest(r)
		if !authenticated {
			http.Redirect(w, r, auth.LoginRedirectURL(auth.RequestDestination(r)), http.StatusSeeOther)
			return
		}

		sessionID := r.URL.Query().Get("session_id")
		fallbackVehicleName := r.URL.Query().Get("vehicle")
		if sessionID == "" {
			// nothing to wait for
			if fallbackVehicleName == "" {
				fallbackVehicleName = DefaultFallbackVehicleName
			}
			s.render(c, w, errorWriter, successPageData{VehicleName: fallbackVehicleName})
			return
		}

		poller := NewPoller(FinderFunc(func(c context.Context, sessionID string) (reservation.Confirmation, bool, error) {
			found, exists, err := reservation.FindOwned(c, s.store, identity.UID, sessionID)
			if err != nil {
				s.logger.Log(c, sessionID, mylog.SeverityWarn, "Error looking up reservation for session %s: %s", sessionID, err)
				return reservation.Confirmation{}, false, err
			}
			return found.Confirmation(), exists, nil
		}), s.sleeper, s.interval, s.maxAttempts)

		result, err := poller.Await(c, sessionID, fallbackVehicleName)
		if err != nil {
			s.logger.Log(c, sessionID, mylog.SeverityInfo, "Stopped waiting for reservation of session %s: %s", sessionID, err)
			return
		}

		s.logger.Log(c, sessionID, mylog.SeverityInfo, "Reservation of session %s %s after %d queries", sessionID, result.State, result.Attempts)

		s.render(c, w, errorWriter, successPageData{
			Found:       result.State == StateFound,
			VehicleName: result.VehicleName,
			Status:      result.Status,
			SessionID:   sessionID,
		})
	}
}

func (s *webService) render(c context.Context, w http.ResponseWriter, errorWriter myhttp.ResponseWriter, data successPageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := successPageTemplate.Execute(w, data)
	if err != nil {
		errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
	}
}
