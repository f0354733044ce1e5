package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/autosphere/storefront/lib/mycontext"
	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/myhttp"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/lib/mymetrics"
	"github.com/autosphere/storefront/lib/mypublisher"
	"github.com/autosphere/storefront/lib/mytime"
	"github.com/autosphere/storefront/services/auth"
	"github.com/autosphere/storefront/services/catalog"
	"github.com/autosphere/storefront/services/reservation"
)

const maxWebhookPayload = 65536

type webService struct {
	logger         mylog.Logger
	nower          mytime.Nower
	wideEvents     *mylog.WideEventLogger
	authenticator  auth.Authenticator
	publishableKey string
	service        *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cfg Config, publishableKey string, nower mytime.Nower, payer Payer, vehicles catalog.Lookup,
	reservations reservation.Store, deduplicator DeliveryDeduplicator, authenticator auth.Authenticator,
	publisher mypublisher.Publisher, wideEvents *mylog.WideEventLogger) *webService {
	logger := mylog.New("checkout")
	return &webService{
		logger:         logger,
		nower:          nower,
		wideEvents:     wideEvents,
		authenticator:  authenticator,
		publishableKey: publishableKey,
		service:        newService(cfg, logger, nower, payer, vehicles, reservations, deduplicator, publisher),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/config", s.configPage()).Methods("GET")
	router.HandleFunc("/api/checkout/session", s.startCheckoutPage()).Methods("POST")
	router.HandleFunc("/vehicles/{vehicleID}/reserve", s.reserveFormPage()).Methods("POST")

	router.HandleFunc("/api/stripe/webhook", s.webhookNotificationPage()).Methods("POST")

	err := s.service.CreateTopics(c)
	if err != nil {
		return err
	}

	return nil
}

func (s *webService) configPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, ConfigResponse{
			PublishableKey: s.publishableKey,
		})
	}
}

// startCheckoutPage is called by the browser with a bearer token and answers with the url to redirect to
func (s *webService) startCheckoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		identity, authenticated := s.authenticator.IdentityFromRequest(r)
		if !authenticated {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnauthorizedError(fmt.Errorf("not logged in")))
			return
		}

		req := ReservationRequest{}
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err)))
			return
		}

		redirectURL, err := s.service.startCheckout(c, identity, req)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, SessionResponse{
			URL: redirectURL,
		})
	}
}

func (s *webService) reserveFormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		vehicleID := mux.Vars(r)["vehicleID"]

		identity, authenticated := s.authenticator.IdentityFromRequest(r)
		if !authenticated {
			http.Redirect(w, r, auth.LoginRedirectURL("/vehicles/"+vehicleID), http.StatusSeeOther)
			return
		}

		err := r.ParseForm()
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		req := ReservationRequest{}
		err = formcodec.NewDecoder().Decode(&req, r.PostForm)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err)))
			return
		}
		req.VehicleID = vehicleID

		redirectURL, err := s.service.startCheckout(c, identity, req)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		http.Redirect(w, r, redirectURL, http.StatusSeeOther)
	}
}

func (s *webService) webhookNotificationPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		startedAt := s.nower.Now()
		wideEvent := s.wideEvents.Start(r.URL.Path, r.Method, startedAt)
		status := http.StatusOK
		defer func() {
			finishedAt := s.nower.Now()
			wideEvent.Set("status", status)
			wideEvent.Emit(finishedAt)

			eventType, _ := wideEvent.Get("event_type")
			eventTypeLabel, _ := eventType.(string)
			mymetrics.WebhookEventsTotal.WithLabelValues(eventTypeLabel, strconv.Itoa(status)).Inc()
			mymetrics.WebhookLatency.Observe(finishedAt.Sub(startedAt).Seconds())
		}()

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookPayload))
		if err != nil {
			status = http.StatusBadRequest
			wideEvent.Set("error", err.Error())
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error reading request body: %s", err)))
			return
		}

		err = s.service.webhookNotification(c, payload, r.Header.Get("Stripe-Signature"), wideEvent)
		if err != nil {
			status = myerrors.GetHTTPStatus(err)
			wideEvent.Set("error", err.Error())
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, WebhookResponse{
			Received: true,
		})
	}
}
