package garage

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/autosphere/storefront/lib/mycontext"
	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/myhttp"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/lib/mypublisher"
	"github.com/autosphere/storefront/lib/mypubsub"
	"github.com/autosphere/storefront/lib/mystore"
	"github.com/autosphere/storefront/lib/mytime"
	"github.com/autosphere/storefront/services/auth"
	"github.com/autosphere/storefront/services/catalog"
	"github.com/autosphere/storefront/services/reservation"
)

type webService struct {
	logger        mylog.Logger
	authenticator auth.Authenticator
	service       *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(siteURL string, nower mytime.Nower, vehicles catalog.Lookup, garageStore mystore.Store[Garage],
	authenticator auth.Authenticator, subscriber mypubsub.PubSub, pub mypublisher.Publisher) *webService {
	logger := mylog.New("garage")
	return &webService{
		logger:        logger,
		authenticator: authenticator,
		service:       newService(logger, siteURL, nower, vehicles, garageStore, subscriber, pub),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.Subscribe(c)
	if err != nil {
		return err
	}

	router.HandleFunc("/api/garage", s.getGarage()).Methods("GET")
	router.HandleFunc("/api/garage/event", s.handleEventEnvelope()).Methods("POST")
	router.HandleFunc("/api/garage/{vehicleID}", s.toggleVehicle()).Methods("POST")

	return nil
}

func (s *webService) getGarage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		identity, authenticated := s.authenticator.IdentityFromRequest(r)
		if !authenticated {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnauthorizedError(fmt.Errorf("not logged in")))
			return
		}

		garage, err := s.service.get(c, identity.UID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, GarageResponse{
			Vehicles: garage.Saved().IDs(),
		})
	}
}

func (s *webService) toggleVehicle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		identity, authenticated := s.authenticator.IdentityFromRequest(r)
		if !authenticated {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnauthorizedError(fmt.Errorf("not logged in")))
			return
		}

		vehicleID := mux.Vars(r)["vehicleID"]

		garage, saved, err := s.service.toggle(c, identity.UID, vehicleID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, ToggleResponse{
			VehicleID: vehicleID,
			Saved:     saved,
			Vehicles:  garage.Saved().IDs(),
		})
	}
}

func (s *webService) handleEventEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := reservation.DispatchEvent(c, r.Body, s.service)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed event",
		})
	}
}
