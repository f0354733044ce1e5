package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/autosphere/storefront/lib/mycontext"
	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/myhttp"
	"github.com/autosphere/storefront/lib/mylog"
)

type webService struct {
	logger  mylog.Logger
	catalog *Catalog
}

func NewWebService(catalog *Catalog) *webService {
	return &webService{
		logger:  mylog.New("catalog"),
		catalog: catalog,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/vehicles", s.vehiclesPage()).Methods("GET")
	router.HandleFunc("/api/vehicles/featured", s.featuredPage()).Methods("GET")
	router.HandleFunc("/api/vehicles/{vehicleID}", s.vehiclePage()).Methods("GET")
	router.HandleFunc("/api/brands", s.listPage(func() any { return s.catalog.Brands() })).Methods("GET")
	router.HandleFunc("/api/reviews", s.listPage(func() any { return s.catalog.Reviews() })).Methods("GET")
	router.HandleFunc("/api/engineering", s.listPage(func() any { return s.catalog.EngineeringStats() })).Methods("GET")
	router.HandleFunc("/api/story", s.listPage(func() any { return s.catalog.StorySteps() })).Methods("GET")

	return nil
}

func (s *webService) vehiclesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		brand := r.URL.Query().Get("brand")
		if brand != "" {
			errorWriter.Write(c, w, http.StatusOK, s.catalog.VehiclesByBrand(brand))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, s.catalog.Vehicles())
	}
}

func (s *webService) featuredPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, s.catalog.Featured())
	}
}

func (s *webService) vehiclePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		vehicleID := mux.Vars(r)["vehicleID"]
		vehicle, found := s.catalog.VehicleByID(vehicleID)
		if !found {
			errorWriter.WriteError(c, w, 1, myerrors.NewNotFoundError(fmt.Errorf("vehicle %s not found", vehicleID)))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, vehicle)
	}
}

func (s *webService) listPage(list func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, list())
	}
}
