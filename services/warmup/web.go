package warmup

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/autosphere/storefront/lib/mycontext"
	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/myhttp"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/lib/mypublisher"
	"github.com/autosphere/storefront/lib/mytime"
	"github.com/autosphere/storefront/lib/myuuid"
	"github.com/autosphere/storefront/lib/myvault"
)

type webService struct {
	logger    mylog.Logger
	vault     myvault.VaultReader
	nower     mytime.Nower
	uuider    myuuid.UUIDer
	publisher mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewWebService(vault myvault.VaultReader, nower mytime.Nower, uuider myuuid.UUIDer, pub mypublisher.Publisher) *webService {
	return &webService{
		logger:    mylog.New("warmup"),
		vault:     vault,
		nower:     nower,
		uuider:    uuider,
		publisher: pub,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.publisher.CreateTopic(c, TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", TopicName, err)
	}

	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
	router.HandleFunc("/healthz", s.healthPage()).Methods("GET")

	return nil
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		// touch the document store
		_, _, err := s.vault.Get(c, myvault.CurrentToken)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(fmt.Errorf("vault not reachable: %s", err)))
			return
		}

		event := WarmupKicked{
			UID: s.uuider.Create(),
			At:  s.nower.Now().Format(time.RFC3339Nano),
		}
		err = s.publisher.Publish(c, TopicName, event)
		if err != nil {
			s.logger.Log(c, event.UID, mylog.SeverityWarn, "Error publishing warmup event: %s", err)
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}

func (s *webService) healthPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "ok",
		})
	}
}
