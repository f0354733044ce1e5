package checkoutclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/myhttp"
	"github.com/autosphere/storefront/lib/myhttpclient"
	"github.com/autosphere/storefront/lib/mylog"
	"github.com/autosphere/storefront/services/auth"
	"github.com/autosphere/storefront/services/checkout"
)

// Outcome tells the caller where to send the browser next.
type Outcome struct {
	RedirectURL   string
	LoginRequired bool
}

// Initiator starts a vehicle reservation on behalf of a signed-in shopper.
type Initiator struct {
	logger     mylog.Logger
	baseURL    string
	httpSender myhttpclient.HTTPSender
}

func NewInitiator(baseURL string, httpSender myhttpclient.HTTPSender) *Initiator {
	return &Initiator{
		logger:     mylog.New("checkoutclient"),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpSender: httpSender,
	}
}

// Reserve sends exactly one session request. Without credential no request is sent and the
// outcome points at the login entry point that returns to the vehicle afterwards.
func (i *Initiator) Reserve(c context.Context, credential string, req checkout.ReservationRequest) (Outcome, error) {
	if credential == "" {
		return Outcome{
			RedirectURL:   auth.LoginRedirectURL("/vehicles/" + req.VehicleID),
			LoginRequired: true,
		}, nil
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Outcome{}, fmt.Errorf("error marshalling request: %s", err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+credential)

	httpRespCode, respBody, err := i.httpSender.Send(c, http.MethodPost, i.baseURL+"/api/checkout/session", headers, body)
	if err != nil {
		i.logger.Log(c, req.VehicleID, mylog.SeverityError, "Error starting checkout of vehicle %s: %s", req.VehicleID, err)
		return Outcome{}, myerrors.NewUnavailableError(fmt.Errorf("error starting checkout: %s", err))
	}

	if httpRespCode < 200 || httpRespCode >= 300 {
		errorResp := myhttp.ErrorResponse{}
		_ = json.Unmarshal(respBody, &errorResp)
		i.logger.Log(c, req.VehicleID, mylog.SeverityError, "Error starting checkout of vehicle %s: http-status %d: %s", req.VehicleID, httpRespCode, errorResp.Error)
		return Outcome{}, &StatusError{StatusCode: httpRespCode, Message: errorResp.Error}
	}

	resp := checkout.SessionResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return Outcome{}, fmt.Errorf("error parsing session response: %s", err)
	}
	if resp.URL == "" {
		return Outcome{}, fmt.Errorf("session response without url")
	}

	return Outcome{
		RedirectURL: resp.URL,
	}, nil
}

// StatusError is a non-2xx answer of the storefront.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http-status %d: %s", e.StatusCode, e.Message)
}
