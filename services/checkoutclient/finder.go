package checkoutclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/autosphere/storefront/lib/myerrors"
	"github.com/autosphere/storefront/lib/myhttpclient"
	"github.com/autosphere/storefront/services/auth"
	"github.com/autosphere/storefront/services/reservation"
)

// ReservationFinder looks up a confirmation over the storefront api, one request per call.
type ReservationFinder struct {
	baseURL    string
	credential string
	httpSender myhttpclient.HTTPSender
}

func NewReservationFinder(baseURL string, credential string, httpSender myhttpclient.HTTPSender) *ReservationFinder {
	return &ReservationFinder{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		credential: credential,
		httpSender: httpSender,
	}
}

// FindConfirmation sends no request without credential. A missing or rejected credential is
// reported as an unauthorized error.
func (f *ReservationFinder) FindConfirmation(c context.Context, sessionID string) (reservation.Confirmation, bool, error) {
	if f.credential == "" {
		return reservation.Confirmation{}, false, myerrors.NewUnauthorizedError(fmt.Errorf("not logged in"))
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+f.credential)

	httpRespCode, respBody, err := f.httpSender.Send(c, http.MethodGet, f.baseURL+"/api/reservations/"+url.PathEscape(sessionID), headers, nil)
	if err != nil {
		return reservation.Confirmation{}, false, fmt.Errorf("error fetching reservation: %s", err)
	}

	switch httpRespCode {
	case http.StatusOK:
		resp := reservation.Confirmation{}
		err = json.Unmarshal(respBody, &resp)
		if err != nil {
			return reservation.Confirmation{}, false, fmt.Errorf("error parsing reservation: %s", err)
		}
		return resp, true, nil
	case http.StatusNotFound:
		return reservation.Confirmation{}, false, nil
	case http.StatusUnauthorized:
		return reservation.Confirmation{}, false, myerrors.NewUnauthorizedError(fmt.Errorf("credential rejected"))
	default:
		return reservation.Confirmation{}, false, fmt.Errorf("error fetching reservation: http-status %d", httpRespCode)
	}
}

// ConfirmationLoginURL is the login entry point that returns to the confirmation of a session.
func ConfirmationLoginURL(sessionID string) string {
	return auth.LoginRedirectURL("/checkout/success?" + url.Values{"session_id": []string{sessionID}}.Encode())
}
