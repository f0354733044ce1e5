package confirmation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/autosphere/storefront/lib/mytime"
	"github.com/autosphere/storefront/services/auth"
	"github.com/autosphere/storefront/services/reservation"
)

var confirmedReservation = reservation.Reservation{
	UserID:          "user-1",
	VehicleID:       "mercedes-amg-gt-r",
	VehicleName:     "AMG GT-R",
	Price:           162900,
	StripeSessionID: "cs_1",
	Status:          reservation.StatusConfirmed,
	CreatedAt:       mytime.ExampleTime,
}

func TestSuccessPage(t *testing.T) {

	t.Run("Unauthenticated visitor is sent to login without query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, _, _, _ := setup(t, ctrl)

		// when
		response := get(router, "/checkout/success?session_id=cs_1&vehicle=AMG", "")

		// then
		assert.Equal(t, http.StatusSeeOther, response.Code)
		assert.Equal(t, "/login?from=%2Fcheckout%2Fsuccess%3Fsession_id%3Dcs_1%26vehicle%3DAMG", response.Header().Get("Location"))
	})

	t.Run("Confirmed reservation is shown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, store, issuer, sleeper := setup(t, ctrl)

		// given
		store.EXPECT().FindBySessionID(gomock.Any(), "cs_1").Return(confirmedReservation, true, nil).Times(1)

		// when
		response := get(router, "/checkout/success?session_id=cs_1&vehicle=AMG", token(t, issuer, "user-1"))

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "Reservation confirmed")
		assert.Contains(t, response.Body.String(), "AMG GT-R")
		assert.Empty(t, sleeper.slept)
	})

	t.Run("Fallback name after exhausting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, store, issuer, sleeper := setup(t, ctrl)

		// given
		store.EXPECT().FindBySessionID(gomock.Any(), "cs_1").Return(reservation.Reservation{}, false, nil).Times(10)

		// when
		response := get(router, "/checkout/success?session_id=cs_1&vehicle=McLaren+720S", token(t, issuer, "user-1"))

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "McLaren 720S")
		assert.Len(t, sleeper.slept, 9)
	})

	t.Run("Reservation of someone else is never shown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, store, issuer, _ := setup(t, ctrl)

		// given
		store.EXPECT().FindBySessionID(gomock.Any(), "cs_1").Return(confirmedReservation, true, nil).Times(10)

		// when
		response := get(router, "/checkout/success?session_id=cs_1", token(t, issuer, "user-2"))

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.NotContains(t, response.Body.String(), "Reservation confirmed")
		assert.Contains(t, response.Body.String(), DefaultFallbackVehicleName)
	})

	t.Run("Missing session id shows fallback without querying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, _, issuer, sleeper := setup(t, ctrl)

		// when
		response := get(router, "/checkout/success", token(t, issuer, "user-1"))

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), DefaultFallbackVehicleName)
		assert.NotContains(t, response.Body.String(), "Reservation confirmed")
		assert.NotContains(t, response.Body.String(), "Reference")
		assert.Empty(t, sleeper.slept)
	})

	t.Run("Missing session id keeps vehicle name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		router, _, issuer, _ := setup(t, ctrl)

		// when
		response := get(router, "/checkout/success?vehicle=McLaren+720S", token(t, issuer, "user-1"))

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "McLaren 720S")
	})
}

type exampleNower struct{}

func (n exampleNower) Now() time.Time {
	return mytime.ExampleTime
}

func token(t *testing.T, issuer *auth.TokenIssuer, userID string) string {
	token, err := issuer.Issue(auth.Identity{UID: userID, Email: userID + "@example.com"})
	assert.NoError(t, err)
	return token
}

func get(router *mux.Router, path string, token string) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		request.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func setup(t *testing.T, ctrl *gomock.Controller) (*mux.Router, *reservation.MockStore, *auth.TokenIssuer, *recordingSleeper) {
	store := reservation.NewMockStore(ctrl)
	issuer := auth.NewTokenIssuer("my_secret", time.Hour, exampleNower{})
	sleeper := &recordingSleeper{}

	router := mux.NewRouter()
	err := NewWebService(store, issuer, sleeper, 2*time.Second, 10).RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)

	return router, store, issuer, sleeper
}
