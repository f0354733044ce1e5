package mymetrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	t.Run("Counters are exposed", func(t *testing.T) {
		// setup
		router := mux.NewRouter()
		RegisterEndpoints(router)

		// given
		before := testutil.ToFloat64(ReservationsCreatedTotal)
		ReservationsCreatedTotal.Inc()
		WebhookEventsTotal.WithLabelValues("checkout.session.completed", "200").Inc()

		// when
		request, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, before+1, testutil.ToFloat64(ReservationsCreatedTotal))
		assert.Contains(t, response.Body.String(), `webhook_events_total{event_type="checkout.session.completed",status="200"}`)
	})
}
