package myhttpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSend(t *testing.T) {
	c := context.TODO()

	t.Run("Post with headers", func(t *testing.T) {
		var received *http.Request
		var receivedBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r
			b, _ := io.ReadAll(r.Body)
			receivedBody = string(b)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
		}))
		defer server.Close()

		headers := http.Header{}
		headers.Set("Authorization", "Bearer abc")
		status, body, err := New().Send(c, http.MethodPost, server.URL+"/api/checkout/session", headers, []byte(`{"vehicleId":"v1"}`))

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, `{"url":"https://checkout.stripe.com/c/pay/cs_test_1"}`, string(body))
		assert.Equal(t, "Bearer abc", received.Header.Get("Authorization"))
		assert.Equal(t, "application/json", received.Header.Get("Content-Type"))
		assert.Equal(t, `{"vehicleId":"v1"}`, receivedBody)
	})

	t.Run("Get without body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		status, _, err := New().Send(c, http.MethodGet, server.URL, nil, nil)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, _, err := New().Send(c, http.MethodGet, url, nil, nil)

		assert.Error(t, err)
	})
}
