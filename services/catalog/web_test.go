package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestCatalogWeb(t *testing.T) {
	router := setup(t)

	t.Run("List vehicles", func(t *testing.T) {
		// when
		response := get(router, "/api/vehicles")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		result := []Vehicle{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &result))
		assert.Len(t, result, 6)
	})

	t.Run("List vehicles by brand", func(t *testing.T) {
		// when
		response := get(router, "/api/vehicles?brand=McLaren")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		result := []Vehicle{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &result))
		assert.Len(t, result, 1)
		assert.Equal(t, "mclaren-720s", result[0].ID)
	})

	t.Run("Featured vehicles", func(t *testing.T) {
		// when
		response := get(router, "/api/vehicles/featured")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		result := []Vehicle{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &result))
		assert.Len(t, result, 6)
	})

	t.Run("Vehicle details", func(t *testing.T) {
		// when
		response := get(router, "/api/vehicles/mercedes-amg-gt-r")

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		result := Vehicle{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &result))
		assert.Equal(t, "AMG GT-R", result.Name)
		assert.Equal(t, "Grand Tourer", result.Type)
	})

	t.Run("Unknown vehicle", func(t *testing.T) {
		// when
		response := get(router, "/api/vehicles/trabant-601")

		// then
		assert.Equal(t, http.StatusNotFound, response.Code)
		assert.Contains(t, response.Body.String(), "vehicle trabant-601 not found")
	})

	t.Run("Content endpoints", func(t *testing.T) {
		for _, path := range []string{"/api/brands", "/api/reviews", "/api/engineering", "/api/story"} {
			response := get(router, path)
			assert.Equal(t, http.StatusOK, response.Code, path)
		}
	})
}

func setup(t *testing.T) *mux.Router {
	router := mux.NewRouter()
	err := NewWebService(New()).RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)
	return router
}

func get(router *mux.Router, path string) *httptest.ResponseRecorder {
	request, _ := http.NewRequest(http.MethodGet, path, nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
