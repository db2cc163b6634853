package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_AddRoutesAppliesMiddlewaresInOrder(t *testing.T) {
	var calls []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/things/:id",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls = append(calls, "handler")
			w.WriteHeader(http.StatusNoContent)
		}),
		Middlewares: []func(http.Handler) http.Handler{mark("first"), mark("second")},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/things/42", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"first", "second", "handler"}, calls)
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/v1/things",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}),
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"code":"SRV_005"`))

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/things", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
