package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(HTTPMetricsMiddleware)
	r.Get("/tweets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/tweets/{id}", "404"))

	req := httptest.NewRequest(http.MethodGet, "/tweets/123", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/tweets/{id}", "404"))
	assert.Equal(t, before+1, after)
}

func TestHTTPMetricsMiddleware_Unmatched(t *testing.T) {
	handler := HTTPMetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "unmatched", "200"))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "unmatched", "200"))

	assert.Equal(t, before+1, after)
}

func TestObserveEvent(t *testing.T) {
	before := testutil.ToFloat64(activityEvents.WithLabelValues("tweet.created", "published"))
	ObserveEvent("tweet.created", "published")
	assert.Equal(t, before+1, testutil.ToFloat64(activityEvents.WithLabelValues("tweet.created", "published")))

	assert.NotPanics(t, func() {
		ObserveHTTPRequest(http.MethodGet, "/feed", "200", time.Millisecond)
	})
}
