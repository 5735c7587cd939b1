package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEndpointLabel(t *testing.T) {
	tests := map[string]string{
		"/api/":                            "/api/",
		"/api/contact":                     "/api/contact",
		"/api/contact/6f1c9d7e":            "/api/contact/{id}",
		"/api/vehicles/new-1":              "/api/vehicles/{id}",
		"/api/testimonials/test-1/approve": "/api/testimonials/{id}/approve",
		"/api/dashboard/stats":             "/api/dashboard/stats",
		"/health":                          "/health",
	}
	for path, want := range tests {
		assert.Equal(t, want, endpointLabel(path), path)
	}
}

func TestHTTPMiddlewareCountsByEndpoint(t *testing.T) {
	h := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(ErrorNameHeader, "not_found")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"name":"not_found"}`))
	}))

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/vehicles/{id}", "404")
	before := testutil.ToFloat64(counter)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/vehicles/missing-1", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/vehicles/missing-2", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestHTTPMiddlewareCountsErrorsByName(t *testing.T) {
	h := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(ErrorNameHeader, "missing_field")
		w.WriteHeader(http.StatusBadRequest)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	failed := httpErrorsTotal.WithLabelValues("/api/vehicles", "missing_field")
	requests := httpRequestsTotal.WithLabelValues(http.MethodPost, "/api/vehicles", "400")
	beforeFailed, beforeRequests := testutil.ToFloat64(failed), testutil.ToFloat64(requests)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/vehicles", nil))

	assert.Equal(t, beforeFailed+1, testutil.ToFloat64(failed))
	assert.Equal(t, beforeRequests+1, testutil.ToFloat64(requests))
}

func TestHTTPMiddlewareCollapsesUnknownRoutes(t *testing.T) {
	h := HTTPMiddleware(http.NotFoundHandler())

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedEndpoint, "404")
	failed := httpErrorsTotal.WithLabelValues(unmatchedEndpoint, "unknown")
	before, beforeFailed := testutil.ToFloat64(counter), testutil.ToFloat64(failed)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/wp-admin/setup.php", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/nothing/here", nil))

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, beforeFailed+2, testutil.ToFloat64(failed))
}

func TestHTTPMiddlewareSkipsMetricsAndDefaultsToOK(t *testing.T) {
	h := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	scrapes := httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics", "200")
	health := httpRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")
	beforeScrapes, beforeHealth := testutil.ToFloat64(scrapes), testutil.ToFloat64(health)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, beforeScrapes, testutil.ToFloat64(scrapes))
	assert.Equal(t, beforeHealth+1, testutil.ToFloat64(health))
}

func TestRecordTestimonialReview(t *testing.T) {
	approved := testutil.ToFloat64(testimonialReviewsTotal.WithLabelValues("approved"))
	RecordTestimonialReview(true)
	assert.Equal(t, approved+1, testutil.ToFloat64(testimonialReviewsTotal.WithLabelValues("approved")))
}
