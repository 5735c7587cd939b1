package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total number of failed HTTP requests by error name",
		},
		[]string{"endpoint", "error"},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
		},
		[]string{"method", "endpoint"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		},
		[]string{"method", "endpoint"},
	)

	// Database metrics
	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	dbQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	// Business metrics
	contactSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
	)

	carInquiriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "car_inquiries_total",
			Help: "Total number of car inquiries",
		},
		[]string{"inquiry_type"}, // details, test_drive, purchase
	)

	testimonialsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "testimonials_submitted_total",
			Help: "Total number of testimonials submitted",
		},
	)

	testimonialReviewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "testimonial_reviews_total",
			Help: "Total number of testimonial approval decisions",
		},
		[]string{"decision"}, // approved, disapproved
	)

	vehiclesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vehicles_created_total",
			Help: "Total number of vehicles added to the catalog",
		},
		[]string{"category"},
	)
)

// ErrorNameHeader carries the goa error name of a failed response.
const ErrorNameHeader = "goa-error"

// unmatchedEndpoint labels requests no route answered, so unknown paths share one series.
const unmatchedEndpoint = "unmatched"

// HTTPMiddleware records request count, latency and sizes per route. Failed responses are also
// counted by the error name the transport writes in ErrorNameHeader.
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		rec := &statusRecorder{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(rec, r)
		observeRequest(r, rec, time.Since(start))
	})
}

func observeRequest(r *http.Request, rec *statusRecorder, elapsed time.Duration) {
	status := rec.Status()
	errName := rec.Header().Get(ErrorNameHeader)
	endpoint := endpointLabel(r.URL.Path)
	if status == http.StatusNotFound && errName == "" {
		endpoint = unmatchedEndpoint
	}
	code := strconv.Itoa(status)

	httpRequestsTotal.WithLabelValues(r.Method, endpoint, code).Inc()
	httpRequestDuration.WithLabelValues(r.Method, endpoint, code).Observe(elapsed.Seconds())
	if r.ContentLength > 0 {
		httpRequestSize.WithLabelValues(r.Method, endpoint).Observe(float64(r.ContentLength))
	}
	httpResponseSize.WithLabelValues(r.Method, endpoint).Observe(float64(rec.size))

	if status >= http.StatusBadRequest {
		if errName == "" {
			errName = "unknown"
		}
		httpErrorsTotal.WithLabelValues(endpoint, errName).Inc()
	}
}

// collections whose next path segment is a record id
var idCollections = map[string]bool{
	"contact":      true,
	"inquiries":    true,
	"testimonials": true,
	"vehicles":     true,
}

// endpointLabel replaces record ids in path with {id} to keep label cardinality bounded.
func endpointLabel(path string) string {
	segs := strings.Split(path, "/")
	for i := 2; i < len(segs); i++ {
		if segs[i] != "" && segs[i-2] == "api" && idCollections[segs[i-1]] {
			segs[i] = "{id}"
		}
	}
	return strings.Join(segs, "/")
}

// statusRecorder keeps the first status written and counts body bytes.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.size += n
	return n, err
}

// Status is the response status, 200 when the handler wrote nothing.
func (s *statusRecorder) Status() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// RecordContactSubmission records a new contact form submission
func RecordContactSubmission() {
	contactSubmissionsTotal.Inc()
}

// RecordCarInquiry records a new car inquiry
func RecordCarInquiry(inquiryType string) {
	carInquiriesTotal.WithLabelValues(inquiryType).Inc()
}

// RecordTestimonialSubmitted records a new testimonial
func RecordTestimonialSubmitted() {
	testimonialsSubmittedTotal.Inc()
}

// RecordTestimonialReview records an approval decision
func RecordTestimonialReview(approved bool) {
	decision := "disapproved"
	if approved {
		decision = "approved"
	}
	testimonialReviewsTotal.WithLabelValues(decision).Inc()
}

// RecordVehicleCreated records a new catalog entry
func RecordVehicleCreated(category string) {
	vehiclesCreatedTotal.WithLabelValues(category).Inc()
}

// RecordDBQuery records a database query
func RecordDBQuery(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	dbQueriesTotal.WithLabelValues(operation, status).Inc()
	dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnections updates database connection metrics
func UpdateDBConnections(active, idle int) {
	dbConnectionsActive.Set(float64(active))
	dbConnectionsIdle.Set(float64(idle))
}
