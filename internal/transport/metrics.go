package transport

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ http.RoundTripper = &instrumentedRoundTripper{}
var _ prometheus.Collector = &instrumentedRoundTripper{}

// instrumentedRoundTripper records the number and duration of the requests sent to TMDB.
type instrumentedRoundTripper struct {
	next     http.RoundTripper
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newInstrumentedRoundTripper(next http.RoundTripper) *instrumentedRoundTripper {
	return &instrumentedRoundTripper{
		next: next,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tmdb",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Number of requests sent to TMDB",
		}, []string{"method", "endpoint", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tmdb",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Duration of requests sent to TMDB, excluding time queued for the concurrency limit",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}
}

func (r *instrumentedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := r.next.RoundTrip(req)
	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	endpoint := Endpoint(req.URL.Path)
	r.requests.WithLabelValues(req.Method, endpoint, code).Inc()
	r.duration.WithLabelValues(req.Method, endpoint).Observe(time.Since(start).Seconds())
	return resp, err
}

func (r *instrumentedRoundTripper) Describe(ch chan<- *prometheus.Desc) {
	r.requests.Describe(ch)
	r.duration.Describe(ch)
}

func (r *instrumentedRoundTripper) Collect(ch chan<- prometheus.Metric) {
	r.requests.Collect(ch)
	r.duration.Collect(ch)
}

// Endpoint reduces a request path to a low-cardinality label: numeric segments (other than the leading
// API version) become {id} and image paths are reduced to their size.
func Endpoint(path string) string {
	if i := strings.Index(path, "/t/p/"); i != -1 {
		size, _, _ := strings.Cut(path[i+len("/t/p/"):], "/")
		return "/t/p/" + size
	}
	parts := strings.Split(path, "/")
	for i := 2; i < len(parts); i++ {
		if _, err := strconv.Atoi(parts[i]); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}
