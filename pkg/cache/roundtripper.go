package cache

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ http.RoundTripper = &RoundTripper{}
var _ prometheus.Collector = &RoundTripper{}

// RoundTripper serves GET requests from a ResponseCache. Requests for which Cacheable returns false
// (and all other methods) are passed to the next RoundTripper as is.
type RoundTripper struct {
	Cacheable func(*http.Request) bool
	cache     *ResponseCache
	next      http.RoundTripper
	metrics   *metrics
}

func NewRoundTripper(expiry, cleanup time.Duration, rt http.RoundTripper) *RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &RoundTripper{
		Cacheable: func(*http.Request) bool { return true },
		cache:     NewResponseCache(expiry, cleanup),
		next:      rt,
		metrics:   newMetrics("tmdb", "client"),
	}
}

// ForHost returns a Cacheable function that accepts requests for host only.
func ForHost(host string) func(*http.Request) bool {
	return func(r *http.Request) bool { return r.URL.Host == host }
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet || !r.Cacheable(req) {
		return r.next.RoundTrip(req)
	}

	r.metrics.cacheAttempts.Inc()
	cacheKey, resp, found, err := r.cache.Get(req)
	if err != nil {
		return nil, err
	}
	if found {
		r.metrics.cacheHits.Inc()
		return resp, nil
	}

	if resp, err = r.next.RoundTrip(req); err != nil {
		return nil, err
	}
	if _, err = r.cache.Put(cacheKey, resp); err != nil {
		_ = resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

func (r *RoundTripper) Describe(ch chan<- *prometheus.Desc) {
	r.metrics.Describe(ch)
}

func (r *RoundTripper) Collect(ch chan<- prometheus.Metric) {
	r.metrics.cacheSize.Set(float64(r.cache.Len()))
	r.metrics.cacheTotalSize.Set(float64(r.cache.Size()))
	r.metrics.Collect(ch)
}
