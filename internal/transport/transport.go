// Package transport builds the http.Client used to talk to TMDB.
package transport

import (
	"net/http"
	"net/url"
	"time"

	"github.com/clambin/favorites/pkg/cache"
	"github.com/clambin/go-common/httputils/roundtripper"
	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	// Timeout limits the duration of a single request. Zero means no timeout.
	Timeout time.Duration
	// MaxConcurrentRequests limits the number of requests in flight.
	MaxConcurrentRequests int64
	// PosterCacheTTL is how long downloaded posters are kept in memory. Zero disables the cache.
	PosterCacheTTL time.Duration
	// ImageBaseURL is where posters are downloaded from. Only requests to its host are cached.
	ImageBaseURL string
}

var _ prometheus.Collector = &Transport{}

// Transport is an http.Client for TMDB. Its metrics are exposed as a prometheus.Collector.
type Transport struct {
	*http.Client
	collectors []prometheus.Collector
}

// New returns a Transport. Requests pass through the poster cache (if enabled) and wait for a free slot
// in the limiter. Only then are they measured and sent, so request metrics exclude queueing time.
func New(opts Options, next http.RoundTripper) (*Transport, error) {
	if next == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.MaxIdleConns = 100
		t.MaxIdleConnsPerHost = 100
		t.MaxConnsPerHost = 100
		next = t
	}

	instrumented := newInstrumentedRoundTripper(next)
	t := Transport{collectors: []prometheus.Collector{instrumented}}
	var rt http.RoundTripper = roundtripper.New(
		roundtripper.WithLimiter(max(opts.MaxConcurrentRequests, 1)),
		roundtripper.WithRoundTripper(instrumented),
	)

	if opts.PosterCacheTTL > 0 {
		u, err := url.Parse(opts.ImageBaseURL)
		if err != nil {
			return nil, err
		}
		posters := cache.NewRoundTripper(opts.PosterCacheTTL, 2*opts.PosterCacheTTL, rt)
		posters.Cacheable = cache.ForHost(u.Host)
		t.collectors = append(t.collectors, posters)
		rt = posters
	}

	t.Client = &http.Client{Transport: rt, Timeout: opts.Timeout}
	return &t, nil
}

func (t *Transport) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range t.collectors {
		c.Describe(ch)
	}
}

func (t *Transport) Collect(ch chan<- prometheus.Metric) {
	for _, c := range t.collectors {
		c.Collect(ch)
	}
}
