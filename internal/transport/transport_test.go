package transport_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/clambin/favorites/internal/transport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransport(t *testing.T) {
	var apiCalls, imageCalls atomic.Int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiCalls.Add(1)
		_, _ = io.WriteString(w, `{"id":550}`)
	}))
	t.Cleanup(api.Close)
	images := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		imageCalls.Add(1)
		_, _ = io.WriteString(w, "poster")
	}))
	t.Cleanup(images.Close)

	tr, err := transport.New(transport.Options{
		Timeout:               time.Second,
		MaxConcurrentRequests: 2,
		PosterCacheTTL:        time.Hour,
		ImageBaseURL:          images.URL + "/t/p",
	}, nil)
	require.NoError(t, err)

	for range 2 {
		body := get(t, tr.Client, api.URL+"/3/movie/550")
		assert.Equal(t, `{"id":550}`, body)
		body = get(t, tr.Client, images.URL+"/t/p/w342/poster.jpg")
		assert.Equal(t, "poster", body)
	}
	assert.Equal(t, int32(2), apiCalls.Load())
	assert.Equal(t, int32(1), imageCalls.Load())

	assert.NoError(t, testutil.CollectAndCompare(tr, strings.NewReader(`
# HELP tmdb_client_cache_hit Number of times the cache was used
# TYPE tmdb_client_cache_hit counter
tmdb_client_cache_hit 1
# HELP tmdb_client_cache_total Number of times the cache was tried
# TYPE tmdb_client_cache_total counter
tmdb_client_cache_total 2
# HELP tmdb_client_requests_total Number of requests sent to TMDB
# TYPE tmdb_client_requests_total counter
tmdb_client_requests_total{code="200",endpoint="/3/movie/{id}",method="GET"} 2
tmdb_client_requests_total{code="200",endpoint="/t/p/w342",method="GET"} 1
`), "tmdb_client_requests_total", "tmdb_client_cache_total", "tmdb_client_cache_hit"))
	assert.Equal(t, 2, testutil.CollectAndCount(tr, "tmdb_client_request_duration_seconds"))
}

func TestTransport_NoCache(t *testing.T) {
	var calls atomic.Int32
	images := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = io.WriteString(w, "poster")
	}))
	t.Cleanup(images.Close)

	tr, err := transport.New(transport.Options{ImageBaseURL: images.URL + "/t/p"}, http.DefaultTransport)
	require.NoError(t, err)

	for range 2 {
		assert.Equal(t, "poster", get(t, tr.Client, images.URL+"/t/p/w342/poster.jpg"))
	}
	assert.Equal(t, int32(2), calls.Load())
	assert.Zero(t, testutil.CollectAndCount(tr, "tmdb_client_cache_total"))
}

func TestTransport_Error(t *testing.T) {
	s := httptest.NewServer(http.NotFoundHandler())
	url := s.URL
	s.Close()

	tr, err := transport.New(transport.Options{}, nil)
	require.NoError(t, err)
	_, err = tr.Get(url + "/3/account")
	require.Error(t, err)

	assert.NoError(t, testutil.CollectAndCompare(tr, strings.NewReader(`
# HELP tmdb_client_requests_total Number of requests sent to TMDB
# TYPE tmdb_client_requests_total counter
tmdb_client_requests_total{code="error",endpoint="/3/account",method="GET"} 1
`), "tmdb_client_requests_total"))
}

func TestTransport_DurationExcludesQueueing(t *testing.T) {
	const delay = 200 * time.Millisecond
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(delay)
		_, _ = io.WriteString(w, "{}")
	}))
	t.Cleanup(s.Close)

	tr, err := transport.New(transport.Options{MaxConcurrentRequests: 1}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := tr.Get(s.URL + "/3/movie/550")
			if assert.NoError(t, err) {
				_ = resp.Body.Close()
			}
		}()
	}
	wg.Wait()

	r := prometheus.NewPedanticRegistry()
	r.MustRegister(tr)
	families, err := r.Gather()
	require.NoError(t, err)
	var count uint64
	var sum float64
	for _, family := range families {
		if family.GetName() != "tmdb_client_request_duration_seconds" {
			continue
		}
		for _, m := range family.GetMetric() {
			count += m.GetHistogram().GetSampleCount()
			sum += m.GetHistogram().GetSampleSum()
		}
	}
	assert.Equal(t, uint64(2), count)
	// the second request waited a full delay for the first one; that wait isn't measured
	assert.Less(t, sum, (2*delay + delay/2).Seconds())
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/3/authentication/token/new", want: "/3/authentication/token/new"},
		{path: "/3/account/42/favorite/movies", want: "/3/account/{id}/favorite/movies"},
		{path: "/3/movie/550", want: "/3/movie/{id}"},
		{path: "/t/p/w342/kqjL17yufvn9OVLyXYpvtyrFfak.jpg", want: "/t/p/w342"},
		{path: "/", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, transport.Endpoint(tt.path))
		})
	}
}

func get(t *testing.T, c *http.Client, url string) string {
	t.Helper()
	resp, err := c.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
