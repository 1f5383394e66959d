package cache

import (
	"bufio"
	"bytes"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/clambin/go-common/cache"
)

// ResponseCache stores complete http responses, keyed by request.
type ResponseCache struct {
	cache  *cache.Cache[string, []byte]
	GetKey func(r *http.Request) string
}

func NewResponseCache(expiration, cleanup time.Duration) *ResponseCache {
	return &ResponseCache{
		cache:  cache.New[string, []byte](expiration, cleanup),
		GetKey: func(r *http.Request) string { return r.Method + "|" + r.URL.Host + r.URL.Path },
	}
}

// Get attempts to retrieve a http.Response from the cache for the request r.  On return, key will hold the key used to store the response
// (to be passed to Put), resp will contain the cached response (if found) and ok indicates if the response was found in the cache.
//
// Clients must call resp.Body.Close when finished reading resp.Body.
func (c *ResponseCache) Get(r *http.Request) (key string, resp *http.Response, ok bool, err error) {
	key = c.GetKey(r)
	body, found := c.cache.Get(key)
	if !found {
		return key, nil, false, nil
	}

	resp, err = http.ReadResponse(bufio.NewReader(bytes.NewReader(body)), r)
	return key, resp, err == nil, err
}

// Put stores a http.Response in the cache, using the provided key. Only 200 OK responses are stored:
// Put returns false for anything else. resp.Body remains readable after the call.
func (c *ResponseCache) Put(key string, resp *http.Response) (bool, error) {
	if resp.StatusCode != http.StatusOK {
		return false, nil
	}
	buf, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return false, err
	}
	c.cache.Add(key, buf)
	return true, nil
}

// Len returns the number of entries in the cache, excluding expired ones.
func (c *ResponseCache) Len() int {
	return c.cache.Len()
}

// Size returns the number of entries in the cache, including expired ones not yet cleaned up.
func (c *ResponseCache) Size() int {
	return c.cache.Size()
}
