package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p"
)

type Client struct {
	BaseURL      string
	ImageBaseURL string
	apiKey       string
	httpClient   *http.Client
}

func New(apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL:      DefaultBaseURL,
		ImageBaseURL: DefaultImageBaseURL,
		apiKey:       apiKey,
		httpClient:   httpClient,
	}
}

// APIKey returns the API key the client adds to every API request.
func (c Client) APIKey() string {
	return c.apiKey
}

func (c Client) baseForm() url.Values {
	form := make(url.Values)
	form.Set("api_key", c.apiKey)
	return form
}

// BuildURL appends pathExtension to basePath and adds params as a percent-encoded query string.
// Query parameters are encoded in sorted key order, so the same params always produce the same URL.
func BuildURL(basePath, pathExtension string, params url.Values) (string, error) {
	u, err := url.Parse(basePath + pathExtension)
	if err != nil {
		return "", fmt.Errorf("invalid base path %q: %w", basePath, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("invalid base path %q: not an absolute url", basePath)
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

func call[T any](ctx context.Context, c Client, method string, path string, values url.Values, body any) (T, error) {
	var result T

	form := c.baseForm()
	for key, v := range values {
		for _, value := range v {
			form.Add(key, value)
		}
	}

	target, err := BuildURL(c.BaseURL, path, form)
	if err != nil {
		return result, err
	}

	var reqBody io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err = json.NewEncoder(&buf).Encode(body); err != nil {
			return result, fmt.Errorf("encode: %w", err)
		}
		reqBody = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return result, fmt.Errorf("request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	if body != nil {
		req.Header.Set("content-type", "application/json;charset=utf-8")
	}

	payload, err := c.do(req)
	if err != nil {
		return result, err
	}

	err = decode(payload, &result)
	return result, err
}

func (c Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func(Body io.ReadCloser) { _ = Body.Close() }(resp.Body)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := HTTPStatusError{StatusCode: resp.StatusCode, Status: resp.Status}
		// TMDB usually explains a failed call in a status envelope
		var envelope Status
		if json.Unmarshal(payload, &envelope) == nil && envelope.Code != nil {
			statusErr.Envelope = &envelope
		}
		return nil, &statusErr
	}
	return payload, nil
}

func decode(payload []byte, v any) error {
	err := json.Unmarshal(payload, v)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ProtocolError{Field: typeErr.Field, Message: "unexpected type " + typeErr.Value}
	}
	return &ParseError{Err: err}
}

// Status is the status envelope TMDB returns on write calls and on errors.
type Status struct {
	Code    *int   `json:"status_code"`
	Message string `json:"status_message"`
}

func (s Status) String() string {
	if s.Code == nil {
		return "no status"
	}
	return fmt.Sprintf("%d (%s)", *s.Code, s.Message)
}

func requireSuccess(success *bool) error {
	if success == nil {
		return &ProtocolError{Field: "success", Message: "missing"}
	}
	if !*success {
		return &ProtocolError{Field: "success", Message: "not true"}
	}
	return nil
}
