package tmdb

import (
	"context"
	"net/http"
	"net/url"
)

type RequestToken struct {
	Success      *bool   `json:"success"`
	ExpiresAt    string  `json:"expires_at"`
	RequestToken *string `json:"request_token"`
}

// CreateRequestToken requests a new, unauthorized request token.
func (c Client) CreateRequestToken(ctx context.Context) (string, error) {
	result, err := call[RequestToken](ctx, c, http.MethodGet, "/authentication/token/new", nil, nil)
	if err == nil {
		err = requireSuccess(result.Success)
	}
	if err != nil {
		return "", err
	}
	if result.RequestToken == nil || *result.RequestToken == "" {
		return "", &ProtocolError{Field: "request_token", Message: "missing"}
	}
	return *result.RequestToken, nil
}

// ValidateWithLogin authorizes requestToken with the user's credentials.
func (c Client) ValidateWithLogin(ctx context.Context, username, password, requestToken string) error {
	values := url.Values{
		"username":      []string{username},
		"password":      []string{password},
		"request_token": []string{requestToken},
	}
	result, err := call[RequestToken](ctx, c, http.MethodGet, "/authentication/token/validate_with_login", values, nil)
	if err == nil {
		err = requireSuccess(result.Success)
	}
	return err
}

type NewSession struct {
	Success   *bool   `json:"success"`
	SessionID *string `json:"session_id"`
}

// CreateSession exchanges an authorized request token for a session id.
func (c Client) CreateSession(ctx context.Context, requestToken string) (string, error) {
	values := url.Values{"request_token": []string{requestToken}}
	result, err := call[NewSession](ctx, c, http.MethodGet, "/authentication/session/new", values, nil)
	if err == nil {
		err = requireSuccess(result.Success)
	}
	if err != nil {
		return "", err
	}
	if result.SessionID == nil || *result.SessionID == "" {
		return "", &ProtocolError{Field: "session_id", Message: "missing"}
	}
	return *result.SessionID, nil
}

type Account struct {
	Id           *int   `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	IncludeAdult bool   `json:"include_adult"`
	Iso6391      string `json:"iso_639_1"`
	Iso31661     string `json:"iso_3166_1"`
}

// GetAccount returns the account owning sessionID. The returned Account always has an ID.
func (c Client) GetAccount(ctx context.Context, sessionID string) (Account, error) {
	values := url.Values{"session_id": []string{sessionID}}
	result, err := call[Account](ctx, c, http.MethodGet, "/account", values, nil)
	if err != nil {
		return Account{}, err
	}
	if result.Id == nil {
		return Account{}, &ProtocolError{Field: "id", Message: "missing"}
	}
	return result, nil
}
