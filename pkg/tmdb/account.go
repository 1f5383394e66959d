package tmdb

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"strconv"
)

// Status codes TMDB returns on a successful favorite call. 12 and 13 are returned when the item was
// updated or removed, which is also what a repeated call for the same movie gets back.
const (
	StatusSuccess = 1
	StatusUpdated = 12
	StatusDeleted = 13
)

var favoriteSuccessCodes = []int{StatusSuccess, StatusUpdated, StatusDeleted}

// MaxPages is the highest page number TMDB serves for a paged result.
const MaxPages = 500

// GetFavoriteMoviesPage returns one page of the account's favorite movies. A status envelope in the response
// is reported as a ProtocolError, whatever the HTTP status, as are page counts outside [0, MaxPages].
func (c Client) GetFavoriteMoviesPage(ctx context.Context, accountID int, sessionID string, page int) (MoviesPage, error) {
	values := url.Values{
		"session_id": []string{sessionID},
		"page":       []string{strconv.Itoa(page)},
	}
	result, err := call[MoviesPage](ctx, c, http.MethodGet, "/account/"+strconv.Itoa(accountID)+"/favorite/movies", values, nil)
	if err != nil {
		return MoviesPage{}, err
	}
	if result.StatusCode != nil {
		return MoviesPage{}, &ProtocolError{
			Field:   "status_code",
			Message: "error envelope",
			Status:  &Status{Code: result.StatusCode, Message: result.StatusMessage},
		}
	}
	if result.Results == nil {
		return MoviesPage{}, &ProtocolError{Field: "results", Message: "missing"}
	}
	if result.TotalPages < 0 || result.TotalPages > MaxPages {
		return MoviesPage{}, &ProtocolError{Field: "total_pages", Message: "out of range " + strconv.Itoa(result.TotalPages)}
	}
	if result.TotalResults < 0 {
		return MoviesPage{}, &ProtocolError{Field: "total_results", Message: "out of range " + strconv.Itoa(result.TotalResults)}
	}
	return result, nil
}

type favoriteRequest struct {
	MediaType string `json:"media_type"`
	MediaID   int    `json:"media_id"`
	Favorite  bool   `json:"favorite"`
}

// MarkFavorite marks (favorite == true) or unmarks movieID as a favorite of the account.
// The call succeeds if TMDB returns status code 1, 12 or 13.
func (c Client) MarkFavorite(ctx context.Context, accountID int, sessionID string, movieID int, favorite bool) (Status, error) {
	values := url.Values{"session_id": []string{sessionID}}
	body := favoriteRequest{MediaType: "movie", MediaID: movieID, Favorite: favorite}

	result, err := call[Status](ctx, c, http.MethodPost, "/account/"+strconv.Itoa(accountID)+"/favorite", values, body)
	if err != nil {
		return Status{}, err
	}
	if result.Code == nil {
		return Status{}, &ProtocolError{Field: "status_code", Message: "missing"}
	}
	if !slices.Contains(favoriteSuccessCodes, *result.Code) {
		return Status{}, &ProtocolError{Field: "status_code", Message: "unexpected value", Status: &result}
	}
	return result, nil
}
