package tmdb_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clambin/favorites/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetFavoriteMoviesPage(t *testing.T) {
	s := makeTestServer("GET /account/{id}/favorite/movies", func(r *http.Request) string {
		if r.PathValue("id") != "42" || r.FormValue("session_id") != "sess1" {
			return "invalid-session.json"
		}
		return "favorite-movies-" + r.FormValue("page") + ".json"
	})
	t.Cleanup(s.Close)
	c := newClient(s)
	ctx := context.Background()

	page, err := c.GetFavoriteMoviesPage(ctx, 42, "sess1", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	require.NotNil(t, page.Results)
	require.Len(t, *page.Results, 2)
	assert.Equal(t, 550, (*page.Results)[0].Id)
	assert.Equal(t, "Fight Club", (*page.Results)[0].Title)

	page, err = c.GetFavoriteMoviesPage(ctx, 42, "sess1", 2)
	require.NoError(t, err)
	require.Len(t, *page.Results, 1)
	assert.Nil(t, (*page.Results)[0].PosterPath)

	// error envelope with HTTP 200
	_, err = c.GetFavoriteMoviesPage(ctx, 42, "wrong", 1)
	assert.ErrorIs(t, err, tmdb.ErrProtocol)
}

func TestClient_GetFavoriteMoviesPage_Envelope(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name: "empty",
			body: `{"page":1,"results":[],"total_pages":0,"total_results":0}`,
		},
		{
			name:    "status code without success field",
			body:    `{"status_code":34,"status_message":"The resource you requested could not be found."}`,
			wantErr: tmdb.ErrProtocol,
		},
		{
			name:    "status code next to results",
			body:    `{"page":1,"results":[],"status_code":1}`,
			wantErr: tmdb.ErrProtocol,
		},
		{
			name:    "no results",
			body:    `{"page":1}`,
			wantErr: tmdb.ErrProtocol,
		},
		{
			name:    "negative total_results",
			body:    `{"page":1,"results":[{"id":1}],"total_pages":1,"total_results":-1}`,
			wantErr: tmdb.ErrProtocol,
		},
		{
			name:    "negative total_pages",
			body:    `{"page":1,"results":[{"id":1}],"total_pages":-1,"total_results":1}`,
			wantErr: tmdb.ErrProtocol,
		},
		{
			name:    "too many pages",
			body:    `{"page":1,"results":[{"id":1}],"total_pages":1000000000,"total_results":1}`,
			wantErr: tmdb.ErrProtocol,
		},
		{
			name: "last page",
			body: `{"page":500,"results":[{"id":1}],"total_pages":500,"total_results":10000}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := makeJSONServer("GET /account/42/favorite/movies", http.StatusOK, tt.body)
			t.Cleanup(s.Close)

			_, err := newClient(s).GetFavoriteMoviesPage(context.Background(), 42, "sess1", 1)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_MarkFavorite(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "created", status: http.StatusCreated, body: `{"status_code":1,"status_message":"Success."}`},
		{name: "updated", status: http.StatusCreated, body: `{"status_code":12,"status_message":"The item/record was updated successfully."}`},
		{name: "deleted", status: http.StatusOK, body: `{"status_code":13,"status_message":"The item/record was deleted successfully."}`},
		{name: "unexpected code", status: http.StatusOK, body: `{"status_code":34,"status_message":"The resource you requested could not be found."}`, wantErr: tmdb.ErrProtocol},
		{name: "no code", status: http.StatusOK, body: `{"status_message":"Success."}`, wantErr: tmdb.ErrProtocol},
		{name: "not json", status: http.StatusOK, body: `Success`, wantErr: tmdb.ErrParse},
		{name: "denied", status: http.StatusUnauthorized, body: `{"status_code":3,"status_message":"Authentication failed"}`, wantErr: tmdb.ErrHTTPStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := makeJSONServer("POST /account/42/favorite", tt.status, tt.body)
			t.Cleanup(s.Close)

			status, err := newClient(s).MarkFavorite(context.Background(), 42, "sess1", 550, true)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, status.Code)
		})
	}
}

func TestClient_MarkFavorite_Request(t *testing.T) {
	type request struct {
		MediaType string `json:"media_type"`
		MediaID   int    `json:"media_id"`
		Favorite  bool   `json:"favorite"`
	}
	var got request
	var contentType, sessionID string

	m := http.NewServeMux()
	m.HandleFunc("POST /account/{id}/favorite", func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		sessionID = r.URL.Query().Get("session_id")
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"status_code":1,"status_message":"Success."}`)
	})
	s := httptest.NewServer(m)
	t.Cleanup(s.Close)

	status, err := newClient(s).MarkFavorite(context.Background(), 42, "sess1", 550, false)
	require.NoError(t, err)
	assert.Equal(t, "1 (Success.)", status.String())
	assert.Equal(t, request{MediaType: "movie", MediaID: 550, Favorite: false}, got)
	assert.Equal(t, "application/json;charset=utf-8", contentType)
	assert.Equal(t, "sess1", sessionID)
}
