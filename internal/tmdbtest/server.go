// Package tmdbtest provides an in-memory TMDB server for tests. It implements the authentication, account,
// favorite, movie and poster endpoints used by this module.
package tmdbtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"

	"github.com/clambin/favorites/pkg/tmdb"
)

const (
	APIKey   = "test-key"
	Username = "john"
	Password = "secret"
	UserID   = 42
)

type Server struct {
	*httptest.Server
	PageSize int

	lock      sync.Mutex
	nextID    int
	tokens    map[string]bool
	sessions  map[string]struct{}
	movies    map[int]tmdb.Movie
	posters   map[string][]byte
	favorites []int
	requests  []string
	tokenHold chan struct{}
}

func NewServer() *Server {
	s := Server{
		PageSize: 20,
		tokens:   make(map[string]bool),
		sessions: make(map[string]struct{}),
		movies:   make(map[int]tmdb.Movie),
		posters:  make(map[string][]byte),
	}

	m := http.NewServeMux()
	m.HandleFunc("GET /3/authentication/token/new", s.newToken)
	m.HandleFunc("GET /3/authentication/token/validate_with_login", s.validateWithLogin)
	m.HandleFunc("GET /3/authentication/session/new", s.newSession)
	m.HandleFunc("GET /3/account", s.account)
	m.HandleFunc("GET /3/account/{id}/favorite/movies", s.favoriteMovies)
	m.HandleFunc("POST /3/account/{id}/favorite", s.markFavorite)
	m.HandleFunc("GET /3/movie/{id}", s.movie)
	m.HandleFunc("GET /t/p/w342/{path}", s.poster)
	s.Server = httptest.NewServer(s.record(m))
	return &s
}

// NewClient returns a tmdb.Client for the server.
func (s *Server) NewClient(httpClient *http.Client) *tmdb.Client {
	c := tmdb.New(APIKey, httpClient)
	c.BaseURL = s.URL + "/3"
	c.ImageBaseURL = s.URL + "/t/p"
	return c
}

// AddMovie adds a movie to the catalog. If poster is not nil, it's served at the movie's poster path.
func (s *Server) AddMovie(id int, title string, poster []byte) tmdb.Movie {
	s.lock.Lock()
	defer s.lock.Unlock()
	movie := tmdb.Movie{Id: id, Title: title}
	if poster != nil {
		path := "/poster-" + strconv.Itoa(id) + ".jpg"
		movie.PosterPath = &path
		s.posters[path[1:]] = poster
	}
	s.movies[id] = movie
	return movie
}

// Favorites returns the IDs of the user's favorite movies, in the order they were added.
func (s *Server) Favorites() []int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return slices.Clone(s.favorites)
}

// Requests returns the method and path of every request received so far.
func (s *Server) Requests() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return slices.Clone(s.requests)
}

// HoldTokens makes request token calls wait until release is called.
func (s *Server) HoldTokens() (release func()) {
	hold := make(chan struct{})
	s.lock.Lock()
	s.tokenHold = hold
	s.lock.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.lock.Lock()
			s.tokenHold = nil
			s.lock.Unlock()
			close(hold)
		})
	}
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		s.lock.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) newToken(w http.ResponseWriter, r *http.Request) {
	if !s.checkAPIKey(w, r) {
		return
	}
	s.lock.Lock()
	hold := s.tokenHold
	s.lock.Unlock()
	if hold != nil {
		select {
		case <-hold:
		case <-r.Context().Done():
			return
		}
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.nextID++
	token := "token-" + strconv.Itoa(s.nextID)
	s.tokens[token] = false
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "expires_at": "2016-08-26 17:04:39 UTC", "request_token": token})
}

func (s *Server) validateWithLogin(w http.ResponseWriter, r *http.Request) {
	if !s.checkAPIKey(w, r) {
		return
	}
	q := r.URL.Query()
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.tokens[q.Get("request_token")]; !ok {
		writeStatus(w, http.StatusUnauthorized, 33, "Invalid request token: The request token is either expired or invalid.")
		return
	}
	if q.Get("username") != Username || q.Get("password") != Password {
		writeStatus(w, http.StatusUnauthorized, 30, "Invalid username and/or password: You did not provide a valid login.")
		return
	}
	s.tokens[q.Get("request_token")] = true
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "request_token": q.Get("request_token")})
}

func (s *Server) newSession(w http.ResponseWriter, r *http.Request) {
	if !s.checkAPIKey(w, r) {
		return
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if !s.tokens[r.URL.Query().Get("request_token")] {
		writeStatus(w, http.StatusUnauthorized, 17, "Session denied.")
		return
	}
	s.nextID++
	sessionID := "session-" + strconv.Itoa(s.nextID)
	s.sessions[sessionID] = struct{}{}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "session_id": sessionID})
}

func (s *Server) account(w http.ResponseWriter, r *http.Request) {
	if !s.checkSession(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": UserID, "username": Username, "iso_639_1": "en", "iso_3166_1": "US"})
}

func (s *Server) favoriteMovies(w http.ResponseWriter, r *http.Request) {
	if !s.checkSession(w, r) || !checkAccount(w, r) {
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	page = max(page, 1)

	s.lock.Lock()
	defer s.lock.Unlock()
	results := make([]tmdb.Movie, 0, s.PageSize)
	for i := (page - 1) * s.PageSize; i < len(s.favorites) && i < page*s.PageSize; i++ {
		results = append(results, s.movies[s.favorites[i]])
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"page":          page,
		"results":       results,
		"total_pages":   (len(s.favorites) + s.PageSize - 1) / s.PageSize,
		"total_results": len(s.favorites),
	})
}

func (s *Server) markFavorite(w http.ResponseWriter, r *http.Request) {
	if !s.checkSession(w, r) || !checkAccount(w, r) {
		return
	}
	var request struct {
		MediaType string `json:"media_type"`
		MediaID   int    `json:"media_id"`
		Favorite  bool   `json:"favorite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.MediaType != "movie" {
		writeStatus(w, http.StatusBadRequest, 5, "Invalid parameters: Your request parameters are incorrect.")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.movies[request.MediaID]; !ok {
		writeStatus(w, http.StatusNotFound, 34, "The resource you requested could not be found.")
		return
	}
	idx := slices.Index(s.favorites, request.MediaID)
	switch {
	case request.Favorite && idx == -1:
		s.favorites = append(s.favorites, request.MediaID)
		writeStatus(w, http.StatusCreated, tmdb.StatusSuccess, "Success.")
	case request.Favorite:
		writeStatus(w, http.StatusCreated, tmdb.StatusUpdated, "The item/record was updated successfully.")
	default:
		if idx != -1 {
			s.favorites = slices.Delete(s.favorites, idx, idx+1)
		}
		writeStatus(w, http.StatusOK, tmdb.StatusDeleted, "The item/record was deleted successfully.")
	}
}

func (s *Server) movie(w http.ResponseWriter, r *http.Request) {
	if !s.checkAPIKey(w, r) {
		return
	}
	id, _ := strconv.Atoi(r.PathValue("id"))
	s.lock.Lock()
	defer s.lock.Unlock()
	movie, ok := s.movies[id]
	if !ok {
		writeStatus(w, http.StatusNotFound, 34, "The resource you requested could not be found.")
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

func (s *Server) poster(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()
	poster, ok := s.posters[r.PathValue("path")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	_, _ = w.Write(poster)
}

func (s *Server) checkAPIKey(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.Query().Get("api_key") != APIKey {
		writeStatus(w, http.StatusUnauthorized, 7, "Invalid API key: You must be granted a valid key.")
		return false
	}
	return true
}

func (s *Server) checkSession(w http.ResponseWriter, r *http.Request) bool {
	if !s.checkAPIKey(w, r) {
		return false
	}
	s.lock.Lock()
	_, ok := s.sessions[r.URL.Query().Get("session_id")]
	s.lock.Unlock()
	if !ok {
		writeStatus(w, http.StatusUnauthorized, 3, "Authentication failed: You do not have permissions to access the service.")
	}
	return ok
}

func checkAccount(w http.ResponseWriter, r *http.Request) bool {
	if r.PathValue("id") != strconv.Itoa(UserID) {
		writeStatus(w, http.StatusNotFound, 34, "The resource you requested could not be found.")
		return false
	}
	return true
}

func writeStatus(w http.ResponseWriter, status int, code int, message string) {
	body := map[string]any{"status_code": code, "status_message": message}
	if status >= 400 {
		body["success"] = false
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json;charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
