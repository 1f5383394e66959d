package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/clambin/favorites/internal/auth"
	"github.com/clambin/favorites/internal/favorites"
	"github.com/clambin/favorites/pkg/tmdb"
	"github.com/clambin/go-common/set"
)

var ErrAuthenticationInProgress = errors.New("authentication already in progress")

// TMDBClient is everything App needs from the TMDB API.
type TMDBClient interface {
	auth.TMDBClient
	favorites.TMDBClient
	GetMovie(ctx context.Context, id int) (tmdb.Movie, error)
	APIKey() string
}

var _ TMDBClient = tmdb.Client{}

// App holds the session of the (single) user, and the calls a front end makes on the user's behalf.
// Favorite calls only read the session and may run concurrently. Only one authentication flow runs at a time.
type App struct {
	TMDBClient TMDBClient
	Favorites  *favorites.Client
	Logger     *slog.Logger

	session        *auth.Session
	lock           sync.Mutex
	authenticating bool
}

func New(c TMDBClient, logger *slog.Logger) *App {
	return &App{
		TMDBClient: c,
		Favorites:  favorites.New(c, logger.With("component", "favorites")),
		Logger:     logger,
		session:    auth.NewSession(c.APIKey()),
	}
}

// BeginAuthentication runs the authentication flow in the background. The returned channel receives
// the outcome (nil, or an *auth.Error identifying the failing stage) and is then closed.
func (a *App) BeginAuthentication(ctx context.Context, username, password string) <-chan error {
	ch := make(chan error, 1)
	if !a.startAuthentication() {
		ch <- ErrAuthenticationInProgress
		close(ch)
		return ch
	}
	go func() {
		defer close(ch)
		ch <- a.authenticate(ctx, username, password)
	}()
	return ch
}

// Authenticate runs the authentication flow and waits for it to finish.
func (a *App) Authenticate(ctx context.Context, username, password string) error {
	if !a.startAuthentication() {
		return ErrAuthenticationInProgress
	}
	return a.authenticate(ctx, username, password)
}

func (a *App) startAuthentication() bool {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.authenticating {
		return false
	}
	a.authenticating = true
	return true
}

func (a *App) authenticate(ctx context.Context, username, password string) error {
	defer func() {
		a.lock.Lock()
		a.authenticating = false
		a.lock.Unlock()
	}()

	// a new flow starts from a clean session
	a.session.Clear()
	flow := auth.NewFlow(a.TMDBClient, a.session, a.Logger.With("component", "auth"))
	err := flow.Run(ctx, username, password)
	if err == nil {
		a.Logger.Info("logged in", "session", a.session.Snapshot())
	}
	return err
}

// CurrentSession returns the current session, if the user is logged in.
func (a *App) CurrentSession() (auth.Snapshot, bool) {
	s := a.session.Snapshot()
	return s, s.Authenticated()
}

func (a *App) Logout() {
	a.session.Clear()
}

func (a *App) ListFavorites(ctx context.Context) (set.Set[int], error) {
	return a.Favorites.ListFavorites(ctx, a.session)
}

func (a *App) FavoriteMovies(ctx context.Context) ([]tmdb.Movie, error) {
	return a.Favorites.FavoriteMovies(ctx, a.session)
}

func (a *App) SetFavorite(ctx context.Context, movieID int, favorite bool) error {
	_, err := a.Favorites.SetFavorite(ctx, a.session, movieID, favorite)
	return err
}

// ToggleFavorite flips the favorite state of movieID and returns the new state.
func (a *App) ToggleFavorite(ctx context.Context, movieID int) (bool, error) {
	return a.Favorites.ToggleFavorite(ctx, a.session, movieID)
}

// MovieDetail returns the movie, its favorite state and its poster.
func (a *App) MovieDetail(ctx context.Context, movieID int) (favorites.Detail, error) {
	movie, err := a.TMDBClient.GetMovie(ctx, movieID)
	if err != nil {
		return favorites.Detail{}, err
	}
	return a.Favorites.Detail(ctx, a.session, movie)
}
