package favorites

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clambin/favorites/internal/auth"
	"github.com/clambin/favorites/pkg/tmdb"
	"github.com/clambin/go-common/set"
	"golang.org/x/sync/errgroup"
)

type TMDBClient interface {
	GetFavoriteMoviesPage(ctx context.Context, accountID int, sessionID string, page int) (tmdb.MoviesPage, error)
	MarkFavorite(ctx context.Context, accountID int, sessionID string, movieID int, favorite bool) (tmdb.Status, error)
	GetPosterImage(ctx context.Context, path string) ([]byte, error)
}

var _ TMDBClient = tmdb.Client{}

var ErrNotAuthenticated = errors.New("no authenticated session")

// DefaultFavoriteTimeout limits how long SetFavorite waits for TMDB.
const DefaultFavoriteTimeout = 10 * time.Second

// Client manages the favorite movies of the user owning an authenticated session.
// It only reads the session, so calls may run concurrently.
type Client struct {
	TMDBClient      TMDBClient
	Logger          *slog.Logger
	FavoriteTimeout time.Duration
}

func New(c TMDBClient, logger *slog.Logger) *Client {
	return &Client{
		TMDBClient:      c,
		Logger:          logger,
		FavoriteTimeout: DefaultFavoriteTimeout,
	}
}

// FavoriteMovies returns all of the user's favorite movies. The first page tells how many pages there are;
// the remaining pages are fetched in parallel.
func (c *Client) FavoriteMovies(ctx context.Context, session *auth.Session) ([]tmdb.Movie, error) {
	s, err := authenticated(session)
	if err != nil {
		return nil, err
	}

	first, err := c.TMDBClient.GetFavoriteMoviesPage(ctx, s.UserID, s.SessionID, 1)
	if err != nil {
		return nil, fmt.Errorf("favorite movies: %w", err)
	}

	pages := make([][]tmdb.Movie, max(first.TotalPages, 1))
	pages[0] = first.Movies()

	g, ctx := errgroup.WithContext(ctx)
	for page := 2; page <= first.TotalPages; page++ {
		g.Go(func() error {
			result, err := c.TMDBClient.GetFavoriteMoviesPage(ctx, s.UserID, s.SessionID, page)
			if err == nil {
				pages[page-1] = result.Movies()
			}
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("favorite movies: %w", err)
	}

	movies := make([]tmdb.Movie, 0, len(pages)*len(pages[0]))
	for _, page := range pages {
		movies = append(movies, page...)
	}
	c.Logger.Debug("favorite movies retrieved", "session", s, "count", len(movies), "pages", len(pages))
	return movies, nil
}

// ListFavorites returns the IDs of the user's favorite movies.
func (c *Client) ListFavorites(ctx context.Context, session *auth.Session) (set.Set[int], error) {
	movies, err := c.FavoriteMovies(ctx, session)
	if err != nil {
		return nil, err
	}
	ids := set.New[int]()
	for _, movie := range movies {
		ids.Add(movie.Id)
	}
	return ids, nil
}

func (c *Client) IsFavorite(ctx context.Context, session *auth.Session, movieID int) (bool, error) {
	ids, err := c.ListFavorites(ctx, session)
	if err != nil {
		return false, err
	}
	return ids.Contains(movieID), nil
}

// SetFavorite marks (favorite == true) or unmarks movieID as one of the user's favorites.
// Marking a movie that is already a favorite (or unmarking one that isn't) also succeeds.
func (c *Client) SetFavorite(ctx context.Context, session *auth.Session, movieID int, favorite bool) (tmdb.Status, error) {
	s, err := authenticated(session)
	if err != nil {
		return tmdb.Status{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, cmp.Or(c.FavoriteTimeout, DefaultFavoriteTimeout))
	defer cancel()

	status, err := c.TMDBClient.MarkFavorite(ctx, s.UserID, s.SessionID, movieID, favorite)
	if err != nil {
		c.Logger.Warn("failed to set favorite", "movie", movieID, "favorite", favorite, "err", err)
		return tmdb.Status{}, fmt.Errorf("set favorite: %w", err)
	}
	c.Logger.Debug("favorite set", "movie", movieID, "favorite", favorite, "status", status)
	return status, nil
}

// ToggleFavorite flips the favorite state of movieID and returns the new state.
func (c *Client) ToggleFavorite(ctx context.Context, session *auth.Session, movieID int) (bool, error) {
	isFavorite, err := c.IsFavorite(ctx, session, movieID)
	if err != nil {
		return false, err
	}
	if _, err = c.SetFavorite(ctx, session, movieID, !isFavorite); err != nil {
		return isFavorite, err
	}
	return !isFavorite, nil
}

func (c *Client) GetPosterImage(ctx context.Context, path string) ([]byte, error) {
	image, err := c.TMDBClient.GetPosterImage(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("poster %s: %w", path, err)
	}
	return image, nil
}

func authenticated(session *auth.Session) (auth.Snapshot, error) {
	if session == nil {
		return auth.Snapshot{}, ErrNotAuthenticated
	}
	s := session.Snapshot()
	if !s.Authenticated() {
		return auth.Snapshot{}, ErrNotAuthenticated
	}
	return s, nil
}
