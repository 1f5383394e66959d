package favorites

import (
	"context"

	"github.com/clambin/favorites/internal/auth"
	"github.com/clambin/favorites/pkg/tmdb"
	"golang.org/x/sync/errgroup"
)

// Detail is what a movie's detail view shows: the movie, whether it's a favorite and its poster.
type Detail struct {
	Movie    tmdb.Movie
	Favorite bool
	Poster   []byte
}

// Detail gets the favorite state and the poster of a movie in parallel. A missing or failing poster
// leaves Poster empty; only failing to get the favorite state is an error.
func (c *Client) Detail(ctx context.Context, session *auth.Session, movie tmdb.Movie) (Detail, error) {
	detail := Detail{Movie: movie}

	var g errgroup.Group
	g.Go(func() (err error) {
		detail.Favorite, err = c.IsFavorite(ctx, session, movie.Id)
		return err
	})
	if movie.PosterPath != nil && *movie.PosterPath != "" {
		g.Go(func() error {
			poster, err := c.GetPosterImage(ctx, *movie.PosterPath)
			if err != nil {
				c.Logger.Warn("failed to get poster", "movie", movie.Id, "err", err)
				return nil
			}
			detail.Poster = poster
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Detail{}, err
	}
	return detail, nil
}
