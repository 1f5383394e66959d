package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to TMDB and show the user id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.login(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "logged in as %s (user id %d)\n", session.Username, session.UserID)
			return nil
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your favorite movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.login(cmd.Context()); err != nil {
				return err
			}
			movies, err := c.app.FavoriteMovies(cmd.Context())
			if err != nil {
				return err
			}
			for _, movie := range movies {
				printf(cmd.OutOrStdout(), "%d\t%s\n", movie.Id, movie.Title)
			}
			return nil
		},
	}
}

func (c *cli) setFavoriteCmd(use, short string, favorite bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <movie id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := movieID(args[0])
			if err != nil {
				return err
			}
			if _, err = c.login(cmd.Context()); err != nil {
				return err
			}
			if err = c.app.SetFavorite(cmd.Context(), id, favorite); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%d: favorite=%t\n", id, favorite)
			return nil
		},
	}
}

func (c *cli) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <movie id>",
		Short: "Add a movie to your favorites, or remove it if it already is one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := movieID(args[0])
			if err != nil {
				return err
			}
			if _, err = c.login(cmd.Context()); err != nil {
				return err
			}
			favorite, err := c.app.ToggleFavorite(cmd.Context(), id)
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%d: favorite=%t\n", id, favorite)
			return nil
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <movie id>",
		Short: "Show a movie and whether it's one of your favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := movieID(args[0])
			if err != nil {
				return err
			}
			if _, err = c.login(cmd.Context()); err != nil {
				return err
			}
			detail, err := c.app.MovieDetail(cmd.Context(), id)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printf(w, "%d\t%s\n", detail.Movie.Id, detail.Movie.Title)
			if detail.Movie.ReleaseDate != "" {
				printf(w, "released: %s\n", detail.Movie.ReleaseDate)
			}
			printf(w, "favorite: %t\n", detail.Favorite)
			printf(w, "poster:   %d bytes\n", len(detail.Poster))
			return nil
		},
	}
}

func (c *cli) posterCmd() *cobra.Command {
	var output string
	cmd := cobra.Command{
		Use:   "poster <movie id>",
		Short: "Download a movie's poster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := movieID(args[0])
			if err != nil {
				return err
			}
			movie, err := c.client.GetMovie(cmd.Context(), id)
			if err != nil {
				return err
			}
			if movie.PosterPath == nil || *movie.PosterPath == "" {
				return fmt.Errorf("movie %d has no poster", id)
			}
			poster, err := c.app.Favorites.GetPosterImage(cmd.Context(), *movie.PosterPath)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(poster)
				return err
			}
			if err = os.WriteFile(output, poster, 0o644); err != nil {
				return err
			}
			c.logger.Info("poster saved", "movie", id, "file", output, "size", len(poster))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write the poster to (default is stdout)")
	return &cmd
}

func movieID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid movie id %q", arg)
	}
	return id, nil
}
