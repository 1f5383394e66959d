package tmdb

import (
	"context"
	"net/http"
	"strconv"
)

type Movie struct {
	Adult            bool    `json:"adult"`
	BackdropPath     *string `json:"backdrop_path"`
	GenreIds         []int   `json:"genre_ids"`
	Id               int     `json:"id"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       *string `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Title            string  `json:"title"`
	Video            bool    `json:"video"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
}

func (c Client) GetMovie(ctx context.Context, id int) (Movie, error) {
	return call[Movie](ctx, c, http.MethodGet, "/movie/"+strconv.Itoa(id), nil, nil)
}

type MoviesPage struct {
	Page         int      `json:"page"`
	Results      *[]Movie `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
	// set when TMDB returned an error envelope instead of a page
	StatusCode    *int   `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// Movies returns the page's results, or nil if it has none.
func (p MoviesPage) Movies() []Movie {
	if p.Results == nil {
		return nil
	}
	return *p.Results
}
