package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// PosterSize is the image size used for movie posters.
const PosterSize = "w342"

// GetImage returns the raw image at ImageBaseURL/size/path. The body is not inspected.
func (c Client) GetImage(ctx context.Context, size string, path string) ([]byte, error) {
	target, err := url.JoinPath(c.ImageBaseURL, size, path)
	if err != nil {
		return nil, fmt.Errorf("invalid image url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	return c.do(req)
}

func (c Client) GetPosterImage(ctx context.Context, path string) ([]byte, error) {
	return c.GetImage(ctx, PosterSize, path)
}
