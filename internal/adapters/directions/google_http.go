package directions

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type httpStatusError struct {
	Code int
	Body string
}

func (g *GoogleDirectionsProvider) newRequest(
	ctx context.Context,
	endpoint string,
	query url.Values,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// Upper bound on error bodies kept in httpStatusError.
const maxErrorBody = 1 << 20

// do executes req once. Responses with status >= 400 are turned into
// httpStatusError carrying the body; no retry is attempted.
func (g *GoogleDirectionsProvider) do(req *http.Request) (*http.Response, error) {
	resp, err := g.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}
