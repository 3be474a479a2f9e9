package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.scryfall.com"
	defaultTimeout = 10 * time.Second

	// The upstream asks clients to stay under 10 requests per second.
	requestInterval = 100 * time.Millisecond
)

// ErrTimeout reports that the outbound call exceeded its fixed deadline.
// There is exactly one attempt per call; no retries.
var ErrTimeout = errors.New("upstream request timed out")

// ErrNotFound reports the upstream's empty-result signal (HTTP 404). Callers
// treat it as a valid empty result, not a failure.
var ErrNotFound = errors.New("no cards matched the search")

// StatusError relays a non-2xx, non-404 upstream response.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream error: status=%d detail=%s", e.Code, e.Detail)
}

// Client is the upstream search contract: a query-language string, a page
// number and an optional uniqueness mode.
type Client interface {
	SearchCards(ctx context.Context, query string, page int, unique string) (*SearchResponse, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(requestInterval), 1),
		logger:  logger,
	}
}

func (c *httpClient) SearchCards(ctx context.Context, query string, page int, unique string) (*SearchResponse, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil scryfall client")
	}
	if page < 1 {
		page = 1
	}

	if err := c.limiter.Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("format", "json")
	if unique != "" {
		params.Set("unique", unique)
	}
	endpoint := c.baseURL + "/cards/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			if c.logger != nil {
				c.logger.Printf("[Scryfall] search timed out query=%q page=%d", query, page)
			}
			return nil, ErrTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		detail := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Scryfall] search failed query=%q page=%d status=%d body=%q", query, page, resp.StatusCode, detail)
		}
		return nil, &StatusError{Code: resp.StatusCode, Detail: detail}
	}

	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

var _ Client = (*httpClient)(nil)
