// Package scryfall implements a minimal client for the Scryfall card API.
package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nocount/scryglass/internal/card"
)

// DefaultBaseURL is the public Scryfall API endpoint.
const DefaultBaseURL = "https://api.scryfall.com"

// DefaultTimeout bounds a single lookup request.
const DefaultTimeout = 10 * time.Second

const userAgent = "scryglass/1.0"

// Sentinel errors for transport-level failures.
var (
	ErrTimeout    = errors.New("request timed out")
	ErrConnection = errors.New("connection failed")
)

// NotFoundError is returned when the API reports that no card matches the
// query. Details carries the human-readable explanation from the response.
type NotFoundError struct {
	Details string
}

func (e *NotFoundError) Error() string {
	return e.Details
}

// HTTPError is returned for any unexpected non-200 API response.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("API error: %d", e.Status)
}

// apiError is the JSON body Scryfall returns alongside error statuses.
type apiError struct {
	Details string `json:"details"`
}

// Client performs card lookups against the Scryfall API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL with a bounded request
// timeout. An empty baseURL selects the public API; a zero timeout selects
// the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Named looks up a single card by name using fuzzy matching, so partial and
// approximate names resolve to their closest match.
func (c *Client) Named(ctx context.Context, name string) (*card.Card, error) {
	endpoint := c.baseURL + "/cards/named?fuzzy=" + url.QueryEscape(name)
	return c.getCard(ctx, endpoint)
}

// Random fetches a random card.
func (c *Client) Random(ctx context.Context) (*card.Card, error) {
	return c.getCard(ctx, c.baseURL+"/cards/random")
}

func (c *Client) getCard(ctx context.Context, endpoint string) (*card.Card, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"url":      endpoint,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("scryfall request")

	switch resp.StatusCode {
	case http.StatusOK:
		var result card.Card
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, fmt.Errorf("error decoding card: %w", err)
		}
		return &result, nil
	case http.StatusNotFound:
		var body apiError
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Details == "" {
			body.Details = "Card not found"
		}
		return nil, &NotFoundError{Details: body.Details}
	default:
		return nil, &HTTPError{Status: resp.StatusCode}
	}
}

// mapTransportError classifies network-layer failures into the client's
// sentinel errors, keeping the underlying cause in the message.
func mapTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return err
}
