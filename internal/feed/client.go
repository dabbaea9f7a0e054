package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/madmanlosangeles/stylist/internal/observability"
)

// ErrUnavailable marks feed fetch failures. Callers substitute the default
// snapshot instead of surfacing it.
var ErrUnavailable = errors.New("product feed unavailable")

const fetchTimeout = 15 * time.Second

type Client struct {
	feedURL string
	http    *resty.Client
}

func NewClient(feedURL string) *Client {
	client := resty.New().
		SetTransport(observability.WrapRoundTripper(http.DefaultTransport)).
		SetTimeout(fetchTimeout).
		SetHeader("Accept", "application/json")

	return &Client{
		feedURL: feedURL,
		http:    client,
	}
}

// Fetch retrieves the full product listing. A single attempt, no retry.
func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode())
	}

	// Decode the body ourselves rather than via SetResult: maintenance pages
	// and captive portals answer 200 with HTML, which must read as an outage,
	// not an empty catalog.
	var body listing
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decoding listing: %w", ErrUnavailable, err)
	}

	return body.Products, nil
}
