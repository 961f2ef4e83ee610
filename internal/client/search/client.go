// Package search implements the key-rotating client for the third-party
// recipe search API.
//
// A Client holds an ordered pool of API keys. Each Search walks the pool
// from the front: an authorization or quota rejection (HTTP 401/402) retires
// that key for the rest of the session and rotation moves on; any other
// failure aborts immediately, since switching credentials would not fix a
// network or server problem. When every key has been retired the client
// persists a cooldown and refuses further searches until it expires. The
// cooldown does not forgive retired keys.
package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mpavlenko/recipekeeper/internal/client/models"
	"github.com/mpavlenko/recipekeeper/internal/common"
	"github.com/mpavlenko/recipekeeper/internal/logging"
)

// KeyPlaceholder is the credential slot in the endpoint template.
const KeyPlaceholder = "{apiKey}"

// DefaultEndpoint is the recipe search endpoint template.
const DefaultEndpoint = "https://api.spoonacular.com/recipes/complexSearch?apiKey=" + KeyPlaceholder

// Doer is the transport seam; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Query carries search parameters.
type Query struct {
	Text   string
	Number int    // result count; 0 means the API default
	Diet   string // optional dietary filter, e.g. "vegetarian"
}

type Client struct {
	pool     *Pool
	cooldown *Cooldown
	http     Doer
	log      logging.Logger
	endpoint string
	window   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the endpoint template. The template must contain
// KeyPlaceholder.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the transport.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithCooldownWindow overrides the exhaustion cooldown duration.
func WithCooldownWindow(d time.Duration) Option {
	return func(c *Client) { c.window = d }
}

// NewClient builds a search client around the given key pool and cooldown.
// The client is constructed once at application start and shared by every
// caller; the pool shrinks across the whole session.
func NewClient(pool *Pool, cooldown *Cooldown, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		pool:     pool,
		cooldown: cooldown,
		http:     &http.Client{Timeout: 15 * time.Second},
		log:      log,
		endpoint: DefaultEndpoint,
		window:   DefaultCooldown,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pool exposes the remaining-credential count for diagnostics.
func (c *Client) Pool() *Pool { return c.pool }

// Search runs the query against the recipe API, rotating credentials as
// needed. Terminal outcomes are: parsed summaries, *RateLimitedError (active
// cooldown, no network call made), common.ErrNoAPIKeys, *RequestFailedError,
// or common.ErrAllKeysExhausted (which also starts the cooldown).
func (c *Client) Search(ctx context.Context, q Query) ([]models.RecipeSummary, error) {
	remaining, err := c.cooldown.Remaining(ctx)
	if err != nil {
		return nil, err
	}
	if remaining > 0 {
		return nil, &RateLimitedError{RemainingSeconds: remaining}
	}

	if c.pool.Empty() {
		return nil, common.ErrNoAPIKeys
	}

	for _, key := range c.pool.Keys() {
		reqURL, err := c.buildURL(key, q)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, &RequestFailedError{Cause: err}
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusPaymentRequired:
			// credential problem: retire the key and keep rotating
			c.pool.Remove(key)
			c.log.Warn(ctx, "api key rejected, rotating", "status", resp.StatusCode, "keys_left", c.pool.Len())
			continue

		case resp.StatusCode < 200 || resp.StatusCode > 299:
			return nil, &RequestFailedError{Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}

		case readErr != nil:
			return nil, &RequestFailedError{Cause: readErr}
		}

		results, err := parseResults(body)
		if err != nil {
			return nil, &RequestFailedError{Cause: err}
		}
		return results, nil
	}

	if err := c.cooldown.Start(ctx, c.window); err != nil {
		return nil, err
	}
	c.log.Warn(ctx, "all api keys exhausted, cooldown started", "window", c.window.String())
	return nil, common.ErrAllKeysExhausted
}

func (c *Client) buildURL(key string, q Query) (string, error) {
	base := strings.ReplaceAll(c.endpoint, KeyPlaceholder, key)
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	values := u.Query()
	values.Set("query", q.Text)
	if q.Number > 0 {
		values.Set("number", strconv.Itoa(q.Number))
	}
	if q.Diet != "" {
		values.Set("diet", q.Diet)
	}
	u.RawQuery = values.Encode()
	return u.String(), nil
}

// parseResults extracts recipe summaries from the API response. The two
// source APIs disagree on field names, so extraction is schema-tolerant.
func parseResults(body []byte) ([]models.RecipeSummary, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("malformed response body")
	}

	doc := gjson.ParseBytes(body)
	list := doc.Get("results")
	if !list.Exists() {
		list = doc.Get("recipes")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("response has no recipe list")
	}

	var out []models.RecipeSummary
	for _, item := range list.Array() {
		rec := models.RecipeSummary{
			ID:           item.Get("id").String(),
			Title:        item.Get("title").String(),
			ImageURL:     item.Get("image").String(),
			Vegetarian:   item.Get("vegetarian").Bool(),
			Vegan:        item.Get("vegan").Bool(),
			GlutenFree:   item.Get("glutenFree").Bool(),
			DairyFree:    item.Get("dairyFree").Bool(),
			Instructions: item.Get("instructions").String(),
		}
		for _, ing := range item.Get("extendedIngredients.#.original").Array() {
			rec.Ingredients = append(rec.Ingredients, ing.String())
		}
		if rec.Ingredients == nil {
			for _, ing := range item.Get("ingredients").Array() {
				rec.Ingredients = append(rec.Ingredients, ing.String())
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
