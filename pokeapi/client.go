// Package pokeapi is a cached read-only client for the PokeAPI REST service
package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/g4stlyx/pokedex/constants"
)

var (
	// ErrNotFound is returned for 404 responses
	ErrNotFound = errors.New("pokeapi: not found")

	// ErrStatus is wrapped by every other non-2xx response
	ErrStatus = errors.New("pokeapi: unexpected status")
)

// Client fetches list pages and creature details through a response cache
type Client struct {
	baseURL     string
	http        *http.Client
	cache       *Cache
	group       singleflight.Group
	maxOffset   int
	concurrency int

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCache replaces the default response cache
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithRand sets the random source used for batch sampling
func WithRand(rng *rand.Rand) Option {
	return func(c *Client) { c.rng = rng }
}

// WithMaxOffset bounds random list offsets
func WithMaxOffset(n int) Option {
	return func(c *Client) { c.maxOffset = n }
}

// WithConcurrency bounds parallel detail lookups in a batch
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: constants.RequestTimeout},
		cache:       NewCache(constants.CacheExpiration, constants.MaxCacheSize),
		maxOffset:   constants.ListMaxOffset,
		concurrency: constants.FetchConcurrency,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetPokemonList fetches one page of the creature listing
func (c *Client) GetPokemonList(ctx context.Context, limit, offset int) (ListPage, error) {
	body, err := c.getData(ctx, fmt.Sprintf("/pokemon?limit=%d&offset=%d", limit, offset))
	if err != nil {
		return ListPage{}, err
	}
	page, err := parseListPage(body)
	if err != nil {
		return ListPage{}, fmt.Errorf("decode list: %w", err)
	}
	return page, nil
}

// GetPokemonDetails fetches one creature by name or numeric ID
func (c *Client) GetPokemonDetails(ctx context.Context, nameOrID string) (Pokemon, error) {
	key := strings.ToLower(strings.TrimSpace(nameOrID))
	body, err := c.getData(ctx, "/pokemon/"+url.PathEscape(key))
	if err != nil {
		return Pokemon{}, err
	}
	p, err := parsePokemon(body)
	if err != nil {
		return Pokemon{}, fmt.Errorf("decode %s: %w", key, err)
	}
	return p, nil
}

// ClearCache drops every cached response
func (c *Client) ClearCache() {
	c.cache.Clear()
}

// getData returns the response body for endpoint, from cache when fresh
// Concurrent misses for the same endpoint share one request, which outlives the
// caller that started it; each caller stops waiting when its own ctx ends
func (c *Client) getData(ctx context.Context, endpoint string) ([]byte, error) {
	if data, ok := c.cache.Get(endpoint); ok {
		return data, nil
	}

	ch := c.group.DoChan(endpoint, func() (any, error) {
		data, err := c.fetch(context.WithoutCancel(ctx), endpoint)
		if err != nil {
			return nil, err
		}
		c.cache.Set(endpoint, data)
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", endpoint, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			log.Printf("pokeapi: fetch %s: %v", endpoint, res.Err)
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", endpoint, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%s: %w %d", endpoint, ErrStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", endpoint, err)
	}
	return data, nil
}

func (c *Client) intn(n int) int {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.Intn(n)
}

func (c *Client) shuffle(entries []ListEntry) {
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	c.rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
}
