package pokeapi

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/g4stlyx/pokedex/constants"
)

// RandomBatch returns up to count random creatures
// A random list page is sampled with over-fetch and details are resolved concurrently
// Failed detail lookups are dropped; only a failed list page is returned as an error
func (c *Client) RandomBatch(ctx context.Context, count int) ([]Pokemon, error) {
	if count <= 0 {
		return nil, nil
	}

	batchSize := max(count*constants.OverFetchFactor, constants.MinListBatch)
	offset := c.intn(max(1, c.maxOffset-batchSize))

	page, err := c.GetPokemonList(ctx, batchSize, offset)
	if err != nil {
		return nil, fmt.Errorf("random batch: %w", err)
	}

	pool := append([]ListEntry(nil), page.Results...)
	c.shuffle(pool)
	picks := pool[:min(len(pool), count*constants.OverFetchFactor)]

	resolved := make([]*Pokemon, len(picks))
	var failed atomic.Int32

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, entry := range picks {
		g.Go(func() error {
			p, err := c.GetPokemonDetails(ctx, entry.Name)
			if err != nil {
				failed.Add(1)
				return nil
			}
			resolved[i] = &p
			return nil
		})
	}
	_ = g.Wait()

	out := make([]Pokemon, 0, count)
	for _, p := range resolved {
		if p == nil {
			continue
		}
		out = append(out, *p)
		if len(out) == count {
			break
		}
	}

	if n := failed.Load(); n > 0 {
		log.Printf("pokeapi: batch of %d dropped %d failed lookups", len(picks), n)
	}
	return out, nil
}
