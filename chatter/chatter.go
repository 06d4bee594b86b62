// Package chatter measures live social-media mention volume for a disease
// query via the public Bluesky search API. It is the optional "real data
// source" slotted in behind the signal.Source interface; when it is
// disabled or the upstream misbehaves, the synthetic mention count stands.
package chatter

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bluesky-social/indigo/xrpc"

	"go-sentinel/signal"
	"go-sentinel/types"
)

const (
	searchMethod = "app.bsky.feed.searchPosts"
	// Public endpoint for unauthenticated requests.
	DefaultHost = "https://public.api.bsky.app"

	searchLimit = 25
)

// SearchResponse is the slice of the searchPosts output we care about.
type SearchResponse struct {
	Cursor    string       `json:"cursor"`
	HitsTotal int          `json:"hitsTotal"`
	Posts     []SearchPost `json:"posts"`
}

type SearchPost struct {
	URI       string `json:"uri"`
	CID       string `json:"cid"`
	IndexedAt string `json:"indexedAt"`
}

// Counter queries Bluesky for recent posts mentioning a disease and city.
type Counter struct {
	client *xrpc.Client
}

func NewCounter(host string) *Counter {
	if host == "" {
		host = DefaultHost
	}
	return &Counter{
		client: &xrpc.Client{
			Client: &http.Client{Timeout: 10 * time.Second},
			Host:   host,
		},
	}
}

// Count returns the number of recent posts matching "<disease> <city>".
func (c *Counter) Count(ctx context.Context, disease, city string) (int, error) {
	params := map[string]interface{}{
		"q":     fmt.Sprintf("%s %s", disease, city),
		"limit": searchLimit,
	}

	var out SearchResponse
	if err := c.client.Do(ctx, xrpc.Query, "json", searchMethod, params, nil, &out); err != nil {
		return 0, fmt.Errorf("bluesky search error: %w", err)
	}

	if out.HitsTotal > 0 {
		return out.HitsTotal, nil
	}
	return len(out.Posts), nil
}

// Enriched wraps a signal source and swaps its synthetic mention count for
// the live one. A failed count is logged and the synthetic value kept, so
// the pipeline never breaks on the social upstream.
type Enriched struct {
	src     signal.Source
	counter *Counter
}

func Enrich(src signal.Source, counter *Counter) *Enriched {
	return &Enriched{src: src, counter: counter}
}

func (e *Enriched) Signal(ctx context.Context, profile types.DiseaseProfile, city, geo string) (types.Signal, error) {
	sig, err := e.src.Signal(ctx, profile, city, geo)
	if err != nil {
		return sig, err
	}

	n, err := e.counter.Count(ctx, profile.DisplayName, city)
	if err != nil {
		log.Printf("chatter: live count failed for %s/%s, keeping synthetic count: %v", profile.Slug, city, err)
		return sig, nil
	}

	sig.MentionCount = n
	return sig, nil
}
