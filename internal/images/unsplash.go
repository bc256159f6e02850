// README: Unsplash search client with an optional Redis read-through cache.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultBaseURL = "https://api.unsplash.com"
	cacheKeyPrefix = "images:q:%s"
	// Search results for a given query are stable enough to reuse for a while.
	cacheTTL = 12 * time.Hour
)

// Client queries the Unsplash photo-search API. The Redis client is optional:
// when nil, every search goes straight to the API. Cache failures never fail
// a search, only the API call itself can.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	redis   *redis.Client
}

func NewClient(apiKey string, redisClient *redis.Client) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		redis:   redisClient,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey, nil)
	c.baseURL = baseURL
	return c
}

// searchResponse mirrors the subset of the Unsplash payload we consume.
type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// Search returns up to limit photo URLs for the query, preserving the
// service's relevance ordering. Results lacking a usable URL are skipped.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if cached, ok := c.cacheGet(ctx, query); ok {
		return clip(cached, limit), nil
	}

	endpoint := fmt.Sprintf("%s/search/photos?query=%s&client_id=%s&per_page=%d",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(c.apiKey), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build unsplash request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode unsplash response: %w", err)
	}

	urls := make([]string, 0, limit)
	for _, r := range body.Results {
		if r.URLs.Regular == "" {
			continue
		}
		urls = append(urls, r.URLs.Regular)
		if len(urls) >= limit {
			break
		}
	}

	c.cacheSet(ctx, query, urls)
	return urls, nil
}

func (c *Client) cacheGet(ctx context.Context, query string) ([]string, bool) {
	if c.redis == nil {
		return nil, false
	}
	val, err := c.redis.Get(ctx, fmt.Sprintf(cacheKeyPrefix, query)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("image cache get failed: %v", err)
		return nil, false
	}
	var urls []string
	if err := json.Unmarshal([]byte(val), &urls); err != nil {
		return nil, false
	}
	return urls, true
}

func (c *Client) cacheSet(ctx context.Context, query string, urls []string) {
	if c.redis == nil {
		return
	}
	data, err := json.Marshal(urls)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, fmt.Sprintf(cacheKeyPrefix, query), data, cacheTTL).Err(); err != nil {
		log.Printf("image cache set failed: %v", err)
	}
}

func clip(urls []string, limit int) []string {
	if len(urls) > limit {
		return urls[:limit]
	}
	return urls
}
