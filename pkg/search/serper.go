package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	serperEndpoint = "https://google.serper.dev/search"
	resultCap      = 10
	searchTimeout  = 10 * time.Second
)

// SerperClient queries the serper.dev Google-search API for one product name.
type SerperClient struct {
	apiKey     string
	httpClient *http.Client
	endpoint   string
}

func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: searchTimeout},
		endpoint:   serperEndpoint,
	}
}

func (c *SerperClient) Name() string {
	return "serper"
}

func (c *SerperClient) Search(ctx context.Context, query string) ([]Result, error) {
	body, err := json.Marshal(serperRequest{Query: query, Num: resultCap})
	if err != nil {
		return nil, fmt.Errorf("serper encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoResults, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: serper status %d", ErrNoResults, resp.StatusCode)
	}

	var raw serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: serper decode: %v", ErrNoResults, err)
	}
	if raw.Message != "" {
		return nil, fmt.Errorf("%w: serper: %s", ErrNoResults, raw.Message)
	}

	results := make([]Result, 0, len(raw.Organic))
	for _, item := range raw.Organic {
		if item.Title == "" || item.Snippet == "" || item.Link == "" {
			continue
		}
		results = append(results, Result{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
			Source:  c.Name(),
		})
		if len(results) == resultCap {
			break
		}
	}

	if len(results) == 0 {
		return nil, ErrNoResults
	}
	return results, nil
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type serperResponse struct {
	Organic []serperOrganic `json:"organic"`
	Message string          `json:"message"`
}

type serperOrganic struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
