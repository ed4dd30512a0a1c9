package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"koreatrip/pkg/metrics"
	"koreatrip/pkg/utils"
)

type ImageSearcher interface {
	Enabled() bool
	SearchImage(ctx context.Context, query string) (string, error)
}

type PixabayClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
	PerPage int

	metrics *metrics.Collector
}

func NewPixabayClient(apiKey, baseURL string, timeout time.Duration, m *metrics.Collector) *PixabayClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &PixabayClient{
		HTTP:    &http.Client{Timeout: timeout},
		APIKey:  apiKey,
		BaseURL: baseURL,
		PerPage: 3,
		metrics: m,
	}
}

func (c *PixabayClient) Enabled() bool {
	return c.APIKey != ""
}

// SearchImage returns the webformat URL of the most popular horizontal photo for query.
func (c *PixabayClient) SearchImage(ctx context.Context, query string) (string, error) {
	if !c.Enabled() {
		return "", utils.ErrPixabayDisabled
	}

	ctx, span := tracer.Start(ctx, "pixabay.search")
	defer span.End()
	span.SetAttributes(attribute.String("pixabay.q", query))

	q := url.Values{}
	q.Set("key", c.APIKey)
	q.Set("q", query)
	q.Set("image_type", "photo")
	q.Set("orientation", "horizontal")
	q.Set("category", "places,travel,nature")
	q.Set("min_width", "400")
	q.Set("min_height", "300")
	q.Set("safesearch", "true")
	q.Set("per_page", fmt.Sprintf("%d", c.PerPage))
	q.Set("order", "popular")

	start := time.Now()
	imageURL, err := c.search(ctx, q)
	c.metrics.RecordUpstream("pixabay", "search", err, time.Since(start))
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("pixabay search %q: %w", query, err)
	}
	return imageURL, nil
}

func (c *PixabayClient) search(ctx context.Context, q url.Values) (string, error) {
	sep := "?"
	if strings.Contains(c.BaseURL, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+sep+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("pixabay http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("%w: pixabay %s", utils.ErrUpstreamStatus, resp.Status)
	}

	var payload struct {
		Hits []struct {
			ID           int    `json:"id"`
			WebformatURL string `json:"webformatURL"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("pixabay decode: %w", err)
	}

	for _, hit := range payload.Hits {
		if hit.WebformatURL != "" {
			return hit.WebformatURL, nil
		}
	}
	return "", utils.ErrNoImage
}
