package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"fxwatch/internal/domain"
	"net/http"
	"net/url"
	"sort"
	"time"
)

const maxHeadlines = 20

// countryMapping narrows requests to the provider's supported markets;
// anything else falls back to US business news.
var countryMapping = map[string]string{
	"US": "us",
	"GB": "gb",
	"EU": "eu",
	"KE": "ke",
	"NG": "ng",
	"ZA": "za",
}

type NewsDataClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
}

type newsResponse struct {
	Status  string        `json:"status"`
	Results []newsArticle `json:"results"`
}

type newsArticle struct {
	ArticleID   string `json:"article_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
	SourceName  string `json:"source_name"`
}

func (c *NewsDataClient) FetchHeadlines(ctx context.Context, country string) ([]domain.NewsItem, error) {
	// News lookups get an explicit timeout: a stalled feed must not hold
	// a request open for the transport's full default.
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse news base URL: %w", err)
	}

	code, ok := countryMapping[country]
	if !ok {
		code = "us"
	}

	params := url.Values{}
	params.Set("category", "business")
	params.Set("language", "en")
	params.Set("size", "5")
	if code != "us" {
		params.Set("country", code)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create news request for %q: %w", country, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-ACCESS-KEY", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute news request for %q: %w", country, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected news status %d for %q: %s", resp.StatusCode, country, resp.Status)
	}

	var body newsResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode news response for %q: %w", country, err)
	}

	items := make([]domain.NewsItem, 0, len(body.Results))
	for i, article := range body.Results {
		if article.Title == "" || article.Link == "" {
			continue
		}
		id := article.ArticleID
		if id == "" {
			id = fmt.Sprintf("news-%d", i)
		}
		items = append(items, domain.NewsItem{
			ID:          id,
			Title:       article.Title,
			Summary:     article.Description,
			URL:         article.Link,
			PublishedAt: article.PubDate,
			Source:      article.SourceName,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].PublishedAt > items[j].PublishedAt })
	if len(items) > maxHeadlines {
		items = items[:maxHeadlines]
	}
	return items, nil
}

func NewNewsDataClient(httpClient *http.Client, baseURL, apiKey string, timeout time.Duration) *NewsDataClient {
	return &NewsDataClient{http: httpClient, baseURL: baseURL, apiKey: apiKey, timeout: timeout}
}
