// Package news is a read-only client for the Inshorts news API consumed by
// the dashboard. Every endpoint returns a list of articles; the service
// performs no writes against it.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Article struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	URL             string   `json:"url"`
	PublicationDate string   `json:"publication_date"`
	SourceName      string   `json:"source_name"`
	Category        []string `json:"category"`
	RelevanceScore  float64  `json:"relevance_score"`
	LLMSummary      string   `json:"llm_summary"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Trending(ctx context.Context, window string) ([]Article, error) {
	query := url.Values{"window": {window}}
	env, err := c.get(ctx, "/trending", query)
	if err != nil {
		return nil, err
	}
	return decodeArticles(env.Data)
}

func (c *Client) Category(ctx context.Context, name string, page int) ([]Article, error) {
	query := url.Values{"page": {strconv.Itoa(page)}}
	env, err := c.get(ctx, "/category/"+url.PathEscape(name), query)
	if err != nil {
		return nil, err
	}
	return decodeArticles(env.Data)
}

func (c *Client) ByScore(ctx context.Context, score float64, page int) ([]Article, error) {
	query := url.Values{"page": {strconv.Itoa(page)}}
	path := "/score/" + strconv.FormatFloat(score, 'f', -1, 64)
	env, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return decodeArticles(env.Data)
}

func (c *Client) Nearby(ctx context.Context, lat, lon float64, radiusKm int) ([]Article, error) {
	query := url.Values{
		"lat":    {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(lon, 'f', -1, 64)},
		"radius": {strconv.Itoa(radiusKm)},
	}
	env, err := c.get(ctx, "/nearby", query)
	if err != nil {
		return nil, err
	}
	return decodeArticles(env.Data)
}

// Search is the one endpoint whose envelope carries an explicit success flag.
func (c *Client) Search(ctx context.Context, q string, page int) ([]Article, error) {
	query := url.Values{"q": {q}, "page": {strconv.Itoa(page)}}
	env, err := c.get(ctx, "/search", query)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("news api: search reported failure")
	}
	return decodeArticles(env.Data)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("news api request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news api fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news api error: status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("news api decode: %w", err)
	}
	return &env, nil
}

// decodeArticles handles both payload shapes the API uses: an object wrapping
// an articles list, and a bare list.
func decodeArticles(raw json.RawMessage) ([]Article, error) {
	var wrapped struct {
		Articles []Article `json:"articles"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Articles != nil {
		return wrapped.Articles, nil
	}

	var list []Article
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("news api: unexpected data shape: %w", err)
	}
	return list, nil
}
