package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// ReadabilityStrategy fetches the page over plain HTTP with a browser-like
// user agent and strips boilerplate with readability.
type ReadabilityStrategy struct {
	httpClient *http.Client
}

func NewReadabilityStrategy() *ReadabilityStrategy {
	return &ReadabilityStrategy{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *ReadabilityStrategy) Name() string { return "readability" }

func (s *ReadabilityStrategy) Extract(ctx context.Context, pageURL string) (Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Article{}, fmt.Errorf("article request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Article{}, fmt.Errorf("article fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Article{}, fmt.Errorf("article fetch: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Article{}, fmt.Errorf("article read: %w", err)
	}

	return parseHTML(body, pageURL)
}

// parseHTML runs boilerplate removal over raw HTML. Both strategies end up
// here so that a rendered page goes through the exact same parser as a
// fetched one.
func parseHTML(html []byte, pageURL string) (Article, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return Article{}, fmt.Errorf("invalid url: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(html), parsedURL)
	if err != nil {
		return Article{}, fmt.Errorf("readability parse: %w", err)
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = titleFromDocument(html)
	}

	return Article{
		Title: title,
		Body:  strings.TrimSpace(article.TextContent),
	}, nil
}

// titleFromDocument falls back to the <title> tag, then og:title, when
// readability finds no title of its own.
func titleFromDocument(html []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return ""
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}

	title, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	return strings.TrimSpace(title)
}
