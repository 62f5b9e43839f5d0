// Package extract pulls article title and body text out of a web page. It
// runs an ordered list of strategies, a plain fetch-and-parse first and a
// full browser rendering second, and stops at the first one that yields
// body text.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrNoContent means the page was reachable but no article body could be
// extracted from it. The facade maps this to a 400, everything else to 500.
var ErrNoContent = errors.New("could not extract article content")

type Article struct {
	Title string
	Body  string
}

type Strategy interface {
	Name() string
	Extract(ctx context.Context, pageURL string) (Article, error)
}

type Extractor struct {
	strategies []Strategy
}

func New(strategies ...Strategy) *Extractor {
	return &Extractor{strategies: strategies}
}

// Extract tries each strategy in order. A strategy that errors or returns an
// empty body is treated the same way: note the failure and move on. The last
// underlying cause is carried in the returned error once all strategies are
// exhausted.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (Article, error) {
	var lastErr error

	for _, s := range e.strategies {
		article, err := s.Extract(ctx, pageURL)
		if err != nil {
			slog.Warn("extraction strategy failed", "strategy", s.Name(), "url", pageURL, "error", err)
			lastErr = err
			continue
		}

		if strings.TrimSpace(article.Body) == "" {
			slog.Warn("extraction strategy returned empty body", "strategy", s.Name(), "url", pageURL)
			lastErr = ErrNoContent
			continue
		}

		return article, nil
	}

	if lastErr == nil {
		lastErr = ErrNoContent
	}
	return Article{}, fmt.Errorf("all extraction strategies failed: %w", lastErr)
}
