package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// RenderedStrategy loads the page in a headless browser so that
// script-injected content makes it into the HTML before boilerplate removal.
// Every invocation gets its own browser; nothing is shared between requests.
type RenderedStrategy struct {
	timeout time.Duration
}

func NewRenderedStrategy(timeout time.Duration) *RenderedStrategy {
	return &RenderedStrategy{timeout: timeout}
}

func (s *RenderedStrategy) Name() string { return "rendered" }

func (s *RenderedStrategy) Extract(ctx context.Context, pageURL string) (Article, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// The allocator and browser contexts are torn down by the deferred
	// cancels on every path, success or failure.
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(browserUserAgent),
	)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return Article{}, fmt.Errorf("rendered fetch: %w", err)
	}

	return parseHTML([]byte(html), pageURL)
}
