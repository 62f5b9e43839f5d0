package llm

import (
	"context"
	"strings"
)

// NotFoundSentinel is the literal string providers return when no matching
// video exists. It is compared case-sensitively after trimming whitespace.
const NotFoundSentinel = "NOT_FOUND"

// ChannelName is the only channel the resolver searches against.
const ChannelName = "NDTV Profit India"

type VideoQuery struct {
	Title           string
	PublicationDate string
}

// VideoResolution is a best-effort answer. Found=true means the provider
// produced something other than the sentinel; the URL is surfaced verbatim
// and is never validated against any ground truth, so a non-search-capable
// model may fabricate a plausible but false URL.
type VideoResolution struct {
	URL   string
	Found bool
}

type Summarizer interface {
	Summarize(ctx context.Context, body string) (string, error)
}

type VideoFinder interface {
	FindVideo(ctx context.Context, q VideoQuery) (VideoResolution, error)
}

// parseResolution maps a raw completion to a resolution. The sentinel and an
// empty response both mean not found; anything else is taken as the URL
// without format validation.
func parseResolution(content string) VideoResolution {
	content = strings.TrimSpace(content)
	if content == "" || content == NotFoundSentinel {
		return VideoResolution{Found: false}
	}
	return VideoResolution{URL: content, Found: true}
}
