package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    VideoResolution
	}{
		{
			name:    "sentinel means not found",
			content: "NOT_FOUND",
			want:    VideoResolution{Found: false},
		},
		{
			name:    "sentinel with surrounding whitespace",
			content: "  NOT_FOUND\n",
			want:    VideoResolution{Found: false},
		},
		{
			name:    "lowercase sentinel is not the sentinel",
			content: "not_found",
			want:    VideoResolution{URL: "not_found", Found: true},
		},
		{
			name:    "url surfaced verbatim",
			content: "https://www.youtube.com/watch?v=abc123",
			want:    VideoResolution{URL: "https://www.youtube.com/watch?v=abc123", Found: true},
		},
		{
			name:    "non-url string surfaced without validation",
			content: "I think the video you want is this one",
			want:    VideoResolution{URL: "I think the video you want is this one", Found: true},
		},
		{
			name:    "empty response means not found",
			content: "   ",
			want:    VideoResolution{Found: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseResolution(tt.content)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildVideoPrompt_TruncatesDateToDay(t *testing.T) {
	q := VideoQuery{Title: "Market Wrap", PublicationDate: "2024-01-05T00:00:00Z"}

	prompt := buildVideoPrompt(q)
	assert.Equal(t, true, strings.Contains(prompt, "Published: 2024-01-05\n"))
	assert.Equal(t, false, strings.Contains(prompt, "00:00:00"))
	assert.Equal(t, true, strings.Contains(prompt, `"Market Wrap"`))
	assert.Equal(t, true, strings.Contains(prompt, ChannelName))
}

func TestBuildSearchPrompt_ShortDateKept(t *testing.T) {
	q := VideoQuery{Title: "Market Wrap", PublicationDate: "2024-01-05"}

	prompt := buildSearchPrompt(q)
	assert.Equal(t, true, strings.Contains(prompt, "Published: 2024-01-05"))
	assert.Equal(t, true, strings.Contains(prompt, NotFoundSentinel))
}
