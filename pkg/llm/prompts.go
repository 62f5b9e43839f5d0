package llm

import "fmt"

const summarySystemPrompt = "You are a helpful assistant that summarizes news articles."

const videoSystemPrompt = `You are a helpful assistant. When asked to find YouTube videos,
provide realistic YouTube URLs in the format https://www.youtube.com/watch?v=VIDEO_ID.
If you cannot find the exact video, respond with 'NOT_FOUND'.`

const (
	summaryMaxTokens = 150
	videoMaxTokens   = 100
)

func buildVideoPrompt(q VideoQuery) string {
	return fmt.Sprintf(`Find the exact YouTube video URL for:

Title: %q
Channel: %s
Published: %s

Search YouTube and return ONLY the direct video URL in this format:
https://www.youtube.com/watch?v=VIDEO_ID

Requirements:
- Must be from NDTV Profit channel
- Must match the exact title
- Must be published around the given date

If not found, return: NOT_FOUND`, q.Title, ChannelName, publicationDay(q.PublicationDate))
}

func buildSearchPrompt(q VideoQuery) string {
	return fmt.Sprintf(`Find the exact YouTube video URL for:
Title: %q
Channel: %s
Published: %s

Return ONLY the YouTube URL in format: https://www.youtube.com/watch?v=VIDEO_ID
If not found, return: NOT_FOUND`, q.Title, ChannelName, publicationDay(q.PublicationDate))
}

// publicationDay keeps only the date part of an ISO timestamp.
func publicationDay(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}
