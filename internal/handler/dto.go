package handler

type EmbedRequest struct {
	Text string `json:"text" binding:"required"`
}

type EmbedResponse struct {
	Embedding []float32 `json:"embedding"`
	Status    string    `json:"status"`
}

type SummarizeRequest struct {
	URL string `json:"url" binding:"required"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
	Title   string `json:"title"`
	Status  string `json:"status"`
}

// VideoMetadataRequest is the article metadata the dashboard already holds.
// Unknown fields in the request body are ignored; only title and
// publication_date feed the resolver prompt, the rest is echoed back.
type VideoMetadataRequest struct {
	ID              string    `json:"id"`
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	URL             string    `json:"url"`
	PublicationDate string    `json:"publication_date"`
	SourceName      string    `json:"source_name"`
	Category        []string  `json:"category"`
	RelevanceScore  float64   `json:"relevance_score"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	VectorEmbedding []float32 `json:"vector_embedding"`
	LLMSummary      string    `json:"llm_summary"`
}

type VideoResponse struct {
	VideoURL string        `json:"video_url"`
	Status   string        `json:"status"`
	Metadata VideoMetadata `json:"metadata"`
}

type VideoMetadata struct {
	OriginalTitle string `json:"original_title"`
	SearchDate    string `json:"search_date"`
	Channel       string `json:"channel,omitempty"`
	Message       string `json:"message,omitempty"`
}

type SearchVideoResponse struct {
	VideoURL string `json:"video_url"`
	Status   string `json:"status"`
	Service  string `json:"service"`
}

type HealthResponse struct {
	Status               string `json:"status"`
	OpenAIConfigured     bool   `json:"openai_configured"`
	PerplexityConfigured bool   `json:"perplexity_configured"`
}

const (
	StatusSuccess  = "success"
	StatusFound    = "found"
	StatusNotFound = "not_found"
)
