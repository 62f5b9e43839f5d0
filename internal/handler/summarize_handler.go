package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abhishek8290-github/inshorts-embed-service/internal/extract"
	"github.com/abhishek8290-github/inshorts-embed-service/pkg/llm"
	"github.com/gin-gonic/gin"
)

type Extractor interface {
	Extract(ctx context.Context, pageURL string) (extract.Article, error)
}

type SummarizeHandler struct {
	extractor  Extractor
	summarizer llm.Summarizer
}

func NewSummarizeHandler(extractor Extractor, summarizer llm.Summarizer) *SummarizeHandler {
	return &SummarizeHandler{extractor: extractor, summarizer: summarizer}
}

// Summarize extracts the article behind the URL and asks the LLM for a
// summary. A page with no extractable content is the caller's problem (400);
// anything else that goes wrong is ours (500). No partial results: a failed
// summarization does not return the extracted title alone.
func (h *SummarizeHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	article, err := h.extractor.Extract(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, extract.ErrNoContent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract article content"})
			return
		}
		slog.Error("error extracting article", "url", req.URL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Summarization failed: %v", err)})
		return
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), article.Body)
	if err != nil {
		slog.Error("error summarizing article", "url", req.URL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Summarization failed: %v", err)})
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{
		Summary: summary,
		Title:   article.Title,
		Status:  StatusSuccess,
	})
}
