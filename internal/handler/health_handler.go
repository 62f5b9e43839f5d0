package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports which provider credentials are present. It holds the
// booleans, not the providers, so answering can never trigger an outbound
// call.
type HealthHandler struct {
	openAIConfigured     bool
	perplexityConfigured bool
}

func NewHealthHandler(openAIConfigured, perplexityConfigured bool) *HealthHandler {
	return &HealthHandler{
		openAIConfigured:     openAIConfigured,
		perplexityConfigured: perplexityConfigured,
	}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:               "healthy",
		OpenAIConfigured:     h.openAIConfigured,
		PerplexityConfigured: h.perplexityConfigured,
	})
}

func (h *HealthHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the News Summarizer & Video Finder API"})
}
