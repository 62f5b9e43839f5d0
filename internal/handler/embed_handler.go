package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type EmbedHandler struct {
	embedder Embedder
}

func NewEmbedHandler(embedder Embedder) *EmbedHandler {
	return &EmbedHandler{embedder: embedder}
}

func (h *EmbedHandler) Embed(c *gin.Context) {
	var req EmbedRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	embedding, err := h.embedder.Embed(c.Request.Context(), req.Text)
	if err != nil {
		slog.Error("error embedding text", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Embedding failed: %v", err)})
		return
	}

	c.JSON(http.StatusOK, EmbedResponse{
		Embedding: embedding,
		Status:    StatusSuccess,
	})
}
