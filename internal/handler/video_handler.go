package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abhishek8290-github/inshorts-embed-service/pkg/llm"
	"github.com/gin-gonic/gin"
)

// VideoHandler exposes both resolver strategies. searchFinder is nil when the
// search-augmented provider credential is absent; that endpoint then degrades
// to 400 responses regardless of request body.
type VideoHandler struct {
	finder       llm.VideoFinder
	searchFinder llm.VideoFinder
}

func NewVideoHandler(finder, searchFinder llm.VideoFinder) *VideoHandler {
	return &VideoHandler{finder: finder, searchFinder: searchFinder}
}

func (h *VideoHandler) FindVideo(c *gin.Context) {
	var req VideoMetadataRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.finder.FindVideo(c.Request.Context(), llm.VideoQuery{
		Title:           req.Title,
		PublicationDate: req.PublicationDate,
	})
	if err != nil {
		slog.Error("error finding video", "title", req.Title, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Video search failed: %v", err)})
		return
	}

	if !res.Found {
		c.JSON(http.StatusOK, VideoResponse{
			Status: StatusNotFound,
			Metadata: VideoMetadata{
				OriginalTitle: req.Title,
				SearchDate:    req.PublicationDate,
				Message:       "Video not found with the provided criteria",
			},
		})
		return
	}

	c.JSON(http.StatusOK, VideoResponse{
		VideoURL: res.URL,
		Status:   StatusFound,
		Metadata: VideoMetadata{
			OriginalTitle: req.Title,
			SearchDate:    req.PublicationDate,
			Channel:       llm.ChannelName,
		},
	})
}

func (h *VideoHandler) FindVideoWithSearch(c *gin.Context) {
	if h.searchFinder == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PERPLEXITY_API_KEY not configured"})
		return
	}

	var req VideoMetadataRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.searchFinder.FindVideo(c.Request.Context(), llm.VideoQuery{
		Title:           req.Title,
		PublicationDate: req.PublicationDate,
	})
	if err != nil {
		slog.Error("error finding video via search provider", "title", req.Title, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Perplexity search failed: %v", err)})
		return
	}

	status := StatusFound
	if !res.Found {
		status = StatusNotFound
	}

	c.JSON(http.StatusOK, SearchVideoResponse{
		VideoURL: res.URL,
		Status:   status,
		Service:  "perplexity",
	})
}
