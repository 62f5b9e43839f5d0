package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/abhishek8290-github/inshorts-embed-service/internal/config"
	"github.com/abhishek8290-github/inshorts-embed-service/internal/extract"
	"github.com/abhishek8290-github/inshorts-embed-service/internal/handler"
	"github.com/abhishek8290-github/inshorts-embed-service/pkg/embed"
	"github.com/abhishek8290-github/inshorts-embed-service/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

const (
	rateLimit     = 100
	rateBurst     = 200
	renderTimeout = 45 * time.Second
)

func rateLimiter() gin.HandlerFunc {
	limiter := rate.NewLimiter(rateLimit, rateBurst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	openAIClient := llm.NewOpenAIClient(cfg.OpenAIKey)

	var summarizer llm.Summarizer = openAIClient
	if cfg.SummaryProvider == config.ProviderAnthropic {
		summarizer = llm.NewAnthropicClient(cfg.AnthropicKey)
	}

	var searchFinder llm.VideoFinder
	if cfg.PerplexityConfigured() {
		searchFinder = llm.NewPerplexityClient(cfg.PerplexityKey)
	}

	extractor := extract.New(
		extract.NewReadabilityStrategy(),
		extract.NewRenderedStrategy(renderTimeout),
	)

	embedHandler := handler.NewEmbedHandler(embed.NewClient(cfg.EmbeddingsURL))
	summarizeHandler := handler.NewSummarizeHandler(extractor, summarizer)
	videoHandler := handler.NewVideoHandler(openAIClient, searchFinder)
	healthHandler := handler.NewHealthHandler(cfg.OpenAIConfigured(), cfg.PerplexityConfigured())

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	r.Use(rateLimiter())

	r.GET("/", healthHandler.GetRoot)
	r.POST("/embed", embedHandler.Embed)
	r.POST("/summarize", summarizeHandler.Summarize)
	r.POST("/find-video", videoHandler.FindVideo)
	r.POST("/find-video-perplexity", videoHandler.FindVideoWithSearch)
	r.GET("/health", healthHandler.GetHealth)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
