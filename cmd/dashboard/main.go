package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/abhishek8290-github/inshorts-embed-service/internal/dashboard"
	"github.com/abhishek8290-github/inshorts-embed-service/pkg/news"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// The dashboard only reads the news API; it needs no provider
	// credentials, so it does not go through config.Load.
	baseURL := os.Getenv("NEWS_API_URL")
	if baseURL == "" {
		baseURL = "https://api.inshorts.abhi8290.in/api/v1/news"
	}

	port := os.Getenv("DASHBOARD_PORT")
	if port == "" {
		port = "8501"
	}

	server := dashboard.NewServer(news.NewClient(baseURL))

	err := server.Router().Run(":" + port)
	if err != nil {
		log.Fatalf("error starting dashboard: %v", err)
	}
}
