// Package dashboard is a server-rendered reader for the Inshorts news API.
// It keeps one in-memory session: the last loaded articles, an inline
// warning from the most recent failed request, and per-article toggle state.
// Nothing is persisted and nothing is ever written to the API.
package dashboard

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/abhishek8290-github/inshorts-embed-service/pkg/news"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Categories offered by the news API's category endpoint.
var Categories = []string{
	"DEFENCE", "EXPLAINERS", "FINANCE", "Feel_Good_Stories", "General",
	"Health___Fitness", "IPL", "IPL_2025", "Israel-Hamas_War", "Lifestyle",
	"Russia-Ukraine_Conflict", "automobile", "bollywood", "business", "city",
	"cricket", "crime", "education", "entertainment", "facts", "fashion",
	"football", "hatke", "miscellaneous", "national", "politics", "science",
	"sports", "startup", "technology", "travel", "world",
}

const (
	ViewTrending = "trending"
	ViewCategory = "category"
	ViewScore    = "score"
	ViewNearby   = "nearby"
	ViewSearch   = "search"
)

type NewsAPI interface {
	Trending(ctx context.Context, window string) ([]news.Article, error)
	Category(ctx context.Context, name string, page int) ([]news.Article, error)
	ByScore(ctx context.Context, score float64, page int) ([]news.Article, error)
	Nearby(ctx context.Context, lat, lon float64, radiusKm int) ([]news.Article, error)
	Search(ctx context.Context, q string, page int) ([]news.Article, error)
}

type Server struct {
	client NewsAPI

	mu       sync.Mutex
	view     string
	articles []news.Article
	state    ViewState
	warning  string
	notice   string

	// sticky form inputs, mirrored back into the page
	window   string
	category string
	page     int
	score    float64
	lat      float64
	lon      float64
	radius   int
	query    string
}

func NewServer(client NewsAPI) *Server {
	return &Server{
		client:   client,
		view:     ViewTrending,
		window:   "24h",
		category: Categories[0],
		page:     1,
		score:    0.7,
		lat:      19.697352,
		lon:      73.865399,
		radius:   100,
	}
}

func (s *Server) Router() *gin.Engine {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.getPage)
	r.POST("/trending", s.postTrending)
	r.POST("/category", s.postCategory)
	r.POST("/score", s.postScore)
	r.POST("/nearby", s.postNearby)
	r.POST("/search", s.postSearch)
	r.GET("/toggle", s.getToggle)

	return r
}

type articleView struct {
	news.Article
	Key           string
	ShowURL       bool
	ShowSummary   bool
	FormattedDate string
}

type pageData struct {
	View       string
	Articles   []articleView
	Warning    string
	Notice     string
	Categories []string

	Window   string
	Category string
	Page     int
	Score    float64
	Lat      float64
	Lon      float64
	Radius   int
	Query    string
}

func (s *Server) getPage(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Switching views drops loaded articles and toggles, nothing else.
	if view := c.Query("view"); view != "" && view != s.view {
		s.view = view
		s.articles = nil
		s.state.Reset()
		s.warning = ""
		s.notice = ""
	}

	data := pageData{
		View:       s.view,
		Warning:    s.warning,
		Notice:     s.notice,
		Categories: Categories,
		Window:     s.window,
		Category:   s.category,
		Page:       s.page,
		Score:      s.score,
		Lat:        s.lat,
		Lon:        s.lon,
		Radius:     s.radius,
		Query:      s.query,
	}

	for _, a := range s.articles {
		key := ArticleKey(a)
		data.Articles = append(data.Articles, articleView{
			Article:       a,
			Key:           key,
			ShowURL:       s.state.ShowURLFor == key,
			ShowSummary:   s.state.ShowSummaryFor == key,
			FormattedDate: formatDate(a.PublicationDate),
		})
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}

func (s *Server) postTrending(c *gin.Context) {
	window := c.PostForm("window")
	if window == "" {
		window = "24h"
	}

	s.fetch(c, ViewTrending, func(ctx context.Context) ([]news.Article, error) {
		return s.client.Trending(ctx, window)
	}, func() { s.window = window })
}

func (s *Server) postCategory(c *gin.Context) {
	category := c.PostForm("category")
	page := formInt(c, "page", 1)

	s.fetch(c, ViewCategory, func(ctx context.Context) ([]news.Article, error) {
		return s.client.Category(ctx, category, page)
	}, func() { s.category = category; s.page = page })
}

func (s *Server) postScore(c *gin.Context) {
	score := formFloat(c, "score", 0.7)
	page := formInt(c, "page", 1)

	s.fetch(c, ViewScore, func(ctx context.Context) ([]news.Article, error) {
		return s.client.ByScore(ctx, score, page)
	}, func() { s.score = score; s.page = page })
}

func (s *Server) postNearby(c *gin.Context) {
	lat := formFloat(c, "lat", s.lat)
	lon := formFloat(c, "lon", s.lon)
	radius := formInt(c, "radius", 100)

	s.fetch(c, ViewNearby, func(ctx context.Context) ([]news.Article, error) {
		return s.client.Nearby(ctx, lat, lon, radius)
	}, func() { s.lat = lat; s.lon = lon; s.radius = radius })
}

func (s *Server) postSearch(c *gin.Context) {
	query := c.PostForm("q")
	page := formInt(c, "page", 1)

	if query == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	s.fetch(c, ViewSearch, func(ctx context.Context) ([]news.Article, error) {
		return s.client.Search(ctx, query, page)
	}, func() { s.query = query; s.page = page })
}

// fetch runs one API call and updates session state. On failure the
// previously loaded articles stay on screen behind an inline warning; the
// session never dies on a single bad request.
func (s *Server) fetch(c *gin.Context, view string, call func(context.Context) ([]news.Article, error), remember func()) {
	articles, err := call(c.Request.Context())

	s.mu.Lock()
	s.view = view
	remember()

	switch {
	case err != nil:
		slog.Error("news api request failed", "view", view, "error", err)
		s.warning = fmt.Sprintf("API request failed: %v", err)
		s.notice = ""
	case len(articles) == 0:
		s.articles = nil
		s.state.Reset()
		s.warning = "No articles found."
		s.notice = ""
	default:
		s.articles = articles
		s.state.Reset()
		s.warning = ""
		s.notice = fmt.Sprintf("Found %d articles", len(articles))
	}
	s.mu.Unlock()

	c.Redirect(http.StatusFound, "/")
}

func (s *Server) getToggle(c *gin.Context) {
	kind := c.Query("kind")
	key := c.Query("key")

	s.mu.Lock()
	switch kind {
	case "url":
		s.state.ToggleURL(key)
	case "summary":
		s.state.ToggleSummary(key)
	}
	s.mu.Unlock()

	c.Redirect(http.StatusFound, "/")
}

// formatDate renders an ISO timestamp the way the article cards show it,
// falling back to the raw string when it does not parse.
func formatDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("January 02, 2006 at 3:04 PM")
}

func formInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.PostForm(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func formFloat(c *gin.Context, name string, fallback float64) float64 {
	v, err := strconv.ParseFloat(c.PostForm(name), 64)
	if err != nil {
		return fallback
	}
	return v
}
