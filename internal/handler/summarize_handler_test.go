package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhishek8290-github/inshorts-embed-service/internal/extract"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeExtractor struct {
	article extract.Article
	err     error
}

func (f *fakeExtractor) Extract(ctx context.Context, pageURL string) (extract.Article, error) {
	return f.article, f.err
}

type fakeSummarizer struct {
	summary string
	err     error
	calls   int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, body string) (string, error) {
	f.calls++
	return f.summary, f.err
}

func newSummarizeRouter(extractor Extractor, summarizer *fakeSummarizer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSummarizeHandler(extractor, summarizer)
	r.POST("/summarize", h.Summarize)
	return r
}

func TestSummarize_Success(t *testing.T) {
	extractor := &fakeExtractor{article: extract.Article{Title: "Company X Results", Body: "Company X reported record profits today."}}
	summarizer := &fakeSummarizer{summary: "Record profits for Company X."}
	r := newSummarizeRouter(extractor, summarizer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"url":"https://example.com/a"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SummarizeResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, "Record profits for Company X.", res.Summary)
	assert.Equal(t, "Company X Results", res.Title)
}

func TestSummarize_EmptyExtractionIs400(t *testing.T) {
	extractor := &fakeExtractor{err: extract.ErrNoContent}
	summarizer := &fakeSummarizer{}
	r := newSummarizeRouter(extractor, summarizer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"url":"https://example.com/empty"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, summarizer.calls)
}

func TestSummarize_WrappedEmptyExtractionIs400(t *testing.T) {
	wrapped := errors.Join(errors.New("all extraction strategies failed"), extract.ErrNoContent)
	extractor := &fakeExtractor{err: wrapped}
	r := newSummarizeRouter(extractor, &fakeSummarizer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"url":"https://example.com/empty"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummarize_ExtractionErrorIs500(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("connection refused")}
	r := newSummarizeRouter(extractor, &fakeSummarizer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"url":"https://example.com/a"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSummarize_ProviderErrorIs500(t *testing.T) {
	extractor := &fakeExtractor{article: extract.Article{Title: "t", Body: "body"}}
	summarizer := &fakeSummarizer{err: errors.New("rate limited")}
	r := newSummarizeRouter(extractor, summarizer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"url":"https://example.com/a"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// End to end against a real page served over httptest: the primary extraction
// strategy parses the page, the summarizer stub stands in for the provider.
func TestSummarize_EndToEnd(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<head><title>Company X Results</title></head>
<body>
<article>
<p>Company X reported record profits today. Revenue grew across all segments,
driven by strong demand in its core markets and a recovery in advertising
spend over the quarter, the company said in its earnings release.</p>
<p>Analysts had expected a weaker quarter. The results sent the stock up in
early trading as investors reassessed their forecasts for the full year.</p>
</article>
</body>
</html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	summarizer := &fakeSummarizer{summary: "Company X posted record quarterly profits."}
	extractor := extract.New(extract.NewReadabilityStrategy())
	r := newSummarizeRouter(extractor, summarizer)

	w := httptest.NewRecorder()
	body, _ := json.Marshal(SummarizeRequest{URL: srv.URL + "/company-x"})
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(string(body)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SummarizeResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, "Company X Results", res.Title)
	assert.NotEqual(t, "", res.Summary)
	assert.Equal(t, 1, summarizer.calls)
}
