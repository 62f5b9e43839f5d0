package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	f.calls++
	return f.vector, f.err
}

func newEmbedRouter(embedder Embedder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewEmbedHandler(embedder)
	r.POST("/embed", h.Embed)
	return r
}

func TestEmbed_Success(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2, 0.3}}
	r := newEmbedRouter(embedder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/embed", strings.NewReader(`{"text":"hello world"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res EmbedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, 3, len(res.Embedding))
	assert.Equal(t, 1, embedder.calls)
}

func TestEmbed_ModelFailure(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("inference server down")}
	r := newEmbedRouter(embedder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/embed", strings.NewReader(`{"text":"hello"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestEmbed_MissingText(t *testing.T) {
	embedder := &fakeEmbedder{}
	r := newEmbedRouter(embedder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/embed", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, embedder.calls)
}
