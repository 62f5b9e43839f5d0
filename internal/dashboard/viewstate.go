package dashboard

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/abhishek8290-github/inshorts-embed-service/pkg/news"
)

// ArticleKey returns a stable identifier for UI state: the article id, else
// its url, else the first 8 hex chars of md5(title). The hash fallback is
// stable across re-renders of the same title string but is NOT guaranteed
// unique across articles.
func ArticleKey(a news.Article) string {
	if a.ID != "" {
		return a.ID
	}
	if a.URL != "" {
		return a.URL
	}
	sum := md5.Sum([]byte(a.Title))
	return hex.EncodeToString(sum[:])[:8]
}

// ViewState tracks which single article currently shows its full-article
// link and which shows its AI summary. Toggling the open one closes it;
// toggling another moves the selection.
type ViewState struct {
	ShowURLFor     string
	ShowSummaryFor string
}

func (s *ViewState) ToggleURL(key string) {
	if s.ShowURLFor == key {
		s.ShowURLFor = ""
		return
	}
	s.ShowURLFor = key
}

func (s *ViewState) ToggleSummary(key string) {
	if s.ShowSummaryFor == key {
		s.ShowSummaryFor = ""
		return
	}
	s.ShowSummaryFor = key
}

func (s *ViewState) Reset() {
	s.ShowURLFor = ""
	s.ShowSummaryFor = ""
}
