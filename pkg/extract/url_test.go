package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticleHTML() string {
	para := "Content repurposing turns one strong piece of source material into many platform-native posts. " +
		"The trick is to extract the underlying themes first and only then adapt them for each channel, " +
		"because a thread, a newsletter and a carousel all want different pacing and structure."
	return `<html><head><title>Repurposing 101</title></head><body>
<article><h1>Repurposing 101</h1>
<p>` + para + `</p>
<p>` + para + `</p>
<p>` + para + `</p>
</article></body></html>`
}

func TestURLExtractor_Extract(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(testArticleHTML()))
	}))
	defer ts.Close()

	e := NewURLExtractor(5*time.Second, "test-agent/1.0")
	text, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Content repurposing")
	assert.GreaterOrEqual(t, len(text), 200)
	assert.NotContains(t, text, "<p>", "markup must not leak into extracted text")
}

func TestURLExtractor_Extract_InvalidURL(t *testing.T) {
	e := NewURLExtractor(time.Second, "test-agent/1.0")

	tests := []struct {
		name string
		url  string
	}{
		{"no scheme", "example.com/page"},
		{"empty", ""},
		{"scheme only", "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Extract(context.Background(), tt.url)
			require.Error(t, err)
			assert.True(t, IsKind(err, KindExtractionFailed))
		})
	}
}

func TestURLExtractor_Extract_BlockedPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>Please enable JavaScript to view this page. Checking your browser before accessing the site.</p></body></html>`))
	}))
	defer ts.Close()

	e := NewURLExtractor(5*time.Second, "test-agent/1.0")
	_, err := e.Extract(context.Background(), ts.URL)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindBlocked))
}

func TestURLExtractor_Extract_TooShort(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><p>Short page without much to say.</p></body></html>`))
	}))
	defer ts.Close()

	e := NewURLExtractor(5*time.Second, "test-agent/1.0")
	_, err := e.Extract(context.Background(), ts.URL)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindEmptyOrTooShort))
}

func TestURLExtractor_Extract_RetriesServerErrors(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(testArticleHTML()))
	}))
	defer ts.Close()

	e := NewURLExtractor(5*time.Second, "test-agent/1.0")
	text, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Content repurposing")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestURLExtractor_Extract_NoRetryOnClientError(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	e := NewURLExtractor(5*time.Second, "test-agent/1.0")
	_, err := e.Extract(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "4xx must not be retried")
}

func TestURLExtractor_Extract_RSSFeed(t *testing.T) {
	feed := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Content Strategy Weekly</title>
<item><title>Why repurposing beats producing</title>
<description>` + strings.Repeat("Writing once and publishing everywhere saves teams hours every week. ", 5) + `</description></item>
<item><title>The anatomy of a viral thread</title>
<description>` + strings.Repeat("Hooks earn the click, structure earns the retweet, payoff earns the follow. ", 5) + `</description></item>
</channel></rss>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(feed))
	}))
	defer ts.Close()

	e := NewURLExtractor(5*time.Second, "test-agent/1.0")
	text, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Content Strategy Weekly")
	assert.Contains(t, text, "Why repurposing beats producing")
	assert.Contains(t, text, "The anatomy of a viral thread")
}

func TestLooksLikeFeed(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		expected    bool
	}{
		{"rss content type", "application/rss+xml", "<whatever/>", true},
		{"atom content type", "application/atom+xml", "<whatever/>", true},
		{"rss body sniff", "text/xml", `<?xml version="1.0"?><rss version="2.0"/>`, true},
		{"atom body sniff", "text/xml", `<feed xmlns="http://www.w3.org/2005/Atom"/>`, true},
		{"plain html", "text/html", "<html><body/></html>", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, looksLikeFeed(tt.contentType, []byte(tt.body)))
		})
	}
}

func TestHTMLBodyText_SkipsChrome(t *testing.T) {
	page := `<html><body>
<nav>Home About Contact</nav>
<script>var x = 1;</script>
<p>The part of the page a reader actually came for.</p>
<footer>All rights reserved</footer>
</body></html>`

	text := htmlBodyText([]byte(page))
	assert.Contains(t, text, "actually came for")
	assert.NotContains(t, text, "var x")
	assert.NotContains(t, text, "Home About Contact")
	assert.NotContains(t, text, "All rights reserved")
}
