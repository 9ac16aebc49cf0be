package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/markusmobius/go-trafilatura"
	"github.com/mmcdole/gofeed"

	"github.com/contentcycle/contentcycle/pkg/sanitize"
)

// minURLText is the minimum usable length for page text
const minURLText = 200

// blockedCheckLimit - pages shorter than this that contain a blocked phrase
// are treated as bot walls rather than real content
const blockedCheckLimit = 500

// blockedPhrases indicate a JavaScript wall, CAPTCHA or access-denied page.
// Known false-positive-prone on legitimate short pages.
var blockedPhrases = []string{
	"enable javascript",
	"you are using an older browser",
	"update your browser",
	"captcha",
	"access denied",
	"security check",
	"please wait",
	"skip to content",
}

// errPermanent marks fetch failures not worth retrying
var errPermanent = errors.New("permanent fetch error")

// URLExtractor fetches a web page and extracts readable text. Articles go
// through trafilatura with an HTML-walker fallback; syndication feeds are
// parsed with gofeed.
type URLExtractor struct {
	client    *http.Client
	userAgent string
}

// NewURLExtractor creates a URL extractor with the given timeout and user agent
func NewURLExtractor(timeout time.Duration, userAgent string) *URLExtractor {
	return &URLExtractor{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Extract retrieves the URL and returns plain text, or a classified failure
func (e *URLExtractor) Extract(ctx context.Context, urlStr string) (string, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", wrapf(KindExtractionFailed, err, "parse URL")
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", errf(KindExtractionFailed, "invalid URL: %s", urlStr)
	}

	body, contentType, err := e.fetch(ctx, urlStr)
	if err != nil {
		return "", wrapf(KindExtractionFailed, err, "fetch URL %s", urlStr)
	}

	var text string
	if looksLikeFeed(contentType, body) {
		text, err = feedText(body)
	} else {
		text, err = e.pageText(parsedURL, body)
	}
	if err != nil {
		return "", err
	}

	text = strings.Join(strings.Fields(sanitize.DecodeEntities(text)), " ")

	if len(text) < blockedCheckLimit {
		lower := strings.ToLower(text)
		for _, phrase := range blockedPhrases {
			if strings.Contains(lower, phrase) {
				return "", errf(KindBlocked, "URL content appears to be blocked or requires JavaScript, try pasting the content directly")
			}
		}
	}

	if len(text) < minURLText {
		return "", errf(KindEmptyOrTooShort, "could not extract sufficient content from URL (need %d+ meaningful characters)", minURLText)
	}

	return text, nil
}

// fetch gets the raw page with browser-like headers, retrying transient
// failures with backoff. Non-retryable statuses terminate immediately.
func (e *URLExtractor) fetch(ctx context.Context, urlStr string) (body []byte, contentType string, err error) {
	retrier := repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err = retrier.Do(ctx, func() error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
		if reqErr != nil {
			return fmt.Errorf("%w: create request: %v", errPermanent, reqErr)
		}
		req.Header.Set("User-Agent", e.userAgent)
		addBrowserHeaders(req)

		resp, doErr := e.client.Do(req)
		if doErr != nil {
			return fmt.Errorf("fetch: %w", doErr)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("status code %d", resp.StatusCode) // retry on 5xx
		default:
			return fmt.Errorf("%w: status code %d", errPermanent, resp.StatusCode)
		}

		data, readErr := io.ReadAll(io.LimitReader(resp.Body, MaxFileSize))
		if readErr != nil {
			return fmt.Errorf("read body: %w", readErr)
		}
		body = data
		contentType = resp.Header.Get("Content-Type")
		return nil
	}, errPermanent)

	return body, contentType, err
}

// pageText extracts article text from HTML, preferring trafilatura and
// falling back to a plain HTML walker
func (e *URLExtractor) pageText(pageURL *url.URL, body []byte) (string, error) {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   false,
		IncludeImages:   false,
		IncludeLinks:    false,
		Deduplicate:     true,
		OriginalURL:     pageURL,
	}

	result, err := trafilatura.Extract(bytes.NewReader(body), opts)
	if err == nil && result != nil && strings.TrimSpace(result.ContentText) != "" {
		return strings.TrimSpace(result.ContentText), nil
	}

	text := htmlBodyText(body)
	if strings.TrimSpace(text) == "" {
		return "", errf(KindExtractionFailed, "no content extracted from page")
	}
	return text, nil
}

// feedText converts an RSS/Atom feed into plain text, one block per item
func feedText(body []byte) (string, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return "", wrapf(KindExtractionFailed, err, "parse feed")
	}

	var sb strings.Builder
	if feed.Title != "" {
		sb.WriteString(feed.Title + "\n\n")
	}
	for _, item := range feed.Items {
		if item.Title != "" {
			sb.WriteString(item.Title + ". ")
		}
		if item.Content != "" {
			sb.WriteString(item.Content)
		} else if item.Description != "" {
			sb.WriteString(item.Description)
		}
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

// looksLikeFeed sniffs RSS/Atom by content type or document prefix
func looksLikeFeed(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "rss") || strings.Contains(ct, "atom") {
		return true
	}
	head := strings.ToLower(string(body[:min(len(body), 512)]))
	return strings.Contains(head, "<rss") || strings.Contains(head, "<feed")
}
