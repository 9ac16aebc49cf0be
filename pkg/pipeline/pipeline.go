// Package pipeline runs one content-repurposing pass: sanitize the combined
// source text, extract themes, generate per-theme platform assets
// concurrently, rank the results and assemble the response aggregate. All
// state is request-scoped; nothing survives the call.
package pipeline

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/contentcycle/contentcycle/pkg/domain"
	"github.com/contentcycle/contentcycle/pkg/llm"
	"github.com/contentcycle/contentcycle/pkg/sanitize"
)

// ErrContentTooShort signals that cleaning left too little text to work with
var ErrContentTooShort = errors.New("content too short after cleaning, please provide more substantial content")

// minCleanLength is the minimum usable length of sanitized text
const minCleanLength = 100

// minPostLength filters near-empty assets out of ranking
const minPostLength = 10

// rankingOrder fixes the flattening order of platforms within each theme
var rankingOrder = []string{
	domain.PlatformLinkedIn,
	domain.PlatformTwitter,
	domain.PlatformInstagram,
	domain.PlatformBlog,
	domain.PlatformNewsletter,
	domain.PlatformYouTube,
	domain.PlatformCarousel,
}

//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

// Generator is the LLM surface the pipeline needs
type Generator interface {
	Configured() bool
	ExtractThemes(ctx context.Context, text string, postCount int) []domain.Theme
	GenerateAssets(ctx context.Context, theme domain.Theme, tone string, selectedPlatforms []string) domain.ThemeAssets
	RankPosts(ctx context.Context, posts []llm.Post, promptCap int) []domain.RankedPost
}

// Request carries the combined extracted text and the user's options
type Request struct {
	CombinedText      string
	SelectedPlatforms []string
	Settings          domain.Settings
}

// Processor orchestrates the generation pipeline
type Processor struct {
	gen              Generator
	defaultPostCount int
	rankCap          int
}

// New creates a processor with pipeline defaults
func New(gen Generator, defaultPostCount, rankCap int) *Processor {
	return &Processor{gen: gen, defaultPostCount: defaultPostCount, rankCap: rankCap}
}

// Configured reports whether the underlying provider has an API key
func (p *Processor) Configured() bool { return p.gen.Configured() }

// Process runs the full pipeline for one request. LLM stage failures degrade
// to deterministic fallbacks inside each stage; only unusable input and
// missing provider configuration surface as errors.
func (p *Processor) Process(ctx context.Context, req Request) (*domain.ProcessedResult, error) {
	if !p.gen.Configured() {
		return nil, llm.ErrNotConfigured
	}

	cleaned := sanitize.Clean(req.CombinedText)
	if len(cleaned) < minCleanLength {
		return nil, ErrContentTooShort
	}

	postCount := p.defaultPostCount
	if n, err := strconv.Atoi(req.Settings.PostCount); err == nil && n > 0 {
		postCount = n
	}

	themes := p.gen.ExtractThemes(ctx, cleaned, postCount)

	// per-theme asset calls are independent and unordered; one theme's
	// failure degrades to its own fallback without touching the others
	g, gctx := errgroup.WithContext(ctx)
	for i := range themes {
		g.Go(func() error {
			themes[i].Assets = p.gen.GenerateAssets(gctx, themes[i], req.Settings.Tone, req.SelectedPlatforms)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	posts := flattenPosts(themes, req.SelectedPlatforms)
	ranked := []domain.RankedPost{}
	if len(posts) > 0 {
		ranked = p.gen.RankPosts(ctx, posts, p.rankCap)
	}

	return &domain.ProcessedResult{
		Themes:        themes,
		Ranked:        ranked,
		WordCount:     len(strings.Fields(cleaned)),
		ProcessedAt:   time.Now().UTC(),
		OriginalInput: req.CombinedText,
		Settings:      req.Settings,
	}, nil
}

// flattenPosts lists every (theme, selected platform) pair with non-trivial
// content, in fixed platform order within each theme
func flattenPosts(themes []domain.Theme, selectedPlatforms []string) []llm.Post {
	selected := make(map[string]bool, len(selectedPlatforms))
	for _, p := range selectedPlatforms {
		selected[p] = true
	}

	var posts []llm.Post
	for _, theme := range themes {
		for _, platform := range rankingOrder {
			if !selected[platform] {
				continue
			}
			key := domain.AssetKeyForPlatform[platform]
			content := assetText(theme.Assets[key])
			if len(content) <= minPostLength {
				continue
			}
			posts = append(posts, llm.Post{
				Platform: domain.DisplayNameForAssetKey[key],
				Content:  content,
				Theme:    theme.Title,
				ThemeID:  theme.ThemeID,
			})
		}
	}
	return posts
}

// assetText renders an asset value as plain text; threads join with blank lines
func assetText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, "\n\n")
	case nil:
		return ""
	default:
		return ""
	}
}
