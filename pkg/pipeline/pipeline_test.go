package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentcycle/contentcycle/pkg/domain"
	"github.com/contentcycle/contentcycle/pkg/llm"
	"github.com/contentcycle/contentcycle/pkg/pipeline/mocks"
)

func testSourceText() string {
	return strings.Repeat("Remote work reshaped how companies hire and retain engineering talent. ", 5)
}

func testGenMock() *mocks.GeneratorMock {
	return &mocks.GeneratorMock{
		ConfiguredFunc: func() bool { return true },
		ExtractThemesFunc: func(_ context.Context, _ string, _ int) []domain.Theme {
			return []domain.Theme{
				{ThemeID: "remote-work-shift", Title: "The Remote Work Shift", Summary: "s", ImportanceScore: 9},
				{ThemeID: "async-culture", Title: "Async Culture", Summary: "s", ImportanceScore: 7},
			}
		},
		GenerateAssetsFunc: func(_ context.Context, theme domain.Theme, _ string, _ []string) domain.ThemeAssets {
			return domain.ThemeAssets{
				domain.AssetLinkedInPost: "LinkedIn content for " + theme.Title,
				domain.AssetXThread:      []string{"1/ " + theme.Title, "2/ details"},
			}
		},
		RankPostsFunc: func(_ context.Context, posts []llm.Post, _ int) []domain.RankedPost {
			ranked := make([]domain.RankedPost, 0, len(posts))
			for i, p := range posts {
				ranked = append(ranked, domain.RankedPost{Rank: i + 1, Platform: p.Platform, Score: 90 - i, FullContent: p.Content, Theme: p.Theme, ThemeID: p.ThemeID})
			}
			return ranked
		},
	}
}

func TestProcessor_Process(t *testing.T) {
	gen := testGenMock()
	p := New(gen, 3, 10)

	result, err := p.Process(context.Background(), Request{
		CombinedText:      testSourceText(),
		SelectedPlatforms: []string{domain.PlatformLinkedIn, domain.PlatformTwitter},
		Settings:          domain.Settings{CreationMode: "standard", PostCount: "2", Tone: "Professional"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// two themes, each with assets attached by the concurrent workers
	require.Len(t, result.Themes, 2)
	for _, theme := range result.Themes {
		assert.Contains(t, theme.Assets, domain.AssetLinkedInPost)
		assert.Contains(t, theme.Assets, domain.AssetXThread)
	}

	// 2 themes x 2 selected platforms
	require.Len(t, result.Ranked, 4)

	assert.Positive(t, result.WordCount)
	assert.False(t, result.ProcessedAt.IsZero())
	assert.Equal(t, testSourceText(), result.OriginalInput)
	assert.Equal(t, "2", result.Settings.PostCount)

	// postCount from settings wins over the default
	themeCalls := gen.ExtractThemesCalls()
	require.Len(t, themeCalls, 1)
	assert.Equal(t, 2, themeCalls[0].PostCount)

	// one asset call per theme
	assert.Len(t, gen.GenerateAssetsCalls(), 2)
}

func TestProcessor_Process_NotConfigured(t *testing.T) {
	gen := &mocks.GeneratorMock{ConfiguredFunc: func() bool { return false }}
	p := New(gen, 3, 10)

	_, err := p.Process(context.Background(), Request{CombinedText: testSourceText()})
	require.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestProcessor_Process_ContentTooShort(t *testing.T) {
	gen := &mocks.GeneratorMock{ConfiguredFunc: func() bool { return true }}
	p := New(gen, 3, 10)

	_, err := p.Process(context.Background(), Request{CombinedText: "tiny"})
	require.ErrorIs(t, err, ErrContentTooShort)

	// markup-only input collapses under the minimum too
	_, err = p.Process(context.Background(), Request{CombinedText: strings.Repeat("<div></div>", 50)})
	require.ErrorIs(t, err, ErrContentTooShort)
}

func TestProcessor_Process_InvalidPostCountUsesDefault(t *testing.T) {
	gen := testGenMock()
	p := New(gen, 5, 10)

	_, err := p.Process(context.Background(), Request{
		CombinedText:      testSourceText(),
		SelectedPlatforms: []string{domain.PlatformLinkedIn},
		Settings:          domain.Settings{PostCount: "lots"},
	})
	require.NoError(t, err)

	calls := gen.ExtractThemesCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 5, calls[0].PostCount)
}

func TestProcessor_Process_NoSelectedPlatforms(t *testing.T) {
	gen := testGenMock()
	rankCalled := false
	gen.RankPostsFunc = func(_ context.Context, _ []llm.Post, _ int) []domain.RankedPost {
		rankCalled = true
		return nil
	}
	p := New(gen, 3, 10)

	result, err := p.Process(context.Background(), Request{CombinedText: testSourceText()})
	require.NoError(t, err)

	// nothing selected means nothing to flatten or rank
	assert.NotNil(t, result.Ranked)
	assert.Empty(t, result.Ranked)
	assert.False(t, rankCalled)
}

func TestProcessor_Process_OneThemeDegrades(t *testing.T) {
	gen := testGenMock()
	gen.GenerateAssetsFunc = func(_ context.Context, theme domain.Theme, _ string, _ []string) domain.ThemeAssets {
		if theme.ThemeID == "async-culture" {
			// this theme's generation degraded to nothing useful
			return domain.ThemeAssets{}
		}
		return domain.ThemeAssets{domain.AssetLinkedInPost: "LinkedIn content for " + theme.Title}
	}
	p := New(gen, 3, 10)

	result, err := p.Process(context.Background(), Request{
		CombinedText:      testSourceText(),
		SelectedPlatforms: []string{domain.PlatformLinkedIn},
	})
	require.NoError(t, err)

	// the healthy theme still produces a ranked post
	require.Len(t, result.Ranked, 1)
	assert.Equal(t, "remote-work-shift", result.Ranked[0].ThemeID)
}

func TestFlattenPosts(t *testing.T) {
	themes := []domain.Theme{
		{
			ThemeID: "t1", Title: "Theme One",
			Assets: domain.ThemeAssets{
				domain.AssetLinkedInPost: "a linkedin post with enough text",
				domain.AssetXThread:      []string{"1/ first tweet of the thread", "2/ second"},
				domain.AssetShortBlog:    "short", // under the post minimum, dropped
			},
		},
	}

	posts := flattenPosts(themes, []string{domain.PlatformLinkedIn, domain.PlatformTwitter, domain.PlatformBlog})
	require.Len(t, posts, 2)

	// fixed platform order within a theme
	assert.Equal(t, "LinkedIn", posts[0].Platform)
	assert.Equal(t, "X", posts[1].Platform)

	// threads flatten to joined text
	assert.Equal(t, "1/ first tweet of the thread\n\n2/ second", posts[1].Content)
	assert.Equal(t, "Theme One", posts[0].Theme)
	assert.Equal(t, "t1", posts[0].ThemeID)
}

func TestFlattenPosts_UnselectedSkipped(t *testing.T) {
	themes := []domain.Theme{
		{ThemeID: "t1", Title: "Theme", Assets: domain.ThemeAssets{
			domain.AssetLinkedInPost: "a linkedin post with enough text",
			domain.AssetEmail:        "an email nobody asked for, long enough to pass",
		}},
	}

	posts := flattenPosts(themes, []string{domain.PlatformLinkedIn})
	require.Len(t, posts, 1)
	assert.Equal(t, "LinkedIn", posts[0].Platform)
}

func TestAssetText(t *testing.T) {
	assert.Equal(t, "plain", assetText("plain"))
	assert.Equal(t, "a\n\nb", assetText([]string{"a", "b"}))
	assert.Empty(t, assetText(nil))
	assert.Empty(t, assetText(42))
}
