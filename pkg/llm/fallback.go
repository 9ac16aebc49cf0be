package llm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/contentcycle/contentcycle/pkg/domain"
)

// deterministic substitutes used when an LLM stage fails. Template text and
// scoring constants are heuristic tuning carried over unchanged, not a
// load-bearing algorithm.

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// meaningfulContent holds the pieces picked from source text for a fallback theme
type meaningfulContent struct {
	title    string
	insights []string
	summary  string
}

var genericInsights = []string{
	"Strategic planning and execution drive industry success",
	"Cultural relevance combined with quality creates global impact",
	"Innovation in approach leads to breakthrough achievements",
}

const genericSummary = "This content provides valuable industry insights and strategic perspectives " +
	"that can inform decision-making and drive success."

// extractMeaningfulContent picks a title, insights and summary from the
// source text by simple sentence heuristics
func extractMeaningfulContent(text string) meaningfulContent {
	var sentences []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if s = strings.TrimSpace(s); len(s) > 20 {
			sentences = append(sentences, s)
		}
	}

	title := "Key Industry Insights and Success Strategies"
	for _, s := range sentences {
		lower := strings.ToLower(s)
		if len(s) > 30 && len(s) < 100 &&
			!strings.Contains(lower, "http") &&
			!strings.Contains(lower, "menu") &&
			!strings.Contains(lower, "navigation") {
			title = truncate(s, 80)
			break
		}
	}

	var insights []string
	for _, s := range sentences[min(1, len(sentences)):min(6, len(sentences))] {
		lower := strings.ToLower(s)
		if len(s) > 25 &&
			!strings.Contains(lower, "http") &&
			!strings.Contains(lower, "click") &&
			!strings.Contains(lower, "menu") {
			insights = append(insights, truncate(s, 120))
		}
	}
	if len(insights) == 0 {
		insights = genericInsights
	}

	summary := genericSummary
	if len(sentences) > 0 {
		summary = strings.Join(sentences[:min(3, len(sentences))], ". ") + "."
	}

	return meaningfulContent{title: title, insights: insights, summary: summary}
}

// fallbackTheme builds the single theme used when theme extraction fails.
// Always well-formed: non-empty title, summary and at least one insight.
func fallbackTheme(text string) domain.Theme {
	mc := extractMeaningfulContent(text)
	return domain.Theme{
		ThemeID:         "core-industry-insights",
		Title:           mc.title,
		Summary:         mc.summary,
		ImportanceScore: 8,
		WhyItSpreads:    "Reveals behind-the-scenes success factors and strategic insights that professionals can immediately apply",
		KeyInsights:     mc.insights,
	}
}

// fallbackAssets builds deterministic per-platform content from the theme
// itself, for the selected platforms only
func fallbackAssets(theme domain.Theme, selectedPlatforms []string) domain.ThemeAssets {
	insights := theme.KeyInsights
	if len(insights) == 0 {
		insights = genericInsights
	}

	assets := domain.ThemeAssets{}
	for _, platform := range selectedPlatforms {
		switch platform {
		case domain.PlatformLinkedIn:
			assets[domain.AssetLinkedInPost] = fmt.Sprintf(
				"🎯 %s\n\n%s\n\nKey insights:\n%s\n\n💡 Ready to implement these insights? DM me for more!\n\n#IndustryInsights #Strategy #ProfessionalGrowth",
				theme.Title, theme.Summary, bullets(insights))
		case domain.PlatformTwitter:
			assets[domain.AssetXThread] = []string{
				fmt.Sprintf("1/ %s", theme.Title),
				fmt.Sprintf("2/ %s", theme.Summary),
				fmt.Sprintf("3/ Key insights:\n%s", bullets(firstN(insights, 3))),
				"4/ Want to dive deeper into these strategies? Follow for more insights!",
			}
		case domain.PlatformBlog:
			assets[domain.AssetShortBlog] = fmt.Sprintf(
				"# %s\n\n## Overview\n\n%s\n\n## Key Insights\n\n%s\n\n## Conclusion\n\nThese insights provide valuable perspectives that can be immediately applied to improve your strategy and outcomes.",
				theme.Title, theme.Summary, dashes(insights))
		case domain.PlatformNewsletter:
			assets[domain.AssetEmail] = fmt.Sprintf(
				"Subject: %s\n\nHi there,\n\n%s\n\nHere are the key insights:\n%s\n\nBest regards,\nYour Team",
				theme.Title, theme.Summary, bullets(insights))
		case domain.PlatformCarousel:
			assets[domain.AssetCarousel] = fmt.Sprintf(
				"Slide 1: %s\n%s\n---\nSlide 2: Key Insights\n%s\n---\nSlide 3: Implementation\nPractical ways to apply these insights\n---\nSlide 4: Next Steps\nReady to implement? Contact us today!",
				theme.Title, theme.Summary, bullets(firstN(insights, 3)))
		case domain.PlatformInstagram:
			assets[domain.AssetInstagramPost] = fmt.Sprintf(
				"%s\n\n%s\n\nKey insights:\n%s\n\n#ContentStrategy #BusinessTips #Marketing",
				theme.Title, theme.Summary, bullets(firstN(insights, 3)))
		case domain.PlatformYouTube:
			assets[domain.AssetYouTubeScript] = fmt.Sprintf(
				"Introduction:\n%s\n\n%s\n\nMain Points:\n%s\n\nConclusion:\nThese insights provide valuable perspectives that can be immediately applied to improve your strategy and outcomes.",
				theme.Title, theme.Summary, dashes(insights))
		}
	}
	return assets
}

// fallbackRanking ranks posts by input order with a linearly decaying score
func fallbackRanking(posts []Post) []domain.RankedPost {
	ranked := make([]domain.RankedPost, 0, len(posts))
	for i, post := range posts {
		ranked = append(ranked, domain.RankedPost{
			Rank:        i + 1,
			Platform:    post.Platform,
			Score:       80 - i*5,
			Reason:      "Quality content with good engagement potential",
			Preview:     truncateEllipsis(post.Content, 120),
			FullContent: post.Content,
			Content:     post.Content,
			Theme:       post.Theme,
			ThemeID:     post.ThemeID,
		})
	}
	return ranked
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

func dashes(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func truncate(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n])
	}
	return s
}

func truncateEllipsis(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n]) + "..."
	}
	return s
}
