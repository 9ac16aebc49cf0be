package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/contentcycle/contentcycle/pkg/domain"
	"github.com/contentcycle/contentcycle/pkg/sanitize"
)

// Post is one (theme, platform, content) triple submitted for ranking
type Post struct {
	Platform string `json:"platform"`
	Content  string `json:"content"`
	Theme    string `json:"theme"`
	ThemeID  string `json:"theme_id"`
}

// RankPosts orders posts by predicted engagement. Only the first promptCap
// posts are sent to the LLM for cost control; the fallback path ranks the
// whole input by list order with a linear score decay. Never fails.
func (g *Generator) RankPosts(ctx context.Context, posts []Post, promptCap int) []domain.RankedPost {
	if len(posts) == 0 {
		return []domain.RankedPost{}
	}
	if promptCap < 1 {
		promptCap = 10
	}

	capped := posts
	if len(capped) > promptCap {
		capped = capped[:promptCap]
	}

	ranked, err := g.requestRanking(ctx, capped)
	if err != nil {
		log.Printf("[WARN] ranking failed, using fallback ranking: %v", err)
		return fallbackRanking(posts)
	}

	// the ranking response is not trusted to carry full content verbatim;
	// reattach it from the original posts by (theme, platform)
	result := make([]domain.RankedPost, 0, len(ranked))
	for _, entry := range ranked {
		entry.Preview = sanitize.DecodeEntities(entry.Preview)
		entry.Reason = sanitize.DecodeEntities(entry.Reason)
		if original := matchPost(capped, entry); original != nil {
			entry.FullContent = original.Content
			entry.Content = original.Content
			entry.ThemeID = original.ThemeID
			if entry.Theme == "" {
				entry.Theme = original.Theme
			}
		}
		result = append(result, entry)
	}
	return result
}

func (g *Generator) requestRanking(ctx context.Context, posts []Post) ([]domain.RankedPost, error) {
	postsJSON, err := json.Marshal(posts)
	if err != nil {
		return nil, fmt.Errorf("marshal posts: %w", err)
	}

	prompt := strings.Replace(rankAssetsPrompt, "{n}", fmt.Sprintf("%d", len(posts)), 1) +
		"\n\nPosts:\n" + string(postsJSON)

	content, err := g.completeJSON(ctx, rankAssetsSystem, prompt, g.cfg.MaxTokens)
	if err != nil {
		return nil, err
	}

	return parseRanking(content)
}

// parseRanking accepts either a bare JSON array or an object with a "ranked"
// array field; anything else is malformed
func parseRanking(content string) ([]domain.RankedPost, error) {
	trimmed := strings.TrimSpace(content)

	if strings.HasPrefix(trimmed, "[") {
		var ranked []domain.RankedPost
		if err := json.Unmarshal([]byte(trimmed), &ranked); err != nil {
			return nil, fmt.Errorf("failed to parse ranking array: %w", err)
		}
		return ranked, nil
	}

	var resp struct {
		Ranked []domain.RankedPost `json:"ranked"`
	}
	if err := json.Unmarshal([]byte(trimmed), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse ranking response: %w", err)
	}
	if resp.Ranked == nil {
		return nil, fmt.Errorf("invalid ranking response format")
	}
	return resp.Ranked, nil
}

// matchPost finds the original post for a ranked entry by theme title and platform
func matchPost(posts []Post, entry domain.RankedPost) *Post {
	for i := range posts {
		if posts[i].Theme == entry.Theme && posts[i].Platform == entry.Platform {
			return &posts[i]
		}
	}
	// platform alone is good enough when the model dropped the theme title
	for i := range posts {
		if entry.Theme == "" && posts[i].Platform == entry.Platform {
			return &posts[i]
		}
	}
	return nil
}
