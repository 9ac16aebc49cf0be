package llm

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/contentcycle/contentcycle/pkg/domain"
	"github.com/contentcycle/contentcycle/pkg/sanitize"
)

// GenerateAssets produces platform content for one theme, restricted to the
// selected platforms. Anything else the model returns is discarded. Never
// fails: on provider or parse error it degrades to deterministic templates.
func (g *Generator) GenerateAssets(ctx context.Context, theme domain.Theme, tone string, selectedPlatforms []string) domain.ThemeAssets {
	raw, err := g.requestAssets(ctx, theme, tone, selectedPlatforms)
	if err != nil {
		log.Printf("[WARN] asset generation failed for theme %s, using fallback templates: %v", theme.ThemeID, err)
		return fallbackAssets(theme, selectedPlatforms)
	}

	// keep only content for explicitly selected platforms
	assets := domain.ThemeAssets{}
	for _, platform := range selectedPlatforms {
		key := domain.AssetKeyForPlatform[platform]
		if key == "" {
			continue
		}
		value, ok := raw[key]
		if !ok {
			continue
		}

		content := ParseContent(value)
		if key == domain.AssetXThread {
			thread := threadFromContent(content)
			for i, tweet := range thread {
				thread[i] = sanitize.DecodeEntities(tweet)
			}
			assets[key] = thread
			continue
		}

		if text := sanitize.DecodeEntities(content.Normalize()); text != "" {
			assets[key] = text
		}
	}
	return assets
}

func (g *Generator) requestAssets(ctx context.Context, theme domain.Theme, tone string, selectedPlatforms []string) (map[string]json.RawMessage, error) {
	names := platformNames(selectedPlatforms)

	prompt := strings.NewReplacer(
		"{tone}", tone,
		"{title}", theme.Title,
		"{summary}", theme.Summary,
		"{key_insights}", strings.Join(theme.KeyInsights, "\n"),
		"{selectedPlatforms}", names,
	).Replace(generateAssetsPrompt)

	systemMsg := "You are a world-class marketer. Create platform-optimized, complete content versions for ONLY these platforms: " + names + ". " +
		"Ensure all content is specific, compelling, and uses actual insights from the theme. " +
		"Never use generic placeholder text. Create ready-to-use content that provides real value."

	content, err := g.completeJSON(ctx, systemMsg, prompt, g.cfg.MaxTokens)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := unmarshalObject(content, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// platformNames renders selected platform IDs as display names for prompts
func platformNames(selectedPlatforms []string) string {
	if len(selectedPlatforms) == 0 {
		return "LinkedIn, Twitter/X, Blog, Email, Carousel"
	}
	names := make([]string, 0, len(selectedPlatforms))
	for _, p := range selectedPlatforms {
		if name, ok := domain.DisplayNameForPlatform[p]; ok {
			names = append(names, name)
		} else {
			names = append(names, p)
		}
	}
	return strings.Join(names, ", ")
}
