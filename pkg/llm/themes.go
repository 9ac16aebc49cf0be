package llm

import (
	"context"
	"fmt"
	"log"

	"github.com/contentcycle/contentcycle/pkg/domain"
	"github.com/contentcycle/contentcycle/pkg/sanitize"
)

// ExtractThemes asks the LLM for thematic content and returns at most
// postCount themes taken from the front of the response, no re-ranking.
// Never fails: on any provider or parse error it degrades to a single
// sentence-picked fallback theme.
func (g *Generator) ExtractThemes(ctx context.Context, text string, postCount int) []domain.Theme {
	if postCount < 1 {
		postCount = 3
	}

	themes, err := g.requestThemes(ctx, text)
	if err != nil || len(themes) == 0 {
		log.Printf("[WARN] theme extraction failed, using fallback theme: %v", err)
		return []domain.Theme{fallbackTheme(text)}
	}

	// decode entities in every text field the model produced
	for i := range themes {
		themes[i].Title = sanitize.DecodeEntities(themes[i].Title)
		themes[i].Summary = sanitize.DecodeEntities(themes[i].Summary)
		themes[i].WhyItSpreads = sanitize.DecodeEntities(themes[i].WhyItSpreads)
		for j, insight := range themes[i].KeyInsights {
			themes[i].KeyInsights[j] = sanitize.DecodeEntities(insight)
		}
	}

	if len(themes) > postCount {
		themes = themes[:postCount]
	}
	return themes
}

func (g *Generator) requestThemes(ctx context.Context, text string) ([]domain.Theme, error) {
	prompt := fmt.Sprintf("Content:\n\n%s\n\nExtract themes using this prompt:\n%s", text, extractThemesPrompt)

	content, err := g.completeJSON(ctx, extractThemesSystem, prompt, g.cfg.MaxTokens)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Themes []domain.Theme `json:"themes"`
	}
	if err := unmarshalObject(content, &resp); err != nil {
		return nil, err
	}
	return resp.Themes, nil
}
