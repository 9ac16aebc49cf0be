package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/contentcycle/contentcycle/pkg/domain"
)

// originalInputLimit caps how much source text goes into the editor prompt
const originalInputLimit = 2000

// historyLimit caps how many prior turns are replayed to the model
const historyLimit = 10

// EditRequest is one chat-editor turn. CurrentContent may arrive as a string
// or as a structured object; it is coerced to text before prompting.
type EditRequest struct {
	Message        string
	CurrentContent Content
	Platform       string
	OriginalInput  string
	History        []domain.ChatMessage
}

// Scores are the four 0-100 quality sub-scores returned with each edit
type Scores struct {
	Clarity   int `json:"clarity"`
	Tone      int `json:"tone"`
	Structure int `json:"structure"`
	Length    int `json:"length"`
}

// EditResult is the editor response. ModifiedContent is nil only when the
// caller should not overwrite the user's current draft.
type EditResult struct {
	Reply           string  `json:"reply"`
	ModifiedContent *string `json:"modifiedContent"`
	Scores          Scores  `json:"scores"`
}

// Edit applies a free-text editing instruction to the current content,
// anchored to the original source text. Stateless per call; the caller owns
// conversation history. Provider failures propagate so the transport layer
// can respond with its apology payload.
func (g *Generator) Edit(ctx context.Context, req EditRequest) (*EditResult, error) {
	currentText := req.CurrentContent.Normalize()

	messages := []openai.ChatCompletionMessage{{
		Role:    openai.ChatMessageRoleSystem,
		Content: editorSystemPrompt(req.Platform, req.OriginalInput),
	}}

	history := req.History
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}
	for _, msg := range history {
		// anything that isn't an explicit user turn replays as assistant
		if msg.Role == "user" {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: msg.Content,
			})
			continue
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleAssistant,
			Content: fmt.Sprintf("Previously I said: %q. Here's the modified content: %q", msg.Content, msg.ModifiedContent),
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: editorUserPrompt(req.Message, currentText, req.OriginalInput != ""),
	})

	content, err := g.complete(ctx, messages, g.cfg.EditTokens)
	if err != nil {
		return nil, err
	}

	return parseEditResponse(content, currentText), nil
}

// parseEditResponse extracts reply, modified content and scores, filling
// sensible defaults for anything the model left out or malformed
func parseEditResponse(content, currentText string) *EditResult {
	var resp struct {
		Reply           string          `json:"reply"`
		Response        string          `json:"response"`
		ModifiedContent json.RawMessage `json:"modifiedContent"`
		UpdatedContent  json.RawMessage `json:"updatedContent"`
		Scores          *Scores         `json:"scores"`
	}

	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		// not valid JSON, treat the whole response as the reply
		modified := currentText
		return &EditResult{
			Reply:           content,
			ModifiedContent: &modified,
			Scores:          Scores{Clarity: 70, Tone: 70, Structure: 70, Length: 70},
		}
	}

	reply := resp.Reply
	if reply == "" {
		reply = resp.Response
	}
	if reply == "" {
		reply = "I've made the requested changes to your content."
	}

	rawModified := resp.ModifiedContent
	if len(rawModified) == 0 {
		rawModified = resp.UpdatedContent
	}

	modified := currentText
	if len(rawModified) > 0 {
		if text := ParseContent(rawModified).Normalize(); text != "" {
			modified = text
		}
	}

	scores := Scores{Clarity: 70, Tone: 70, Structure: 70, Length: 70}
	if resp.Scores != nil {
		scores = *resp.Scores
	}

	return &EditResult{Reply: reply, ModifiedContent: &modified, Scores: scores}
}

func editorSystemPrompt(platform, originalInput string) string {
	if platform == "" {
		platform = "social media"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert content editor specialized in %s content.\n", platform)
	sb.WriteString("Your job is to modify the provided content based on user requests while maintaining the core message and value from the ORIGINAL INPUT.\n\n")

	if originalInput != "" {
		truncated := originalInput
		suffix := ""
		if runes := []rune(originalInput); len(runes) > originalInputLimit {
			truncated = string(runes[:originalInputLimit])
			suffix = "\n... [truncated]"
		}
		fmt.Fprintf(&sb, "ORIGINAL INPUT CONTENT (for reference):\n---\n%s%s\n---\n\n", truncated, suffix)
		sb.WriteString("CRITICAL: Always refer back to the original input content when making modifications. ")
		sb.WriteString("Ensure your changes align with the original message, tone, and intent while applying the requested modifications.\n\n")
	}

	sb.WriteString(`Always return your response in JSON format with these fields:
1. "reply": A conversational response explaining what changes you made, referencing the original input when relevant
2. "modifiedContent": The updated content with the requested changes applied
3. "scores": An object containing 4 scores (0-100) for the modified content: "clarity", "tone", "structure", "length". Be STRICT with scoring. High scores (>80) should only be given for exceptional content.

IMPORTANT:
- Maintain the original intent and key messages from the original input
- Apply the requested changes naturally while staying true to the original content
- Keep the content appropriate for ` + platform + `
- If the user asks for clarification, ask follow-up questions in the reply
- Always return valid JSON`)

	return sb.String()
}

func editorUserPrompt(message, currentText string, hasOriginal bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current generated content to modify:\n\n%s\n\n", currentText)
	if hasOriginal {
		sb.WriteString("Remember: The original input content serves as your reference for maintaining consistency with the source material.\n\n")
	}
	fmt.Fprintf(&sb, "User request: %s\n\n", message)
	sb.WriteString(`Please modify the content according to the request, keeping in mind the original input content and maintaining its core message and intent. Return the result in JSON format with "reply", "modifiedContent", and "scores" fields.`)
	return sb.String()
}
