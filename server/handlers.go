package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/contentcycle/contentcycle/pkg/domain"
	"github.com/contentcycle/contentcycle/pkg/extract"
	"github.com/contentcycle/contentcycle/pkg/llm"
	"github.com/contentcycle/contentcycle/pkg/pipeline"
)

// minFileContent is the minimum extracted length for a file to contribute
// to the combined text
const minFileContent = 50

// knownPlatforms is the fixed set of platform IDs accepted in requests
var knownPlatforms = map[string]bool{
	domain.PlatformLinkedIn:   true,
	domain.PlatformTwitter:    true,
	domain.PlatformInstagram:  true,
	domain.PlatformBlog:       true,
	domain.PlatformNewsletter: true,
	domain.PlatformYouTube:    true,
	domain.PlatformCarousel:   true,
}

// processHandler accepts uploaded files and/or a URL, runs the pipeline and
// responds with the consolidated result. Per-file failures are skipped; the
// request fails only when no source yields usable text.
func (s *Server) processHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		renderError(w, r, fmt.Errorf("invalid multipart form: %w", err), http.StatusBadRequest)
		return
	}

	settings := domain.Settings{
		CreationMode: formValueDefault(r, "creationMode", "standard"),
		PostCount:    formValueDefault(r, "postCount", "3"),
		Tone:         formValueDefault(r, "tone", "Professional and engaging"),
	}
	selectedPlatforms := parseSelectedPlatforms(r.FormValue("selectedPlatforms"))

	var sources []extract.Source

	// URL first; a bad URL fails the whole request
	if urlStr := strings.TrimSpace(r.FormValue("url")); urlStr != "" {
		text, err := s.urls.Extract(ctx, urlStr)
		if err != nil {
			log.Printf("[WARN] url extraction failed for %s: %v", urlStr, err)
			renderError(w, r, fmt.Errorf("failed to fetch URL content, please check the URL and try again"), http.StatusBadRequest)
			return
		}
		sources = append(sources, extract.Source{Text: text})
	}

	// files are best-effort; a corrupt file is skipped, not fatal
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["files"] {
			text, err := extractFile(fh)
			if err != nil {
				log.Printf("[WARN] skipping file %s: %v", fh.Filename, err)
				continue
			}
			if len(strings.TrimSpace(text)) < minFileContent {
				log.Printf("[WARN] skipping file %s: not enough content", fh.Filename)
				continue
			}
			sources = append(sources, extract.Source{Name: fh.Filename, Text: text})
		}
	}

	combined := extract.Combine(sources)
	if strings.TrimSpace(combined) == "" {
		renderError(w, r, fmt.Errorf("no valid content provided from files or URL"), http.StatusBadRequest)
		return
	}

	// fail fast on missing provider configuration before any LLM work
	if !s.processor.Configured() {
		renderError(w, r, fmt.Errorf("API configuration error: OPENAI_API_KEY not set"), http.StatusInternalServerError)
		return
	}

	result, err := s.processor.Process(ctx, pipeline.Request{
		CombinedText:      combined,
		SelectedPlatforms: selectedPlatforms,
		Settings:          settings,
	})
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrContentTooShort):
			renderError(w, r, err, http.StatusBadRequest)
		case errors.Is(err, llm.ErrNotConfigured):
			renderError(w, r, fmt.Errorf("API configuration error: OPENAI_API_KEY not set"), http.StatusInternalServerError)
		default:
			log.Printf("[ERROR] processing failed: %v", err)
			renderError(w, r, fmt.Errorf("internal server error during content processing"), http.StatusInternalServerError)
		}
		return
	}

	s.store.Set(result)
	renderJSON(w, r, http.StatusOK, result)
}

// chatRequest is the /chatbot request body. CurrentContent may be a string
// or a structured object.
type chatRequest struct {
	Message             string               `json:"message"`
	CurrentContent      json.RawMessage      `json:"currentContent"`
	Platform            string               `json:"platform"`
	OriginalInput       string               `json:"originalInput"`
	ConversationHistory []domain.ChatMessage `json:"conversationHistory"`
}

// chatResponse is the /chatbot response body
type chatResponse struct {
	Reply           string     `json:"reply"`
	ModifiedContent *string    `json:"modifiedContent"`
	Scores          llm.Scores `json:"scores"`
	Error           string     `json:"error,omitempty"`
}

// chatbotHandler applies one chat-editor turn to the supplied content
func (s *Server) chatbotHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	if req.Message == "" || emptyContent(req.CurrentContent) {
		renderError(w, r, fmt.Errorf("message and current content are required"), http.StatusBadRequest)
		return
	}

	if !s.processor.Configured() {
		renderChatFailure(w, r, "API configuration error: OPENAI_API_KEY not set")
		return
	}

	result, err := s.editor.Edit(ctx, llm.EditRequest{
		Message:        req.Message,
		CurrentContent: llm.ParseContent(req.CurrentContent),
		Platform:       req.Platform,
		OriginalInput:  req.OriginalInput,
		History:        req.ConversationHistory,
	})
	if err != nil {
		log.Printf("[ERROR] chat edit failed: %v", err)
		renderChatFailure(w, r, "failed to process your request")
		return
	}

	renderJSON(w, r, http.StatusOK, chatResponse{
		Reply:           result.Reply,
		ModifiedContent: result.ModifiedContent,
		Scores:          result.Scores,
	})
}

// renderChatFailure responds 500 but keeps the body renderable by the UI:
// a non-empty apology reply and a nil modifiedContent so the caller does not
// overwrite the user's current draft
func renderChatFailure(w http.ResponseWriter, r *http.Request, errMsg string) {
	renderJSON(w, r, http.StatusInternalServerError, chatResponse{
		Reply:           "I apologize, but I encountered an error processing your request. Please try again.",
		ModifiedContent: nil,
		Error:           errMsg,
	})
}

// extractFile opens one multipart file header and extracts its text
func extractFile(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return extract.FromFile(fh.Filename, fh.Size, f)
}

// parseSelectedPlatforms decodes the JSON-encoded platform list, dropping
// unknown IDs. A malformed list degrades to no selection.
func parseSelectedPlatforms(raw string) []string {
	if raw == "" {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("[WARN] invalid selectedPlatforms %q: %v", raw, err)
		return nil
	}

	var platforms []string
	for _, id := range ids {
		if knownPlatforms[id] {
			platforms = append(platforms, id)
		}
	}
	return platforms
}

func emptyContent(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null" || trimmed == `""`
}

func formValueDefault(r *http.Request, key, def string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return def
}
