package llm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// LLM responses don't always honor the requested shape: a field asked for as
// a string may come back as an array or an arbitrary object. Content models
// the three shapes seen in practice, and Normalize maps any of them to
// canonical text so call sites don't probe types ad hoc.

// Shape tags the dynamic form of a content value
type Shape int

// content shapes
const (
	ShapeText Shape = iota
	ShapeSequence
	ShapeStructured
)

// Content is a tagged union of the shapes an LLM content value can take
type Content struct {
	Shape Shape
	Text  string
	Seq   []string
	Obj   map[string]json.RawMessage
}

// textBearingFields probed on structured content, in priority order
var textBearingFields = []string{
	"content", "text", "message", "tweet", "caption",
	"linkedin_post", "instagram_post", "short_blog", "email", "youtube_script", "carousel",
}

// ParseContent classifies a raw JSON value into one of the three shapes.
// Anything unparsable is treated as literal text.
func ParseContent(raw json.RawMessage) Content {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return Content{Shape: ShapeText, Text: ""}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Content{Shape: ShapeText, Text: s}
	}

	var seq []string
	if err := json.Unmarshal(raw, &seq); err == nil {
		return Content{Shape: ShapeSequence, Seq: seq}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		return Content{Shape: ShapeStructured, Obj: obj}
	}

	return Content{Shape: ShapeText, Text: trimmed}
}

// Normalize maps any content shape to canonical text
func (c Content) Normalize() string {
	switch c.Shape {
	case ShapeText:
		return c.Text
	case ShapeSequence:
		return strings.Join(c.Seq, "\n\n")
	case ShapeStructured:
		return normalizeObject(c.Obj)
	}
	return ""
}

// normalizeObject renders a structured value as text: slide mappings become
// uppercase-headed sections, otherwise common text fields are probed, and as
// a last resort the object is pretty-printed
func normalizeObject(obj map[string]json.RawMessage) string {
	keys := make([]string, 0, len(obj))
	hasSlides := false
	for k := range obj {
		keys = append(keys, k)
		if strings.Contains(strings.ToLower(k), "slide") {
			hasSlides = true
		}
	}
	sort.Strings(keys)

	if hasSlides {
		sections := make([]string, 0, len(keys))
		for _, k := range keys {
			sections = append(sections, renderSlide(k, obj[k]))
		}
		return strings.Join(sections, "\n\n---\n\n")
	}

	for _, field := range textBearingFields {
		if raw, ok := obj[field]; ok {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && s != "" {
				return s
			}
		}
	}

	return prettyJSON(obj)
}

// renderSlide formats one slide entry as an uppercase header followed by its
// fields, or "key: value" for scalar slides
func renderSlide(key string, raw json.RawMessage) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		lines := make([]string, 0, len(names))
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("%s: %s", name, scalarText(fields[name])))
		}
		return strings.ToUpper(key) + ":\n" + strings.Join(lines, "\n")
	}

	return fmt.Sprintf("%s: %s", key, scalarText(raw))
}

// scalarText renders a raw JSON value without quotes for strings
func scalarText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

func prettyJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// threadFromContent coerces an x_thread value into a string slice. Threads
// sometimes arrive as a JSON-encoded array masquerading as a string; failing
// that, the whole string becomes a single-element thread.
func threadFromContent(c Content) []string {
	switch c.Shape {
	case ShapeSequence:
		return c.Seq
	case ShapeText:
		trimmed := strings.TrimSpace(c.Text)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			var parsed []string
			if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
				return parsed
			}
		}
		return []string{c.Text}
	default:
		return []string{c.Normalize()}
	}
}
