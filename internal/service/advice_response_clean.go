package service

import (
	"regexp"
	"strings"
)

var (
	reFenceStart = regexp.MustCompile("(?is)^\\s*```(?:markdown|md|text)?\\s*")
	reFenceEnd   = regexp.MustCompile("(?is)\\s*```\\s*$")
	// Modelos locales de razonamiento (via Ollama) anteponen <think>...</think>.
	reThinkBlock = regexp.MustCompile("(?is)<think>.*?</think>")
)

// cleanAdviceText quita BOM, bloques <think> y fences ``` que envuelven toda la respuesta.
func cleanAdviceText(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\uFEFF")
	s = reThinkBlock.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		s = reFenceStart.ReplaceAllString(s, "")
		s = reFenceEnd.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}
