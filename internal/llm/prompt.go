package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a professional text summarization assistant."

const promptTemplate = `You are a professional text summarization assistant. Please summarize the following text with the following requirements:
1. Keep it concise and clear
2. Highlight key information
3. Use bullet points
4. Keep the summary under 300 words

Text content:
%s`

// BuildPrompt returns the user prompt for text.
func BuildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

// Truncate cuts text to at most maxChars runes. maxChars <= 0 disables the limit.
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	if len(text) <= maxChars {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars])
}

func cleanSummary(content string) string {
	return strings.TrimSpace(content)
}
