package oracle

import "fmt"

const DefaultPromptChars = 450

const promptTemplate = "Определи язык этого текста: %s \n Если русский - ru, если итальянский - it"

// BuildPrompt embeds at most limit characters of text into the instruction.
func BuildPrompt(text string, limit int) string {
	if limit <= 0 {
		limit = DefaultPromptChars
	}
	return fmt.Sprintf(promptTemplate, truncateRunes(text, limit))
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
