package deepseek

import "lang-detect/api/internal/oracle/gpt"

const BaseURL = "https://api.deepseek.com"

// New returns a DeepSeek engine; DeepSeek serves the OpenAI chat protocol.
func New(key, model string) *gpt.Engine {
	if model == "" {
		model = "deepseek-chat"
	}
	return gpt.NewCompatible("deepseek", BaseURL, key, model)
}
