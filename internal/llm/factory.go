package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates an LLM provider from configuration. An empty provider
// name means the analyst summary is disabled.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}
