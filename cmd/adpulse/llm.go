package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/dlautopecas/adpulse/internal/llm"
)

// createLLMClient creates an LLM client based on configuration. Credentials
// are resolved here, at construction, and handed to the client explicitly.
// Callers own the client and must Close it.
func createLLMClient() (llm.Client, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "gemini" // default provider
	}

	config := llm.Config{
		Provider:  provider,
		Model:     viper.GetString("llm.model"),
		MaxTokens: viper.GetInt("llm.max_tokens"),
		RateLimit: viper.GetInt("llm.rate_limit"),
		Timeout:   viper.GetDuration("llm.timeout"),
	}

	if config.RateLimit == 0 {
		config.RateLimit = 60 // requests per minute
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	switch provider {
	case "gemini":
		apiKey := viper.GetString("llm.gemini_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("gemini API key not found in config or GEMINI_API_KEY environment variable")
		}
		config.APIKey = apiKey

	case "openai":
		apiKey := viper.GetString("llm.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found in config or OPENAI_API_KEY environment variable")
		}
		config.APIKey = apiKey

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}

	client, err := llm.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return client, nil
}
