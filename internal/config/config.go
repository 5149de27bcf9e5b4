package config

import "os"

// Config is read once from the environment in main and passed down; nothing
// mutates it afterwards.
type Config struct {
	Port        string
	FrontendURL string

	// LLMProvider is "openai" (any OpenAI-compatible endpoint) or "anthropic".
	LLMProvider     string
	LLMModel        string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AnthropicAPIKey string

	SerperAPIKey string
	PromptsDir   string
}

const (
	defaultPort       = "8080"
	defaultProvider   = "openai"
	defaultBaseURL    = "https://api.deepseek.com"
	defaultPromptsDir = "prompts"
)

func Load() Config {
	return Config{
		Port:            getenv("PORT", defaultPort),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		LLMProvider:     getenv("LLM_PROVIDER", defaultProvider),
		LLMModel:        os.Getenv("LLM_MODEL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   getenv("OPENAI_BASE_URL", defaultBaseURL),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		SerperAPIKey:    os.Getenv("SERPER_API_KEY"),
		PromptsDir:      getenv("PROMPTS_DIR", defaultPromptsDir),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
