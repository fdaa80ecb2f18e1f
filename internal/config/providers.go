package config

type ProviderInfo struct {
	ID             string
	Name           string
	Description    string
	NeedsAPIKey    bool
	NeedsBaseURL   bool
	SignupURL      string
	Models         []string
	DefaultModel   string
	DefaultBaseURL string
}

var Providers = []ProviderInfo{
	{
		ID:             "novita",
		Name:           "Novita AI",
		Description:    "Qwen3 235B, the default",
		NeedsAPIKey:    true,
		SignupURL:      "https://novita.ai/settings/key-management",
		Models:         []string{"qwen/qwen3-235b-a22b-instruct-2507", "deepseek/deepseek-v3-0324", "meta-llama/llama-3.3-70b-instruct"},
		DefaultModel:   "qwen/qwen3-235b-a22b-instruct-2507",
		DefaultBaseURL: "https://api.novita.ai/v3/openai",
	},
	{
		ID:           "openai",
		Name:         "OpenAI",
		Description:  "GPT-4o, most capable",
		NeedsAPIKey:  true,
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4o", "gpt-4o-mini", "gpt-4.1-mini"},
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:           "anthropic",
		Name:         "Anthropic",
		Description:  "Claude, great writing",
		NeedsAPIKey:  true,
		SignupURL:    "https://console.anthropic.com/",
		Models:       []string{"claude-sonnet-4-5", "claude-haiku-4-5", "claude-opus-4-1"},
		DefaultModel: "claude-sonnet-4-5",
	},
	{
		ID:           "gemini",
		Name:         "Google Gemini",
		Description:  "Fast, generous free tier",
		NeedsAPIKey:  true,
		SignupURL:    "https://aistudio.google.com/apikey",
		Models:       []string{"gemini-2.5-flash", "gemini-2.5-pro"},
		DefaultModel: "gemini-2.5-flash",
	},
	{
		ID:             "ollama",
		Name:           "Ollama",
		Description:    "Local, free, private",
		NeedsAPIKey:    false,
		Models:         []string{"llama3.1:8b", "qwen2.5:7b", "mistral:7b"},
		DefaultModel:   "llama3.1:8b",
		DefaultBaseURL: "http://localhost:11434",
	},
	{
		ID:           "custom",
		Name:         "Custom",
		Description:  "Any OpenAI-compatible endpoint",
		NeedsAPIKey:  false,
		NeedsBaseURL: true,
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
