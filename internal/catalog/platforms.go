package catalog

import (
	"slices"
	"strings"
)

// PlatformID identifies the AI chat destination a prompt is written for
type PlatformID string

const (
	PlatformChatGPT    PlatformID = "chatgpt"
	PlatformClaude     PlatformID = "claude"
	PlatformPerplexity PlatformID = "perplexity"
	PlatformDeepSeek   PlatformID = "deepseek"
	PlatformGemini     PlatformID = "gemini"
	PlatformGeneral    PlatformID = "general"
)

// PlatformProfile holds the stylistic conventions of one chat platform
type PlatformProfile struct {
	ID                  PlatformID
	DisplayName         string
	BulletMarker        string
	ToneDescriptor      string
	SpecialInstructions string
	EmphasisDescriptor  string
	Hosts               []string
}

// Platforms returns every platform in display order
func Platforms() []PlatformID {
	return []PlatformID{
		PlatformGeneral,
		PlatformChatGPT,
		PlatformClaude,
		PlatformPerplexity,
		PlatformDeepSeek,
		PlatformGemini,
	}
}

// aliases maps vendor names and host names onto platform ids.
// Hosts are matched after the scheme and a leading "www." are stripped.
var aliases = map[string]PlatformID{
	"openai":            PlatformChatGPT,
	"chat.openai.com":   PlatformChatGPT,
	"chatgpt.com":       PlatformChatGPT,
	"anthropic":         PlatformClaude,
	"claude.ai":         PlatformClaude,
	"perplexity.ai":     PlatformPerplexity,
	"chat.deepseek.com": PlatformDeepSeek,
	"deepseek.com":      PlatformDeepSeek,
	"google":            PlatformGemini,
	"bard":              PlatformGemini,
	"gemini.google.com": PlatformGemini,
	"bard.google.com":   PlatformGemini,
}

// ParsePlatform resolves a platform id, vendor name, host name or URL.
// Anything unrecognised resolves to general.
func ParsePlatform(s string) PlatformID {
	key := normalizeHost(s)
	switch id := PlatformID(key); id {
	case PlatformChatGPT, PlatformClaude, PlatformPerplexity, PlatformDeepSeek,
		PlatformGemini, PlatformGeneral:
		return id
	}
	if id, ok := aliases[key]; ok {
		return id
	}
	return PlatformGeneral
}

func normalizeHost(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndex(s, ":"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimPrefix(s, "www.")
}

// Valid reports whether p is one of the known platform ids
func (p PlatformID) Valid() bool {
	return slices.Contains(Platforms(), p)
}

func (p PlatformID) String() string {
	return string(p)
}

// LookupPlatformProfile returns the profile for p. Unknown ids get the general profile.
func LookupPlatformProfile(p PlatformID) PlatformProfile {
	profile := platformProfile(p)
	profile.Hosts = slices.Clone(profile.Hosts)
	return profile
}

func platformProfile(p PlatformID) PlatformProfile {
	switch p {
	case PlatformChatGPT:
		return chatGPTProfile
	case PlatformClaude:
		return claudeProfile
	case PlatformPerplexity:
		return perplexityProfile
	case PlatformDeepSeek:
		return deepSeekProfile
	case PlatformGemini:
		return geminiProfile
	case PlatformGeneral:
		return generalProfile
	default:
		return generalProfile
	}
}

var chatGPTProfile = PlatformProfile{
	ID:                  PlatformChatGPT,
	DisplayName:         "ChatGPT",
	BulletMarker:        "•",
	ToneDescriptor:      "conversational yet structured",
	SpecialInstructions: "Open with an explicit role, then give numbered steps and a clearly stated output format; ChatGPT follows explicit formatting instructions closely.",
	EmphasisDescriptor:  "step-by-step clarity and explicit output formatting",
	Hosts:               []string{"chat.openai.com", "chatgpt.com"},
}

var claudeProfile = PlatformProfile{
	ID:                  PlatformClaude,
	DisplayName:         "Claude",
	BulletMarker:        "-",
	ToneDescriptor:      "thoughtful, detailed and precise",
	SpecialInstructions: "Wrap distinct inputs in XML-style tags such as <context> and <requirements>, and state every constraint explicitly; Claude makes full use of long, well-organised context.",
	EmphasisDescriptor:  "nuanced reasoning and explicit constraints",
	Hosts:               []string{"claude.ai"},
}

var perplexityProfile = PlatformProfile{
	ID:                  PlatformPerplexity,
	DisplayName:         "Perplexity",
	BulletMarker:        "▸",
	ToneDescriptor:      "research-oriented and concise",
	SpecialInstructions: "Ask for cited sources, publication dates and recent information; Perplexity grounds its answers in live web search.",
	EmphasisDescriptor:  "source-backed accuracy and recency",
	Hosts:               []string{"perplexity.ai"},
}

var deepSeekProfile = PlatformProfile{
	ID:                  PlatformDeepSeek,
	DisplayName:         "DeepSeek",
	BulletMarker:        "→",
	ToneDescriptor:      "technical and precise",
	SpecialInstructions: "Request explicit reasoning steps and, where relevant, complete code with comments; DeepSeek performs best on technically deep, unambiguous requests.",
	EmphasisDescriptor:  "logical rigor and technical depth",
	Hosts:               []string{"chat.deepseek.com"},
}

var geminiProfile = PlatformProfile{
	ID:                  PlatformGemini,
	DisplayName:         "Gemini",
	BulletMarker:        "★",
	ToneDescriptor:      "versatile and well-organised",
	SpecialInstructions: "Mention any images, tables or documents you will attach and ask for headed sections; Gemini handles multimodal context and long structured answers well.",
	EmphasisDescriptor:  "comprehensive coverage and multimodal context",
	Hosts:               []string{"gemini.google.com", "bard.google.com"},
}

var generalProfile = PlatformProfile{
	ID:                  PlatformGeneral,
	DisplayName:         "Any AI Assistant",
	BulletMarker:        "•",
	ToneDescriptor:      "clear and professional",
	SpecialInstructions: "Keep every instruction explicit and self-contained so that any AI assistant can follow it without extra context.",
	EmphasisDescriptor:  "clarity and completeness",
}
