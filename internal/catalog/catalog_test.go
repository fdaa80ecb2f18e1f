package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTaskTemplate_AllCategoriesPopulated(t *testing.T) {
	categories := TaskCategories()
	require.Len(t, categories, 7)

	for _, c := range categories {
		t.Run(string(c), func(t *testing.T) {
			tmpl := LookupTaskTemplate(c)
			assert.Equal(t, c, tmpl.Category)
			assert.NotEmpty(t, tmpl.DisplayName)
			assert.NotEmpty(t, tmpl.Emoji)
			assert.NotEmpty(t, tmpl.RoleDescription)
			assert.Len(t, tmpl.OutputSections, 5)
			assert.NotEmpty(t, tmpl.FocusThemes)
			assert.NotEmpty(t, tmpl.TaskDescription)
			assert.NotEmpty(t, tmpl.Description)
			assert.NotEmpty(t, tmpl.Placeholder)
		})
	}
}

func TestLookupTaskTemplate_UnknownFallsBackToGeneral(t *testing.T) {
	general := LookupTaskTemplate(TaskGeneral)

	assert.Equal(t, general, LookupTaskTemplate(TaskCategory("poetry")))
	assert.Equal(t, general, LookupTaskTemplate(TaskCategory("")))
	assert.Equal(t, TaskGeneral, ParseTaskCategory("poetry"))
	assert.Equal(t, TaskGeneral, ParseTaskCategory(""))
}

func TestLookupTaskTemplate_ReturnsIndependentCopies(t *testing.T) {
	a := LookupTaskTemplate(TaskWriting)
	a.OutputSections[0] = "changed"

	b := LookupTaskTemplate(TaskWriting)
	assert.Equal(t, "Content Objective", b.OutputSections[0])
}

func TestParseTaskCategory(t *testing.T) {
	tests := []struct {
		in   string
		want TaskCategory
	}{
		{"code-generation", TaskCodeGeneration},
		{"  Image-Generation ", TaskImageGeneration},
		{"WEBSITE", TaskWebsite},
		{"analysis", TaskAnalysis},
		{"writing", TaskWriting},
		{"creative", TaskCreative},
		{"general", TaskGeneral},
		{"code", TaskGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTaskCategory(tt.in))
		})
	}
}

func TestLookupPlatformProfile_AllPlatformsPopulated(t *testing.T) {
	platforms := Platforms()
	require.Len(t, platforms, 6)

	for _, p := range platforms {
		t.Run(string(p), func(t *testing.T) {
			profile := LookupPlatformProfile(p)
			assert.Equal(t, p, profile.ID)
			assert.NotEmpty(t, profile.DisplayName)
			assert.NotEmpty(t, profile.BulletMarker)
			assert.NotEmpty(t, profile.ToneDescriptor)
			assert.NotEmpty(t, profile.SpecialInstructions)
			assert.NotEmpty(t, profile.EmphasisDescriptor)
			assert.True(t, p.Valid())
		})
	}
}

func TestLookupPlatformProfile_UnknownFallsBackToGeneral(t *testing.T) {
	general := LookupPlatformProfile(PlatformGeneral)

	assert.Equal(t, general, LookupPlatformProfile(PlatformID("bing")))
	assert.Equal(t, general, LookupPlatformProfile(PlatformID("")))
	assert.False(t, PlatformID("bing").Valid())
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want PlatformID
	}{
		{"chatgpt", PlatformChatGPT},
		{"ChatGPT", PlatformChatGPT},
		{"chat.openai.com", PlatformChatGPT},
		{"https://chatgpt.com/c/123", PlatformChatGPT},
		{"claude", PlatformClaude},
		{"claude.ai", PlatformClaude},
		{"https://claude.ai/new", PlatformClaude},
		{"www.perplexity.ai", PlatformPerplexity},
		{"perplexity", PlatformPerplexity},
		{"chat.deepseek.com", PlatformDeepSeek},
		{"deepseek", PlatformDeepSeek},
		{"gemini.google.com", PlatformGemini},
		{"bard.google.com:443", PlatformGemini},
		{"gemini", PlatformGemini},
		{"general", PlatformGeneral},
		{"", PlatformGeneral},
		{"example.com", PlatformGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePlatform(tt.in))
		})
	}
}

func TestProfilesHostsResolveBackToProfile(t *testing.T) {
	for _, p := range Platforms() {
		for _, host := range LookupPlatformProfile(p).Hosts {
			assert.Equal(t, p, ParsePlatform(host), host)
		}
	}
}
