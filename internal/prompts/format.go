package prompts

import (
	"fmt"
	"strings"

	"github.com/sant0-9/promptcraft/internal/catalog"
)

// Generator names this tool in prompt footers
const Generator = "PromptCraft"

// Banner is the first line of every generated prompt
func Banner(tmpl catalog.TaskTemplate, platform catalog.PlatformProfile) string {
	return fmt.Sprintf("%s PROFESSIONAL %s PROMPT FOR %s",
		tmpl.Emoji, strings.ToUpper(tmpl.DisplayName), strings.ToUpper(platform.DisplayName))
}

// Format wraps a model completion with the banner and footer. raw is kept verbatim.
// A tmpl that does not belong to category is replaced by the category's template.
func Format(raw string, category catalog.TaskCategory, tmpl catalog.TaskTemplate, platform catalog.PlatformProfile) string {
	if tmpl.Category != category {
		tmpl = catalog.LookupTaskTemplate(category)
	}

	var b strings.Builder
	b.WriteString(Banner(tmpl, platform))
	b.WriteString("\n\n")
	b.WriteString(raw)
	b.WriteString("\n\n---\n")
	fmt.Fprintf(&b, "📝 Generated by %s\n", Generator)
	fmt.Fprintf(&b, "🎯 Optimized for: %s\n", platform.DisplayName)
	fmt.Fprintf(&b, "🔎 Focus: %s", tmpl.FocusThemes)
	return b.String()
}
