package prompts

import (
	"fmt"
	"strings"

	"github.com/sant0-9/promptcraft/internal/catalog"
	"github.com/sant0-9/promptcraft/internal/keywords"
)

// BuildUserInstruction returns the request text asking the model to write the prompt
func BuildUserInstruction(raw string, category catalog.TaskCategory, tmpl catalog.TaskTemplate, analysis keywords.Analysis, platform catalog.PlatformProfile) string {
	subject := analysis.PrimaryPhrase
	if subject == "" {
		subject = strings.TrimSpace(raw)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Transform the keywords %q into a comprehensive, professional prompt for %s on %s.\n\n",
		subject, tmpl.TaskDescription, platform.DisplayName)
	fmt.Fprintf(&b, "KEYWORDS: %s\n", raw)
	fmt.Fprintf(&b, "TASK TYPE: %s\n\n", category)

	requirements := []string{
		fmt.Sprintf("Adapt the structure to the %s complexity of the keywords and their %s context", analysis.Complexity, analysis.Context),
		fmt.Sprintf("Include all sections in this order: %s", strings.Join(tmpl.OutputSections, ", ")),
		fmt.Sprintf("Focus on %s", tmpl.FocusThemes),
		"Include validation steps and quality criteria the result must meet",
		fmt.Sprintf("Make the prompt immediately usable on %s", platform.DisplayName),
		fmt.Sprintf("Format every list item with the %q bullet marker", platform.BulletMarker),
		fmt.Sprintf("Emphasise %s", platform.EmphasisDescriptor),
	}

	b.WriteString("REQUIREMENTS:\n")
	for _, r := range requirements {
		fmt.Fprintf(&b, "%s %s\n", platform.BulletMarker, r)
	}

	b.WriteString("\nCreate a prompt that a professional would use to get optimal results. The response should be the complete prompt only, ready to copy and paste.")

	return b.String()
}
