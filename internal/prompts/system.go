package prompts

import (
	"fmt"
	"strings"

	"github.com/sant0-9/promptcraft/internal/catalog"
	"github.com/sant0-9/promptcraft/internal/keywords"
)

var guidelines = []string{
	"Create prompts that are specific, detailed, and actionable",
	"Structure information logically with clear sections",
	"Include relevant constraints and quality criteria",
	"Provide context and background information",
	"Specify desired output format and style",
}

// BuildSystemInstruction returns the role instruction for the completion model
func BuildSystemInstruction(tmpl catalog.TaskTemplate, analysis keywords.Analysis, platform catalog.PlatformProfile) string {
	var b strings.Builder

	b.WriteString(tmpl.RoleDescription)

	b.WriteString("\n\nPROMPT ENGINEERING GUIDELINES:\n")
	for i, g := range guidelines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, g)
	}
	fmt.Fprintf(&b, "%d. Focus on %s\n", len(guidelines)+1, tmpl.FocusThemes)

	b.WriteString("\nKEYWORD ANALYSIS:\n")
	fmt.Fprintf(&b, "- Complexity: %s. %s\n", analysis.Complexity, analysis.Complexity.Directive())
	fmt.Fprintf(&b, "- Detected context: %s\n", analysis.Context)
	fmt.Fprintf(&b, "- Technical level: %s\n", analysis.TechnicalLevel())

	b.WriteString("\nTARGET PLATFORM:\n")
	fmt.Fprintf(&b, "- Platform: %s\n", platform.DisplayName)
	fmt.Fprintf(&b, "- Tone: %s\n", platform.ToneDescriptor)
	fmt.Fprintf(&b, "- Special instructions: %s\n", platform.SpecialInstructions)

	b.WriteString("\nRESPONSE FORMAT:\n")
	b.WriteString("Your response should be a complete, ready-to-use prompt that expands the given keywords into a comprehensive request. Structure it with the following sections, in this order:\n")
	writeSections(&b, tmpl.OutputSections)
	fmt.Fprintf(&b, "Use %q as the bullet marker for every list item.\n", platform.BulletMarker)
	fmt.Fprintf(&b, "Keep the whole prompt focused on %s.", tmpl.FocusThemes)

	return b.String()
}

func writeSections(b *strings.Builder, sections []string) {
	for i, s := range sections {
		fmt.Fprintf(b, "%d. %s\n", i+1, s)
	}
}
