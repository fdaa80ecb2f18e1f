// Package prompts assembles the instructions sent to a completion model,
// formats its reply and builds the offline fallback prompt.
package prompts

import (
	"github.com/sant0-9/promptcraft/internal/catalog"
	"github.com/sant0-9/promptcraft/internal/keywords"
)

// Pair is the system and user instruction for one completion request
type Pair struct {
	System string
	User   string
}

// Build resolves the templates for category and platform and assembles both instructions
func Build(raw string, category catalog.TaskCategory, platform catalog.PlatformID) (Pair, keywords.Analysis) {
	tmpl := catalog.LookupTaskTemplate(category)
	profile := catalog.LookupPlatformProfile(platform)
	analysis := keywords.Analyze(raw)

	return Pair{
		System: BuildSystemInstruction(tmpl, analysis, profile),
		User:   BuildUserInstruction(raw, tmpl.Category, tmpl, analysis, profile),
	}, analysis
}
