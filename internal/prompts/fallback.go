package prompts

import (
	"fmt"
	"strings"

	"github.com/sant0-9/promptcraft/internal/catalog"
	"github.com/sant0-9/promptcraft/internal/keywords"
)

// field is one labelled line of a fallback skeleton
type field struct {
	Label    string
	Guidance string
}

// skeleton is the fixed requirement outline for a category
type skeleton struct {
	Heading string
	Fields  []field
}

var checklist = []string{
	"Professional-grade output",
	"Attention to detail and accuracy",
	"Industry best practices",
	"User-focused approach",
	"Scalable and maintainable solution",
}

// BuildFallback builds a complete prompt from local templates without a model.
// It is used when the completion service is unreachable and in offline mode.
func BuildFallback(raw string, category catalog.TaskCategory, platform catalog.PlatformID) string {
	tmpl := catalog.LookupTaskTemplate(category)
	profile := catalog.LookupPlatformProfile(platform)
	analysis := keywords.Analyze(raw)
	sk := skeletonFor(tmpl.Category)
	bullet := profile.BulletMarker

	var b strings.Builder

	b.WriteString(Banner(tmpl, profile))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "**Objective:** Create %s based on: %s\n\n", tmpl.Description, raw)

	fmt.Fprintf(&b, "**%s:**\n", sk.Heading)
	for _, f := range sk.Fields {
		fmt.Fprintf(&b, "%s %s: [%s]\n", bullet, f.Label, f.Guidance)
	}

	fmt.Fprintf(&b, "\n**Platform Optimization (%s):**\n", profile.DisplayName)
	fmt.Fprintf(&b, "%s Tone: %s\n", bullet, profile.ToneDescriptor)
	fmt.Fprintf(&b, "%s %s\n", bullet, profile.SpecialInstructions)
	fmt.Fprintf(&b, "%s Format list items with the %q bullet marker\n", bullet, bullet)
	fmt.Fprintf(&b, "%s Emphasis: %s\n", bullet, profile.EmphasisDescriptor)
	fmt.Fprintf(&b, "%s Detail level: %s\n", bullet, analysis.Complexity.Directive())

	b.WriteString("\n**Quality Checklist:**\n")
	for _, c := range checklist {
		fmt.Fprintf(&b, "✅ %s\n", c)
	}

	fmt.Fprintf(&b, "\n**Keywords Focus:** %s\n", raw)

	b.WriteString("\n---\n")
	fmt.Fprintf(&b, "🤖 Generated by %s (Offline Template)\n", Generator)
	b.WriteString("💡 For enhanced prompts, check your connection and try again")

	return b.String()
}

func skeletonFor(c catalog.TaskCategory) skeleton {
	switch c {
	case catalog.TaskImageGeneration:
		return imageSkeleton
	case catalog.TaskCodeGeneration:
		return codeSkeleton
	case catalog.TaskWriting:
		return writingSkeleton
	case catalog.TaskAnalysis:
		return analysisSkeleton
	case catalog.TaskCreative:
		return creativeSkeleton
	case catalog.TaskWebsite:
		return websiteSkeleton
	case catalog.TaskGeneral:
		return generalSkeleton
	default:
		return generalSkeleton
	}
}

var imageSkeleton = skeleton{
	Heading: "Visual Requirements",
	Fields: []field{
		{"Style", "Photorealistic/Artistic/Illustration"},
		{"Composition", "Portrait/Landscape/Square format"},
		{"Color Scheme", "Vibrant/Monochrome/Pastel/Bold"},
		{"Lighting", "Natural/Studio/Dramatic/Soft"},
		{"Mood", "Professional/Creative/Energetic/Calm"},
	},
}

var codeSkeleton = skeleton{
	Heading: "Technical Specifications",
	Fields: []field{
		{"Language Selection", "Most appropriate language for the task"},
		{"Framework Choice", "Modern, well-supported frameworks and libraries"},
		{"Architecture Design", "Clean, modular structure with clear error handling"},
		{"Testing Strategy", "Unit tests and validation for core behaviour"},
		{"Documentation", "Comments, README and usage examples"},
	},
}

var writingSkeleton = skeleton{
	Heading: "Content Strategy",
	Fields: []field{
		{"Audience", "Primary target demographic"},
		{"Purpose", "Inform/Persuade/Entertain/Educate"},
		{"Tone", "Professional/Conversational/Academic/Creative"},
		{"Structure", "Article/Blog/Report/Copy with logical sections"},
		{"Call to Action", "Clear next steps for readers"},
	},
}

var analysisSkeleton = skeleton{
	Heading: "Analysis Framework",
	Fields: []field{
		{"Methodology", "Quantitative/Qualitative/Mixed"},
		{"Data Sources", "Primary and secondary data"},
		{"Analytical Tools", "Appropriate software and techniques"},
		{"Validation", "Cross-reference and verify findings"},
		{"Deliverables", "Summary, visualizations and recommendations"},
	},
}

var creativeSkeleton = skeleton{
	Heading: "Creative Direction",
	Fields: []field{
		{"Concept", "Core creative idea"},
		{"Theme", "Underlying message or emotion"},
		{"Style", "Visual or narrative approach"},
		{"Innovation", "Unique differentiators"},
	},
}

var websiteSkeleton = skeleton{
	Heading: "Website Requirements",
	Fields: []field{
		{"Purpose", "Primary goal and target audience"},
		{"Technical Stack", "Frontend, backend and hosting choices"},
		{"Design", "Modern, responsive, mobile-first layout"},
		{"Core Features", "Key pages and user interactions"},
		{"Performance & SEO", "Loading speed, accessibility and search visibility"},
	},
}

var generalSkeleton = skeleton{
	Heading: "Task Framework",
	Fields: []field{
		{"Objective", "Clear goal and scope"},
		{"Approach", "Step-by-step methodology"},
		{"Deliverables", "Expected outputs and format"},
	},
}
