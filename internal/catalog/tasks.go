package catalog

import (
	"slices"
	"strings"
)

// TaskCategory is one of the fixed domains a prompt is generated for
type TaskCategory string

const (
	TaskImageGeneration TaskCategory = "image-generation"
	TaskCodeGeneration  TaskCategory = "code-generation"
	TaskWriting         TaskCategory = "writing"
	TaskAnalysis        TaskCategory = "analysis"
	TaskCreative        TaskCategory = "creative"
	TaskWebsite         TaskCategory = "website"
	TaskGeneral         TaskCategory = "general"
)

// TaskTemplate describes how prompts for one task category are shaped
type TaskTemplate struct {
	Category        TaskCategory
	DisplayName     string
	Emoji           string
	RoleDescription string
	OutputSections  []string
	FocusThemes     string

	// TaskDescription completes "a comprehensive, professional prompt for ..."
	TaskDescription string
	// Description completes "Create ... based on: <keywords>" in offline templates
	Description string
	// Placeholder is an example keyword list shown to users
	Placeholder string
}

// TaskCategories returns every category in display order
func TaskCategories() []TaskCategory {
	return []TaskCategory{
		TaskGeneral,
		TaskImageGeneration,
		TaskCodeGeneration,
		TaskWriting,
		TaskAnalysis,
		TaskCreative,
		TaskWebsite,
	}
}

// ParseTaskCategory resolves a free-form key, defaulting to general
func ParseTaskCategory(s string) TaskCategory {
	c := TaskCategory(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case TaskImageGeneration, TaskCodeGeneration, TaskWriting, TaskAnalysis,
		TaskCreative, TaskWebsite, TaskGeneral:
		return c
	default:
		return TaskGeneral
	}
}

// Valid reports whether c is one of the known categories
func (c TaskCategory) Valid() bool {
	return ParseTaskCategory(string(c)) == c
}

func (c TaskCategory) String() string {
	return string(c)
}

// LookupTaskTemplate returns the template for c. Unknown categories get the general template.
// The returned value owns its section slice.
func LookupTaskTemplate(c TaskCategory) TaskTemplate {
	t := taskTemplate(c)
	t.OutputSections = slices.Clone(t.OutputSections)
	return t
}

func taskTemplate(c TaskCategory) TaskTemplate {
	switch c {
	case TaskImageGeneration:
		return imageGenerationTemplate
	case TaskCodeGeneration:
		return codeGenerationTemplate
	case TaskWriting:
		return writingTemplate
	case TaskAnalysis:
		return analysisTemplate
	case TaskCreative:
		return creativeTemplate
	case TaskWebsite:
		return websiteTemplate
	case TaskGeneral:
		return generalTemplate
	default:
		return generalTemplate
	}
}

var imageGenerationTemplate = TaskTemplate{
	Category:        TaskImageGeneration,
	DisplayName:     "Image Generation",
	Emoji:           "🎨",
	RoleDescription: "You are a master AI art director and prompt engineer specializing in creating detailed, high-quality prompts for image generation models like DALL-E, Midjourney, Stable Diffusion, and others. Your expertise lies in translating simple concepts into comprehensive visual descriptions that produce stunning, professional-quality images.",
	OutputSections: []string{
		"Visual Composition",
		"Style & Aesthetics",
		"Technical Specifications",
		"Mood & Atmosphere",
		"Additional Details",
	},
	FocusThemes:     "artistic vision, technical precision, and commercial viability",
	TaskDescription: "visual art creation",
	Description:     "stunning visual content",
	Placeholder:     "e.g., cyberpunk cityscape, neon lights, rain",
}

var codeGenerationTemplate = TaskTemplate{
	Category:        TaskCodeGeneration,
	DisplayName:     "Code Generation",
	Emoji:           "💻",
	RoleDescription: "You are a senior software architect and coding expert with extensive experience across multiple programming languages, frameworks, and best practices. You excel at creating comprehensive development prompts that result in clean, efficient, maintainable, and well-documented code.",
	OutputSections: []string{
		"Project Overview",
		"Technical Requirements",
		"Architecture & Design",
		"Implementation Guidelines",
		"Testing & Documentation",
	},
	FocusThemes:     "code quality, scalability, and industry best practices",
	TaskDescription: "software development",
	Description:     "a robust software solution",
	Placeholder:     "e.g., React components, responsive design, hooks",
}

var writingTemplate = TaskTemplate{
	Category:        TaskWriting,
	DisplayName:     "Writing",
	Emoji:           "✍️",
	RoleDescription: "You are a professional copywriter and content strategist with expertise in various writing styles, from technical documentation to creative content, marketing copy, and academic writing. You create prompts that ensure engaging, well-structured, and purposeful content.",
	OutputSections: []string{
		"Content Objective",
		"Target Audience",
		"Structure & Format",
		"Tone & Style Guidelines",
		"Key Messages & CTAs",
	},
	FocusThemes:     "audience engagement, clarity, and desired outcomes",
	TaskDescription: "content creation",
	Description:     "engaging written content",
	Placeholder:     "e.g., technical blog post, beginner audience, tutorial",
}

var analysisTemplate = TaskTemplate{
	Category:        TaskAnalysis,
	DisplayName:     "Analysis",
	Emoji:           "📊",
	RoleDescription: "You are a data scientist and research analyst with expertise in statistical analysis, research methodology, and data interpretation. You create comprehensive analytical prompts that ensure thorough, unbiased, and actionable insights.",
	OutputSections: []string{
		"Analysis Objectives",
		"Methodology & Approach",
		"Data Requirements",
		"Expected Deliverables",
		"Validation & Quality Assurance",
	},
	FocusThemes:     "accuracy, methodology, and actionable insights",
	TaskDescription: "data analysis and research",
	Description:     "comprehensive analytical insights",
	Placeholder:     "e.g., market research, consumer behavior, trends",
}

var creativeTemplate = TaskTemplate{
	Category:        TaskCreative,
	DisplayName:     "Creative",
	Emoji:           "🎭",
	RoleDescription: "You are a creative director and innovation strategist with expertise in ideation, storytelling, and creative problem-solving. You excel at crafting prompts that unlock creativity while maintaining focus and commercial viability.",
	OutputSections: []string{
		"Creative Brief",
		"Inspiration & References",
		"Creative Constraints",
		"Target Outcomes",
		"Evaluation Criteria",
	},
	FocusThemes:     "originality, emotional impact, and brand alignment",
	TaskDescription: "creative ideation and brainstorming",
	Description:     "an innovative creative solution",
	Placeholder:     "e.g., brand story, emotional connection, innovation",
}

var websiteTemplate = TaskTemplate{
	Category:        TaskWebsite,
	DisplayName:     "Website",
	Emoji:           "🌐",
	RoleDescription: "You are a full-stack web developer and UX/UI designer with expertise in modern web technologies, user experience design, and digital strategy. You create comprehensive web development prompts that result in functional, beautiful, and user-friendly websites.",
	OutputSections: []string{
		"Project Scope",
		"Technical Stack",
		"Design Requirements",
		"Functionality Specifications",
		"Performance & SEO",
	},
	FocusThemes:     "user experience, technical excellence, and business objectives",
	TaskDescription: "web development",
	Description:     "a modern, functional website",
	Placeholder:     "e.g., e-commerce platform, modern UI, mobile-first",
}

var generalTemplate = TaskTemplate{
	Category:        TaskGeneral,
	DisplayName:     "General",
	Emoji:           "⚡",
	RoleDescription: "You are a versatile AI assistant and prompt engineering expert capable of adapting to any domain or task. You excel at creating comprehensive, well-structured prompts that ensure clarity, completeness, and optimal results regardless of the subject matter.",
	OutputSections: []string{
		"Task Definition",
		"Context & Requirements",
		"Approach & Methodology",
		"Expected Outputs",
		"Success Criteria",
	},
	FocusThemes:     "clarity, completeness, and adaptability",
	TaskDescription: "general task completion",
	Description:     "a comprehensive solution",
	Placeholder:     "e.g., project management, automation, efficiency",
}
