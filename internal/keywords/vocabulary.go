package keywords

// technicalVocabulary marks a keyword list as technical when any token matches
var technicalVocabulary = map[string]struct{}{
	"api":         {},
	"code":        {},
	"programming": {},
	"software":    {},
	"algorithm":   {},
	"database":    {},
	"framework":   {},
	"javascript":  {},
	"python":      {},
	"react":       {},
	"backend":     {},
	"frontend":    {},
	"server":      {},
	"deployment":  {},
	"function":    {},
	"typescript":  {},
	"docker":      {},
	"kubernetes":  {},
	"sql":         {},
}

// bucket is a context tag with the tokens that select it
type bucket struct {
	Tag   ContextTag
	Words []string
}

// contextBuckets are checked in order; the first bucket sharing a token wins.
var contextBuckets = []bucket{
	{
		Tag: ContextTechnical,
		Words: []string{
			"code", "programming", "software", "api", "algorithm",
			"database", "backend", "server", "developer", "debugging",
		},
	},
	{
		Tag: ContextDesign,
		Words: []string{
			"design", "responsive", "layout", "visual", "interface",
			"style", "color", "typography", "accessibility",
		},
	},
	{
		Tag: ContextBusiness,
		Words: []string{
			"business", "marketing", "sales", "strategy", "market",
			"revenue", "customer", "brand", "startup", "finance",
		},
	},
	{
		Tag: ContextCreative,
		Words: []string{
			"creative", "story", "art", "music", "poem",
			"fiction", "imagination", "painting", "character", "fantasy",
		},
	},
}
