// Package keywords turns a raw keyword list into a small structured summary
// used to tailor generated prompts.
package keywords

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tier is a coarse size classification of a keyword list
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// ContextTag is the topical area detected in a keyword list
type ContextTag string

const (
	ContextTechnical ContextTag = "technical"
	ContextDesign    ContextTag = "design"
	ContextBusiness  ContextTag = "business"
	ContextCreative  ContextTag = "creative"
	ContextGeneral   ContextTag = "general"
)

// minLength is the shortest term or token that survives filtering
const minLength = 3

// primaryTokens is how many tokens make up the primary phrase
const primaryTokens = 4

// Analysis summarises a keyword list
type Analysis struct {
	// Raw is the input exactly as received
	Raw string `json:"raw"`

	// Terms are the comma-separated phrases, lower-cased and filtered
	Terms []string `json:"terms"`

	// Tokens are the individual words, lower-cased and filtered, in input order
	Tokens []string `json:"tokens"`

	TokenCount    int        `json:"token_count"`
	Complexity    Tier       `json:"complexity"`
	Technical     bool       `json:"technical"`
	Context       ContextTag `json:"context"`
	PrimaryPhrase string     `json:"primary_phrase"`
}

// Analyze builds the Analysis for raw. It never fails; empty input
// yields a zero count, low complexity and the general context.
func Analyze(raw string) Analysis {
	terms := splitTerms(raw)
	tokens := splitTokens(raw)

	return Analysis{
		Raw:           raw,
		Terms:         terms,
		Tokens:        tokens,
		TokenCount:    len(terms),
		Complexity:    tierFor(len(terms)),
		Technical:     isTechnical(tokens),
		Context:       detectContext(tokens),
		PrimaryPhrase: strings.Join(tokens[:min(primaryTokens, len(tokens))], ", "),
	}
}

// TechnicalLevel describes the technical depth for prompt text
func (a Analysis) TechnicalLevel() string {
	if a.Technical {
		return "advanced technical"
	}
	return "general, non-technical"
}

func splitTerms(raw string) []string {
	terms := []string{}
	for _, part := range strings.Split(raw, ",") {
		term := strings.ToLower(strings.TrimSpace(part))
		if utf8.RuneCountInString(term) >= minLength {
			terms = append(terms, term)
		}
	}
	return terms
}

func splitTokens(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	tokens := []string{}
	for _, f := range fields {
		f = strings.ToLower(f)
		if utf8.RuneCountInString(f) >= minLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func tierFor(count int) Tier {
	switch {
	case count <= 2:
		return TierLow
	case count <= 4:
		return TierMedium
	default:
		return TierHigh
	}
}

func isTechnical(tokens []string) bool {
	for _, t := range tokens {
		if _, ok := technicalVocabulary[t]; ok {
			return true
		}
	}
	return false
}

func detectContext(tokens []string) ContextTag {
	for _, b := range contextBuckets {
		for _, w := range b.Words {
			if slices.Contains(tokens, w) {
				return b.Tag
			}
		}
	}
	return ContextGeneral
}

// Directive is the guidance phrase for a complexity tier
func (t Tier) Directive() string {
	switch t {
	case TierLow:
		return "The keywords are sparse: expand them generously, infer the likely intent and supply the missing context, constraints and details."
	case TierMedium:
		return "The keywords are moderately detailed: balance them, connect related ideas and fill the remaining gaps with sensible specifics."
	case TierHigh:
		return "The keywords are rich and numerous: organise and prioritise them into a coherent structure without dropping any of them."
	default:
		return TierLow.Directive()
	}
}
