package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is returned by ValidateRequest
var ErrInvalidInput = errors.New("invalid input")

// MinKeywordTerms is the fewest comma-separated keywords a request may carry
const MinKeywordTerms = 2

// Request asks for one generated prompt
type Request struct {
	Keywords string `json:"keywords" validate:"required,keywordlist"`
	TaskType string `json:"taskType"`
	Platform string `json:"platform"`
}

// Response is the result of Generate. Fallback is always set when Success is false.
type Response struct {
	Success  bool   `json:"success"`
	Prompt   string `json:"prompt,omitempty"`
	Error    string `json:"error,omitempty"`
	Fallback string `json:"fallback,omitempty"`

	Attempts int    `json:"attempts"`
	Cached   bool   `json:"cached"`
	Offline  bool   `json:"offline,omitempty"`
	TaskType string `json:"taskType"`
	Platform string `json:"platform"`
}

// Text returns the prompt, or the fallback when generation failed
func (r Response) Text() string {
	if r.Success {
		return r.Prompt
	}
	return r.Fallback
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("keywordlist", func(fl validator.FieldLevel) bool {
		return CountKeywordTerms(fl.Field().String()) >= MinKeywordTerms
	})
	return v
}

// CountKeywordTerms counts the non-empty comma-separated terms in s
func CountKeywordTerms(s string) int {
	n := 0
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

// ValidateRequest checks the keyword rules enforced before generation.
// Unknown task types and platforms are not errors; they resolve to general.
func ValidateRequest(req Request) error {
	if strings.TrimSpace(req.Keywords) == "" {
		return fmt.Errorf("%w: please enter some keywords", ErrInvalidInput)
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				if e.Tag() == "keywordlist" {
					return fmt.Errorf("%w: please enter at least %d comma-separated keywords", ErrInvalidInput, MinKeywordTerms)
				}
			}
		}
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}
