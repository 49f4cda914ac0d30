package core

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from user-supplied text before it is stored or
// rebroadcast. Stored bodies are redistributed verbatim to every client in
// the room, so this runs at the validation boundary, not at display time.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds a sanitizer that rejects all HTML.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean removes markup from text and trims surrounding whitespace.
func (s *Sanitizer) Clean(text string) string {
	return strings.TrimSpace(s.policy.Sanitize(text))
}
