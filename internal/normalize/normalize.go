// Package normalize holds the per-field normalizers for lead cleaning.
//
// Every normalizer follows the same contract: a nil or malformed input
// resolves to nil, never an error. Validity surfaces as field presence so
// one bad field can never abort a whole record.
package normalize

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// Word characters here are Unicode letters and digits so accented
	// names survive cleaning.
	disallowed   = regexp.MustCompile(`[^\p{L}\p{N}_\s.,\-@:/]`)
	emailShape   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	schemePrefix = regexp.MustCompile(`^[a-zA-Z]+://`)
	urlShape     = regexp.MustCompile(`^https?://(?:[-\w.]|(?:%[0-9a-fA-F]{2}))+`)
)

// CleanString collapses whitespace runs to single spaces, trims, and strips
// characters outside [word chars, whitespace, . , - @ : /].
func CleanString(s *string) *string {
	if s == nil {
		return nil
	}
	out := whitespaceRuns.ReplaceAllString(*s, " ")
	out = disallowed.ReplaceAllString(out, "")
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	return &out
}

// Email lower-cases and trims, then requires a local@domain.tld shape.
// No deliverability check is attempted.
func Email(s *string) *string {
	if s == nil {
		return nil
	}
	email := strings.ToLower(strings.TrimSpace(*s))
	if email == "" || !emailShape.MatchString(email) {
		return nil
	}
	return &email
}

// Phone parses with the default region as fallback country context and
// returns E.164 only for numbers that validate as plausible for their
// region. Parse failures are swallowed.
func Phone(s *string, defaultRegion string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	num, err := phonenumbers.Parse(*s, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return nil
	}
	e164 := phonenumbers.Format(num, phonenumbers.E164)
	return &e164
}

// URL trims, defaults the scheme to http://, and requires a basic
// http(s)://host shape.
func URL(s *string) *string {
	if s == nil {
		return nil
	}
	u := strings.TrimSpace(*s)
	if u == "" {
		return nil
	}
	if !schemePrefix.MatchString(u) {
		u = "http://" + u
	}
	if !urlShape.MatchString(u) {
		return nil
	}
	return &u
}
