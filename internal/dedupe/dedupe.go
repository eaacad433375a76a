// Package dedupe collapses cleaned leads by a configurable composite key.
package dedupe

import (
	"strings"

	"github.com/sells-group/leads-cli/internal/lead"
)

// DefaultKeys is the composite key used when the caller specifies none.
var DefaultKeys = []string{"email"}

// Dedupe keeps the first occurrence of each composite key, preserving
// order. Records whose key is entirely empty are always retained; they are
// never treated as duplicates of each other.
func Dedupe(leads []lead.Lead, keyFields []string) []lead.Lead {
	if len(keyFields) == 0 {
		keyFields = DefaultKeys
	}

	seen := make(map[string]struct{}, len(leads))
	out := make([]lead.Lead, 0, len(leads))
	for _, l := range leads {
		key := compositeKey(&l, keyFields)
		if key != "" {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, l)
	}
	return out
}

// compositeKey joins the lower-cased values of the requested fields with an
// underscore. Missing fields contribute empty components; a key made only
// of empty components and separators counts as empty.
func compositeKey(l *lead.Lead, keyFields []string) string {
	parts := make([]string, 0, len(keyFields))
	empty := true
	for _, f := range keyFields {
		v := strings.ToLower(l.Field(f))
		if v != "" {
			empty = false
		}
		parts = append(parts, v)
	}
	if empty {
		return ""
	}
	return strings.Join(parts, "_")
}
