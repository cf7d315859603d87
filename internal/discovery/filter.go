package discovery

import "strings"

// Suffixes stripped before keying. Longer variants first so e.g.
// " corporation" is not mangled by the " corp" replacement.
var nameSuffixes = []string{
	".com", ".net", ".io", ".org", ".co",
	" corporation", " corp.", " corp",
	" company", " co.",
	" inc.", " inc",
	" llc", " ltd", " limited",
	" group", " holdings",
}

// Connective tokens collapsed to a single space.
var nameConnectives = []string{" and ", " & ", " the ", " of ", " at "}

// NormalizeKey canonicalizes a display name into a deduplication key:
// lower-cased, legal/domain suffixes stripped, connectives collapsed, then
// the first token longer than two characters. Names with no such token fall
// back to the full cleaned string, so two unrelated short-named companies
// can collide. The key is never displayed.
func NormalizeKey(name string) string {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	for _, suffix := range nameSuffixes {
		cleaned = strings.ReplaceAll(cleaned, suffix, "")
	}
	for _, conn := range nameConnectives {
		cleaned = strings.ReplaceAll(cleaned, conn, " ")
	}

	fields := strings.Fields(cleaned)
	if len(fields) > 0 && len(fields[0]) > 2 {
		return fields[0]
	}
	return strings.Join(fields, " ")
}

// ShouldInclude decides whether a candidate name enters the working set.
// It rejects names containing any exclusion entry (case-insensitive
// substring, catches literal competitor re-mentions) and names whose
// normalized key was already seen (catches parent/subsidiary duplicates
// like "AutoNation Honda Chandler" vs "AutoNation Inc"). The filter is
// stateless: on acceptance the caller must add NormalizeKey(name) to seen.
func ShouldInclude(name string, seen map[string]struct{}, exclusions []string) bool {
	lower := strings.ToLower(name)
	for _, excl := range exclusions {
		if excl == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(excl)) {
			return false
		}
	}

	if _, dup := seen[NormalizeKey(name)]; dup {
		return false
	}
	return true
}
