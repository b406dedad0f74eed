package slug

import "strings"

// Make turns a display name into a URL slug: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, no leading or trailing
// hyphen. Uniqueness suffixes are the storage layer's concern.
func Make(name string) string {
	var b strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
