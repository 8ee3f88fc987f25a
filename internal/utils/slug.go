package utils

import "strings"

// Slugify derives a URL-safe slug from a title: lowercase, runs of
// non-alphanumeric characters collapse to single hyphens, no leading or
// trailing hyphens.
func Slugify(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	pendingHyphen := false
	for _, r := range strings.ToLower(value) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}
