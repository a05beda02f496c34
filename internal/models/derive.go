package models

import "strings"

// Slugify derives a URL-safe slug from a blog title: lowercase, every run of
// non-alphanumeric characters becomes a single hyphen, no leading or trailing
// hyphen.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := false
	for _, r := range strings.ToLower(title) {
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

	return strings.Trim(b.String(), "-")
}

// TotalAmount computes the booking price for a team: per-person price times
// team size.
func TotalAmount(price float64, teamSize int) float64 {
	return price * float64(teamSize)
}
