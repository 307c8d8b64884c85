package refdata

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const slugSeparator = '-'

// characters dropped from slugs instead of being turned into a separator
const slugRemoved = ".'’"

// Slugify converts a name to a lower case, URL friendly slug.
// Diacritics are stripped, letters of any script are kept.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	var b strings.Builder
	pendingSeparator := false

	for _, r := range strings.ToLower(stripped) {
		switch {
		case strings.ContainsRune(slugRemoved, r):
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSeparator && b.Len() > 0 {
				b.WriteRune(slugSeparator)
			}
			pendingSeparator = false
			b.WriteRune(r)
		default:
			pendingSeparator = true
		}
	}

	return b.String()
}

func slugText(text Text) Text {
	return text.mapValues(func(value string) string {
		if slug := Slugify(value); len(slug) > 0 {
			return slug
		}
		return value
	})
}
