package domain

import (
	"regexp"
	"strings"
)

var (
	htmlTagRegexp   = regexp.MustCompile(`(?is)<script.*?>.*?</script>|<style.*?>.*?</style>|<[^>]*>`)
	emailRegexp     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonPhoneRegexp  = regexp.MustCompile(`[^\d+\s()-]`)
	nonDigitRegexp  = regexp.MustCompile(`\D`)
	allowedHTMLTags = regexp.MustCompile(`(?i)^/?(b|i|em|strong|p|br|ul|ol|li)$`)
)

// SanitizeText strips all HTML and script content and trims whitespace.
// Used for names, titles, venues, access codes, and scan payloads.
func SanitizeText(input string) string {
	return strings.TrimSpace(htmlTagRegexp.ReplaceAllString(input, ""))
}

// SanitizeHTML strips everything except a small set of formatting tags.
// Used for event descriptions.
func SanitizeHTML(input string) string {
	out := htmlTagRegexp.ReplaceAllStringFunc(input, func(tag string) string {
		inner := strings.Trim(tag, "<>")
		inner = strings.TrimSpace(inner)
		if name, _, _ := strings.Cut(inner, " "); allowedHTMLTags.MatchString(name) {
			return "<" + inner + ">"
		}
		return ""
	})
	return strings.TrimSpace(out)
}

// SanitizeEmail strips HTML, trims, and lowercases the address.
func SanitizeEmail(email string) string {
	return strings.ToLower(SanitizeText(email))
}

// SanitizePhone keeps only digits, +, spaces, hyphens, and parentheses.
func SanitizePhone(phone string) string {
	return strings.TrimSpace(nonPhoneRegexp.ReplaceAllString(SanitizeText(phone), ""))
}

// IsValidEmail reports whether email has a plausible address format.
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// IsValidPhone reports whether phone carries 10 to 15 digits.
func IsValidPhone(phone string) bool {
	digits := nonDigitRegexp.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}
