package sms

import "strings"

// NormalizePhone converts a free-form phone field into +<countrycode><number>
// form. Non-digit characters are stripped; a bare 10-digit number is assumed
// to be US/Canada and gets "+1"; anything else keeps its digits behind a
// single "+" so an already-prefixed number is never double-prefixed.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if len(digits) == 10 {
		return "+1" + digits
	}
	return "+" + digits
}
