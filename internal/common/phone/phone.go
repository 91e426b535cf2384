// Package phone normalizes MSISDNs as they appear in mobile money SMS
// bodies: full numbers like "250791666661", masked forms like "*********013",
// and short agent/merchant codes.
package phone

import (
	"regexp"
	"strings"
)

var (
	fullMSISDN = regexp.MustCompile(`^250\d{9}$`)
	localNine  = regexp.MustCompile(`^07\d{8}$`)
	masked     = regexp.MustCompile(`^\*+\d{3,}$`)
	shortCode  = regexp.MustCompile(`^\d{4,8}$`)
)

// Normalize trims and format-checks a phone identifier, returning the
// canonical form. Local "07..." numbers are rewritten to the international
// "2507..." form. Masked numbers and short merchant codes are kept verbatim:
// they are still stable identities within the source feed.
func Normalize(raw string) (string, bool) {
	p := strings.TrimSpace(raw)
	p = strings.Trim(p, "()")
	p = strings.ReplaceAll(p, " ", "")

	switch {
	case fullMSISDN.MatchString(p):
		return p, true
	case localNine.MatchString(p):
		return "250" + p[1:], true
	case masked.MatchString(p), shortCode.MatchString(p):
		return p, true
	}
	return "", false
}
