package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalize formats raw as E.164 using defaultRegion for numbers without a
// country prefix. Unparseable input is returned trimmed so that the caller
// never loses what the customer typed.
func Normalize(raw, defaultRegion string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil || !phonenumbers.IsPossibleNumber(parsed) {
		return raw
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
