// Package export renders the address book in interchange formats: vCard for
// contacts and iCalendar for upcoming birthdays.
package export

import (
	"strings"

	"github.com/google/uuid"
)

// uidNamespace seeds name-based UUIDs so the same contact always gets the
// same UID across exports.
var uidNamespace = uuid.MustParse("0b5c7f0e-3f7d-4a8e-9a35-5f0a3c2e6d41")

func uidFor(parts ...string) string {
	return uuid.NewSHA1(uidNamespace, []byte(strings.Join(parts, "\x00"))).String()
}
