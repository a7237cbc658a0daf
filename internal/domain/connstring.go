package domain

import "strings"

// Accepted connection-string schemes for a shop's external store.
const (
	SchemeStandard = "mongodb://"
	SchemeSRV      = "mongodb+srv://"
)

// ValidConnectionString reports whether the string is syntactically one of
// the two accepted connection-string forms. This is a Shop invariant,
// checked before a registration is ever persisted.
func ValidConnectionString(connStr string) bool {
	return strings.HasPrefix(connStr, SchemeStandard) || strings.HasPrefix(connStr, SchemeSRV)
}
