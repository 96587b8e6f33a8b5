// Package club implements the core record-keeping engine: the member
// directory, team rosters, the roster/directory sync engine, the
// reconciliation review queue, and cash balance derivation. Everything in
// this package is pure in-memory logic over models.AppState; persistence
// and transport live elsewhere.
package club

import "strings"

// NormalizeName derives the comparison key used for name matching: leading
// and trailing whitespace trimmed, internal whitespace runs collapsed to a
// single space, lower-cased. The key is only ever compared, never displayed
// or stored as the name of record. Whitespace-only input normalizes to "".
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
