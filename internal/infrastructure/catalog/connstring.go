package catalog

import "strings"

// FallbackDatabase is used when a connection string carries no database
// segment. This is a degraded mode: the fallback name is unrelated to the
// shop's intended data, so the operation will likely target the wrong or an
// empty database. The connector logs a warning when it kicks in.
const FallbackDatabase = "shop"

// DatabaseName resolves the target database from a connection string: the
// segment after the last path separator, up to (not including) a query
// string. Returns (FallbackDatabase, false) when the segment is empty.
func DatabaseName(connStr string) (string, bool) {
	seg := connStr
	if idx := strings.LastIndex(seg, "/"); idx >= 0 {
		seg = seg[idx+1:]
	}
	if idx := strings.Index(seg, "?"); idx >= 0 {
		seg = seg[:idx]
	}
	if seg == "" {
		return FallbackDatabase, false
	}
	return seg, true
}
