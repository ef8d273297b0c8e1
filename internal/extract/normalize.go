package extract

import "strings"

// NormalizeHost canonicalizes a raw host string as it appears in a URL
// netloc, a Host header value, or a --resolve field: userinfo up to the
// first '@' is dropped, IPv6-style brackets are stripped without
// validation, everything from the first ':' on (the port) is removed, and
// the result is lowercased. It never fails; the result may be empty.
func NormalizeHost(raw string) string {
	if i := strings.IndexByte(raw, '@'); i != -1 {
		raw = raw[i+1:]
	}
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	if i := strings.IndexByte(raw, ':'); i != -1 {
		raw = raw[:i]
	}
	return strings.ToLower(raw)
}
