package extract

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// domainRE matches domain-like substrings: two or more alphanumeric or
	// hyphen labels joined by dots.
	domainRE = regexp.MustCompile(`[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+`)
	// hostHeaderRE captures the value of a Host header; the value ends at
	// whitespace, ';', ',' or a quote.
	hostHeaderRE = regexp.MustCompile(`(?i)Host\s*:\s*([^;,\s"']+)`)
	commaSplitRE = regexp.MustCompile(`\s*,\s*`)
)

// Domains scans shell tokens of a curl-style command and returns the set of
// normalized candidate hosts. Rules are not exclusive: a token that is a
// URL still gets the generic substring scan, and duplicates collapse in the
// set. Tokens consumed as flag values are skipped by the scan index and do
// not get an independent generic pass of their own.
//
// Malformed URLs and headers are skipped for that match attempt only; the
// scan never fails.
func Domains(tokens []string) map[string]struct{} {
	domains := make(map[string]struct{})
	add := func(raw string) {
		if h := NormalizeHost(raw); h != "" {
			domains[h] = struct{}{}
		}
	}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]

		// Direct URL token.
		if strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://") {
			if host, ok := urlHost(t); ok {
				add(host)
			}
		}

		// Flags whose next token is a URL.
		if (t == "--url" || t == "--url*" || t == "-I" || t == "--head") && i+1 < len(tokens) {
			u := tokens[i+1]
			if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
				if host, ok := urlHost(u); ok {
					add(host)
				}
			}
			i++
		}

		// Header flags: prefer an explicit Host: value, otherwise fall back
		// to scanning the whole header string for domain-like substrings.
		if (t == "-H" || t == "--header") && i+1 < len(tokens) {
			hdr := tokens[i+1]
			if m := hostHeaderRE.FindStringSubmatch(hdr); m != nil {
				add(m[1])
			} else {
				for _, d := range domainRE.FindAllString(hdr, -1) {
					add(d)
				}
			}
			i++
		}

		// --resolve host:port:addr and --connect-to host:port:target:port,
		// both possibly comma-separated; the first colon field of each
		// segment is the hostname.
		if (t == "--resolve" || t == "--connect-to") && i+1 < len(tokens) {
			for _, part := range commaSplitRE.Split(tokens[i+1], -1) {
				host, _, _ := strings.Cut(part, ":")
				if host != "" {
					add(host)
				}
			}
			i++
		}

		// Generic scan over the token itself.
		for _, d := range domainRE.FindAllString(t, -1) {
			add(d)
		}
	}

	return domains
}

// urlHost parses a URL token and reports its host[:port] part. A parse
// failure or an empty host means no candidate.
func urlHost(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	return u.Host, true
}
