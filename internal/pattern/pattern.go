// Package pattern derives wildcard and regex indicators from a filtered
// domain set, for use in scanners and wildcard-style blocklists.
package pattern

import (
	"regexp"
	"sort"
	"strings"
)

// SuggestWildcards emits one "<label>.*" pattern per distinct
// registrable-domain label (the second-to-last label, e.g. "example" from
// "login.example.com"; the whole string for single-label entries), sorted
// ascending.
func SuggestWildcards(domains map[string]struct{}) []string {
	labels := make(map[string]struct{})
	for d := range domains {
		parts := strings.Split(d, ".")
		if len(parts) >= 2 {
			labels[parts[len(parts)-2]] = struct{}{}
		} else {
			labels[parts[0]] = struct{}{}
		}
	}

	out := make([]string, 0, len(labels))
	for label := range labels {
		out = append(out, label+".*")
	}
	sort.Strings(out)
	return out
}

// RegexForLabel builds a pattern matching label as a registrable domain
// under any TLD or subdomain combination, e.g. for "example":
// (^|\.)example\.[A-Za-z0-9.-]+$
func RegexForLabel(label string) string {
	return `(^|\.)` + regexp.QuoteMeta(label) + `\.[A-Za-z0-9.-]+$`
}

// Regexes returns one regex per distinct second-to-last label of the dotted
// domains in the set, sorted by label.
func Regexes(domains map[string]struct{}) []string {
	labels := make(map[string]struct{})
	for d := range domains {
		if !strings.Contains(d, ".") {
			continue
		}
		parts := strings.Split(d, ".")
		labels[parts[len(parts)-2]] = struct{}{}
	}

	names := make([]string, 0, len(labels))
	for label := range labels {
		names = append(names, label)
	}
	sort.Strings(names)

	out := make([]string, 0, len(names))
	for _, label := range names {
		out = append(out, RegexForLabel(label))
	}
	return out
}
