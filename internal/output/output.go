// Package output renders the report blocks printed to stdout and the
// optional JSONL record of a run.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Record represents one line in the JSONL report.
type Record struct {
	Timestamp string   `json:"timestamp"`
	Command   string   `json:"command"`
	Domains   []string `json:"domains"`
	Wildcards []string `json:"wildcards,omitempty"`
	Regexes   []string `json:"regexes,omitempty"`
}

// WriteMatched prints the matched-domain block: a header followed by one
// domain per line, or a "(none)" marker.
func WriteMatched(w io.Writer, domains []string) {
	fmt.Fprintln(w, "# Matched domains (TLD filtered):")
	if len(domains) == 0 {
		fmt.Fprintln(w, "# (none)")
		return
	}
	for _, d := range domains {
		fmt.Fprintln(w, d)
	}
}

// WriteWildcards prints the wildcard-suggestion block, preceded by a blank
// line.
func WriteWildcards(w io.Writer, patterns []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Suggested wildcard patterns (label.*):")
	for _, p := range patterns {
		fmt.Fprintln(w, p)
	}
}

// WriteRegexes prints the per-label regex block, preceded by a blank line.
func WriteRegexes(w io.Writer, patterns []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Per-label regex patterns:")
	for _, p := range patterns {
		fmt.Fprintln(w, p)
	}
}

// WriteJSONL writes records as newline-delimited JSON.
func WriteJSONL(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}
