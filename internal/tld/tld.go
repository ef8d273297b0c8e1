package tld

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/net/idna"
)

// Set holds registered top-level-domain labels, lowercased, without leading
// dots or comments.
type Set map[string]struct{}

// Contains reports whether label is a registered TLD in the set.
func (s Set) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Merge adds every label of other into s.
func (s Set) Merge(other Set) {
	for label := range other {
		s[label] = struct{}{}
	}
}

// Sorted returns the labels in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for label := range s {
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// Parse reads a newline-separated TLD list. Blank lines and lines starting
// with '#' are skipped; values are lowercased.
func Parse(r io.Reader) (Set, error) {
	tlds := make(Set)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tlds[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tld list read error: %w", err)
	}
	return tlds, nil
}

// LoadFile parses a local TLD list file.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tld file %q: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// SaveFile writes the set sorted, one label per line.
func SaveFile(path string, s Set) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create tld file %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, label := range s.Sorted() {
		if _, err := w.WriteString(label + "\n"); err != nil {
			return fmt.Errorf("write tld file %q: %w", path, err)
		}
	}
	return w.Flush()
}

// Filter keeps the domains whose last label is a registered TLD. Domains
// whose last label is punycode ("xn--") and not directly in the set get a
// second chance: the whole domain is decoded from its IDNA form and the
// decoded last label is tested, but the original string is what gets kept.
// Decode failures exclude the domain.
func Filter(domains map[string]struct{}, tlds Set) map[string]struct{} {
	out := make(map[string]struct{})
	for d := range domains {
		if d == "" {
			continue
		}
		last := strings.ToLower(lastLabel(d))
		if tlds.Contains(last) {
			out[d] = struct{}{}
			continue
		}
		if !strings.HasPrefix(last, "xn--") {
			continue
		}
		decoded, err := idna.ToUnicode(d)
		if err != nil {
			continue
		}
		if tlds.Contains(strings.ToLower(lastLabel(decoded))) {
			out[d] = struct{}{}
		}
	}
	return out
}

// lastLabel returns the substring after the final dot, or the whole string
// for dot-free input. Only the last label matters for filtering, so the
// rest of the domain is never split.
func lastLabel(d string) string {
	if i := strings.LastIndexByte(d, '.'); i != -1 {
		return d[i+1:]
	}
	return d
}
