package token

import (
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// Fields splits a command line into shell-style tokens, honoring single and
// double quotes and backslash escapes. Malformed input (unbalanced quotes,
// dangling escapes) must never abort extraction, so on any parse error the
// command is re-split on plain whitespace instead.
func Fields(cmd string) []string {
	fields, err := shell.Fields(cmd, nil)
	if err != nil {
		return strings.Fields(cmd)
	}
	return fields
}
