package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteMatched(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	WriteMatched(&buf, []string{"a.example.com", "b.example.net"})
	want := "# Matched domains (TLD filtered):\na.example.com\nb.example.net\n"
	if buf.String() != want {
		t.Fatalf("WriteMatched() = %q, want %q", buf.String(), want)
	}
}

func TestWriteMatchedEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	WriteMatched(&buf, nil)
	want := "# Matched domains (TLD filtered):\n# (none)\n"
	if buf.String() != want {
		t.Fatalf("WriteMatched() = %q, want %q", buf.String(), want)
	}
}

func TestWriteWildcards(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	WriteWildcards(&buf, []string{"example.*"})
	want := "\n# Suggested wildcard patterns (label.*):\nexample.*\n"
	if buf.String() != want {
		t.Fatalf("WriteWildcards() = %q, want %q", buf.String(), want)
	}
}

func TestWriteRegexes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	WriteRegexes(&buf, []string{`(^|\.)example\.[A-Za-z0-9.-]+$`})
	if !strings.HasPrefix(buf.String(), "\n# Per-label regex patterns:\n") {
		t.Fatalf("WriteRegexes() = %q", buf.String())
	}
}

func TestWriteJSONL(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	rec := Record{
		Timestamp: "2025-08-24T00:00:00Z",
		Command:   "curl https://example.com",
		Domains:   []string{"example.com"},
		Wildcards: []string{"example.*"},
	}
	if err := WriteJSONL(&buf, []Record{rec}); err != nil {
		t.Fatalf("WriteJSONL() error: %v", err)
	}

	var got Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Command != rec.Command || len(got.Domains) != 1 || got.Domains[0] != "example.com" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if strings.Contains(buf.String(), `"regexes"`) {
		t.Fatal("empty regexes should be omitted")
	}
}
