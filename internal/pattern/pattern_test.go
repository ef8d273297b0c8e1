package pattern

import (
	"reflect"
	"regexp"
	"testing"
)

func domains(items ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func TestSuggestWildcards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   map[string]struct{}
		want []string
	}{
		{
			name: "subdomains collapse to one label",
			in:   domains("login.example.com", "shop.example.com"),
			want: []string{"example.*"},
		},
		{
			name: "sorted across labels",
			in:   domains("b.zeta.net", "a.alpha.org"),
			want: []string{"alpha.*", "zeta.*"},
		},
		{
			name: "single label uses whole string",
			in:   domains("intranet"),
			want: []string{"intranet.*"},
		},
		{
			name: "empty set",
			in:   domains(),
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SuggestWildcards(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SuggestWildcards() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegexForLabel(t *testing.T) {
	t.Parallel()
	re, err := regexp.Compile(RegexForLabel("example"))
	if err != nil {
		t.Fatalf("generated regex does not compile: %v", err)
	}

	matches := []string{"example.com", "login.example.co.uk", "a.b.example.net"}
	for _, m := range matches {
		if !re.MatchString(m) {
			t.Errorf("expected %q to match", m)
		}
	}
	rejects := []string{"notexample.com", "example", "exampleX.com"}
	for _, m := range rejects {
		if re.MatchString(m) {
			t.Errorf("expected %q not to match", m)
		}
	}
}

func TestRegexForLabelEscapes(t *testing.T) {
	t.Parallel()
	re, err := regexp.Compile(RegexForLabel("ex.ample"))
	if err != nil {
		t.Fatalf("generated regex does not compile: %v", err)
	}
	if !re.MatchString("ex.ample.com") {
		t.Error("expected literal dot label to match itself")
	}
	if re.MatchString("exXample.com") {
		t.Error("dot must be escaped, not a wildcard")
	}
}

func TestRegexes(t *testing.T) {
	t.Parallel()
	got := Regexes(domains("login.example.com", "shop.example.net", "cdn.other.org", "nodot"))
	want := []string{RegexForLabel("example"), RegexForLabel("other")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Regexes() = %v, want %v", got, want)
	}
}
