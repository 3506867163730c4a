package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestArgStringsReadsTwoLines(t *testing.T) {
	in := strings.NewReader("--foo\r\n/bar\n")
	var out bytes.Buffer

	linux, windows, err := ArgStrings(in, &out)
	if err != nil {
		t.Fatalf("ArgStrings: %v", err)
	}
	if linux != "--foo" {
		t.Fatalf("linux = %q, want --foo", linux)
	}
	if windows != "/bar" {
		t.Fatalf("windows = %q, want /bar", windows)
	}
}

func TestArgStringsAllowsBlankLines(t *testing.T) {
	in := strings.NewReader("\n\n")
	var out bytes.Buffer

	linux, windows, err := ArgStrings(in, &out)
	if err != nil {
		t.Fatalf("ArgStrings: %v", err)
	}
	if linux != "" || windows != "" {
		t.Fatalf("expected blank args, got %q %q", linux, windows)
	}
}
