package cli

import (
	"strings"
	"testing"
)

func TestReplaceShortcodes(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"launch happening", "launch happening"},
		{":rocket:", "🚀"},
		{"launch :rocket: now", "launch 🚀 now"},
		{":rocket::rocket:", "🚀🚀"},
		{"smile :) :rocket:", "smile :) 🚀"},
		{":maybe:rocket:", ":maybe🚀"},
		{"::very:naughty::", "::very:naughty::"},
		{"unterminated :rocket", "unterminated :rocket"},
		{":not-a-code: stays", ":not-a-code: stays"},
		{"flag :de: and :star2:", "flag 🇩🇪 and 🌟"},
	}
	for _, c := range cases {
		var b strings.Builder
		if err := replaceShortcodes(c.input, &b); err != nil {
			t.Fatalf("replace %q failed: %v", c.input, err)
		}
		if b.String() != c.want {
			t.Errorf("replace %q = %q, expected %q", c.input, b.String(), c.want)
		}
	}
}

func TestReplaceCommandArgs(t *testing.T) {
	cmd := NewRootCommand("test")
	var b strings.Builder
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"replace", "to the moon :rocket:"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("replace command failed: %v", err)
	}
	if b.String() != "to the moon 🚀\n" {
		t.Errorf("replace command printed %q", b.String())
	}
}

func TestLookupCommand(t *testing.T) {
	cmd := NewRootCommand("test")
	var b strings.Builder
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"lookup", ":rocket:"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("lookup command failed: %v", err)
	}
	if !strings.Contains(b.String(), "🚀") || !strings.Contains(b.String(), "rocket") {
		t.Errorf("lookup output misses the rocket: %q", b.String())
	}
}

func TestSearchCommand(t *testing.T) {
	cmd := NewRootCommand("test")
	var b strings.Builder
	cmd.SetOut(&b)
	cmd.SetArgs([]string{"search", "--limit", "1", "star"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("search command failed: %v", err)
	}
	if !strings.HasPrefix(b.String(), "⭐") {
		t.Errorf("best match for \"star\" should be ⭐, output %q", b.String())
	}
}
