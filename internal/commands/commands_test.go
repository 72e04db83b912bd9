package commands

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		text string
		want Command
	}{
		{"/clear", Command{Kind: Clear}},
		{"  /CLEAR  ", Command{Kind: Clear}},
		{"/help", Command{Kind: Help}},
		{"/models", Command{Kind: Models}},
		{"/search latest AI news", Command{Kind: Search, Query: "latest AI news"}},
		{"/Search Kubernetes CVE", Command{Kind: Search, Query: "Kubernetes CVE"}},
		{"/search", Command{Kind: Search, Query: ""}},
		{"/search    ", Command{Kind: Search, Query: ""}},
		{"hello there", Command{Kind: None}},
		// Unknown slash commands are ordinary chat, not errors.
		{"/restart", Command{Kind: None}},
		{"/ search", Command{Kind: None}},
		{"", Command{Kind: None}},
	}
	for _, c := range cases {
		if got := Parse(c.text); got != c.want {
			t.Errorf("Parse(%q) = %+v, want %+v", c.text, got, c.want)
		}
	}
}

func TestParseKeepsQueryCase(t *testing.T) {
	got := Parse("/search OpenShift 4.16 release notes")
	if got.Query != "OpenShift 4.16 release notes" {
		t.Fatalf("query casing lost: %q", got.Query)
	}
}
