// Package trigger decides whether a message needs a live web lookup before
// answering. The classification is a cheap, deterministic text check so it can
// run on every message without touching the network.
package trigger

import (
	"fmt"
	"regexp"
	"strings"
)

type Verdict struct {
	NeedsSearch bool
	Reason      string
}

// Keywords suggesting the user wants current or real-time information.
var searchKeywords = []string{
	// Time-sensitive
	"latest", "current", "today", "now", "recent", "new", "update",
	"this week", "this month", "this year", "2024", "2025", "2026",
	// News & events
	"news", "headline", "breaking", "announced", "release", "launched",
	// Real-time data
	"weather", "forecast", "temperature", "stock", "price", "score",
	"status", "outage", "down", "working",
	// Research/lookup
	"how to", "what is", "who is", "when did", "where is",
	"documentation", "docs", "guide", "tutorial", "article",
	// Tech support specific
	"error", "fix", "solve", "troubleshoot", "issue", "problem",
	"not working", "broken", "failed", "help me",
}

// Patterns suggesting the user is struggling and needs fresher answers than
// the model alone can give.
var strugglePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\?\s*\?+`),
	regexp.MustCompile(`still (not|doesn't|won't|can't)`),
	regexp.MustCompile(`tried (everything|that|already)`),
	regexp.MustCompile(`nothing (works|worked)`),
	regexp.MustCompile(`i (don't|cant|cannot) (understand|figure|get)`),
	regexp.MustCompile(`(please|plz) help`),
	regexp.MustCompile(`what (else|now)`),
	regexp.MustCompile(`any (other|idea|suggestion)`),
}

var detailedQuestion = regexp.MustCompile(`(how|what|why|when|where|can|does|is|are)\s+(the|a|my|this|it)`)

// Classify reports whether text should be answered with search augmentation.
// The rules are OR-combined and checked in order only so the reason names the
// first rule that fired.
func Classify(text string) Verdict {
	lower := strings.ToLower(text)

	if word, ok := matchKeyword(lower); ok {
		return Verdict{NeedsSearch: true, Reason: fmt.Sprintf("keyword %q", word)}
	}
	if matchStruggle(lower) {
		return Verdict{NeedsSearch: true, Reason: "struggle pattern"}
	}
	if isDetailedQuestion(text, lower) {
		return Verdict{NeedsSearch: true, Reason: "detailed question"}
	}
	return Verdict{}
}

func matchKeyword(lower string) (string, bool) {
	for _, kw := range searchKeywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

func matchStruggle(lower string) bool {
	for _, re := range strugglePatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func isDetailedQuestion(text, lower string) bool {
	return strings.Contains(text, "?") && len(text) > 20 && detailedQuestion.MatchString(lower)
}
