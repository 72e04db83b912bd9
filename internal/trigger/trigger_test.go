package trigger

import (
	"strings"
	"testing"
)

func TestClassifyKeyword(t *testing.T) {
	v := Classify("what's the weather today?")
	if !v.NeedsSearch {
		t.Fatalf("expected search verdict, got %+v", v)
	}
	if !strings.Contains(v.Reason, "keyword") {
		t.Fatalf("expected keyword reason, got %q", v.Reason)
	}
}

func TestClassifyPlainChat(t *testing.T) {
	for _, text := range []string{
		"thanks, that worked!",
		"good morning",
		"ok",
	} {
		if v := Classify(text); v.NeedsSearch {
			t.Fatalf("%q should not trigger search: %+v", text, v)
		}
	}
}

func TestClassifyStrugglePattern(t *testing.T) {
	// No keyword fires here ("doesn't work" is not in the vocabulary);
	// the struggle regexes must catch it on their own.
	v := Classify("still doesn't do the right thing, tried everything, plz help")
	if !v.NeedsSearch {
		t.Fatalf("expected search verdict, got %+v", v)
	}
	if v.Reason != "struggle pattern" {
		t.Fatalf("expected struggle reason, got %q", v.Reason)
	}
}

func TestClassifyDetailedQuestion(t *testing.T) {
	v := Classify("can the cluster autoscaler shrink below two nodes?")
	if !v.NeedsSearch || v.Reason != "detailed question" {
		t.Fatalf("expected detailed-question verdict, got %+v", v)
	}

	// Short questions don't qualify.
	if v := Classify("is it on?"); v.NeedsSearch {
		t.Fatalf("short question should not trigger: %+v", v)
	}
	// Long statements without a question mark don't either.
	if v := Classify("can the build finish before lunch I wonder, we shall see"); v.NeedsSearch {
		t.Fatalf("missing question mark should not trigger: %+v", v)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if v := Classify("ANY NEWS on the rollout"); !v.NeedsSearch {
		t.Fatalf("uppercase keyword not matched: %+v", v)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	a := Classify("what's the weather today?")
	b := Classify("what's the weather today?")
	if a != b {
		t.Fatalf("classification not deterministic: %+v vs %+v", a, b)
	}
}
