package intent

import (
	"testing"
)

func TestClassifyGreeting(t *testing.T) {
	utterances := []string{
		"hello",
		"Hi!",
		"hey you",
		"HELLO there friend",
		"kamusta",
	}

	for _, utterance := range utterances {
		if got := Classify(utterance); got != TopicGreeting {
			t.Errorf("Classify(%q) = %q, want %q", utterance, got, TopicGreeting)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Utterances matching several topics resolve to the earliest rule.
	cases := []struct {
		utterance string
		want      Topic
	}{
		{"show me your projects and skills", TopicProjects},
		{"what tech stack do you use for projects", TopicProjects},
		{"backend API for my mobile app", TopicMobile},
		{"skills and how to contact you", TopicSkills},
	}

	for _, tc := range cases {
		if got := Classify(tc.utterance); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.utterance, got, tc.want)
		}
	}
}

func TestClassifySubstringContainment(t *testing.T) {
	// Matching is deliberately substring based, not whole-word.
	if got := Classify("projection mapping"); got != TopicProjects {
		t.Errorf("Classify(projection) = %q, want %q", got, TopicProjects)
	}
	if got := Classify("highway"); got != TopicGreeting {
		t.Errorf("Classify(highway) = %q, want %q", got, TopicGreeting)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("TELL ME ABOUT YOUR PROJECTS"); got != TopicProjects {
		t.Errorf("Classify uppercase = %q, want %q", got, TopicProjects)
	}
}

func TestClassifyServiceTopics(t *testing.T) {
	cases := []struct {
		utterance string
		want      Topic
	}{
		{"do you build android things", TopicMobile},
		{"need a database layer", TopicAPI},
		{"can you deploy to aws", TopicCloud},
		{"looking for ux advice", TopicDesign},
		{"i need a mentor", TopicConsulting},
		{"there is a bug on my site", TopicMaintenance},
	}

	for _, tc := range cases {
		if got := Classify(tc.utterance); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.utterance, got, tc.want)
		}
	}
}

func TestClassifyFallback(t *testing.T) {
	if got := Classify("zzz qqq"); got != TopicFallback {
		t.Errorf("Classify(no keywords) = %q, want %q", got, TopicFallback)
	}
}
