package intent

import (
	"regexp"
	"strings"
)

// Technology terms worth remembering when a visitor mentions them.
var interestVocabulary = []string{
	"react",
	"typescript",
	"javascript",
	"node",
	"python",
	"iot",
	"arduino",
	"esp8266",
	"firebase",
	"flutter",
	"docker",
	"tailwind",
	"mongodb",
}

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)my name is ([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)\bi'm ([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)\bi am ([a-zA-Z]+)`),
	regexp.MustCompile(`(?i)call me ([a-zA-Z]+)`),
}

// ExtractInterests returns the union of known interests and any
// vocabulary term found in the utterance. Pure and idempotent; it
// never drops an existing entry and preserves insertion order.
func ExtractInterests(utterance string, known []string) []string {
	lowered := strings.ToLower(utterance)

	result := make([]string, len(known))
	copy(result, known)

	seen := make(map[string]bool, len(known))
	for _, interest := range known {
		seen[interest] = true
	}

	for _, term := range interestVocabulary {
		if seen[term] {
			continue
		}
		if strings.Contains(lowered, term) {
			result = append(result, term)
			seen[term] = true
		}
	}

	return result
}

// ExtractName looks for a self-introduction in the utterance and
// returns the first captured word.
func ExtractName(utterance string) (string, bool) {
	for _, pattern := range namePatterns {
		if matches := pattern.FindStringSubmatch(utterance); len(matches) > 1 {
			return capitalize(matches[1]), true
		}
	}

	return "", false
}

func capitalize(word string) string {
	lowered := strings.ToLower(word)
	return strings.ToUpper(lowered[:1]) + lowered[1:]
}
