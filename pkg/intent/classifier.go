package intent

import (
	"strings"
)

type Topic string

const (
	TopicGreeting    Topic = "greeting"
	TopicProjects    Topic = "projects"
	TopicSkills      Topic = "skills"
	TopicContact     Topic = "contact"
	TopicEducation   Topic = "education"
	TopicResume      Topic = "resume"
	TopicAbout       Topic = "about"
	TopicMobile      Topic = "mobile"
	TopicAPI         Topic = "api"
	TopicCloud       Topic = "cloud"
	TopicDesign      Topic = "design"
	TopicConsulting  Topic = "consulting"
	TopicMaintenance Topic = "maintenance"
	TopicFallback    Topic = "fallback"
)

type rule struct {
	topic    Topic
	keywords []string
}

// Rules are evaluated top to bottom and the first keyword hit wins, so
// an utterance matching several topics always resolves to the one
// listed earlier. General portfolio topics outrank service topics.
// Matching is substring containment, not whole-word.
var rules = []rule{
	{TopicGreeting, []string{"hello", "hi", "hey", "start", "kamusta", "kumusta"}},
	{TopicProjects, []string{"project", "work", "portfolio"}},
	{TopicSkills, []string{"skill", "tech", "technology", "stack"}},
	{TopicContact, []string{"contact", "hire", "email", "reach", "collaborate"}},
	{TopicEducation, []string{"education", "academic", "degree", "university", "study"}},
	{TopicResume, []string{"resume", "cv", "download", "experience"}},
	{TopicAbout, []string{"about", "who", "michael", "tell me"}},
	{TopicMobile, []string{"mobile", "app", "android", "ios", "flutter"}},
	{TopicAPI, []string{"api", "backend", "server", "database"}},
	{TopicCloud, []string{"cloud", "devops", "deploy", "aws", "docker", "hosting"}},
	{TopicDesign, []string{"design", "ui", "ux", "figma"}},
	{TopicConsulting, []string{"consult", "advice", "guidance", "mentor"}},
	{TopicMaintenance, []string{"maintain", "maintenance", "support", "bug", "fix"}},
}

// Classify maps an utterance to a topic label using first-match
// keyword rules. Returns TopicFallback when nothing matches.
func Classify(utterance string) Topic {
	lowered := strings.ToLower(utterance)

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lowered, keyword) {
				return r.topic
			}
		}
	}

	return TopicFallback
}
