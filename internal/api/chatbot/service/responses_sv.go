package chatbotService

import (
	"PortfolioGolang/internal/entity"
)

const (
	ownerEmail    = "mailto:aramichae19@gmail.com"
	githubURL     = "https://github.com/bossmiks"
	linkedinURL   = "https://www.linkedin.com/in/michael-ara-jr-317819291/"
	resumePDFPath = "/resume.pdf"
)

var greetingActions = []entity.Action{
	{Label: "View Projects", Action: entity.ActionNavigate, Data: "/projects", Icon: "Code"},
	{Label: "About Michael", Action: entity.ActionNavigate, Data: "/about", Icon: "User"},
}

var projectsActions = []entity.Action{
	{Label: "View Projects", Action: entity.ActionNavigate, Data: "/projects", Icon: "Code"},
	{Label: "GitHub Profile", Action: entity.ActionExternal, Data: githubURL, Icon: "ExternalLink"},
	{Label: "About Michael", Action: entity.ActionNavigate, Data: "/about", Icon: "User"},
}

var skillsActions = []entity.Action{
	{Label: "View Skills", Action: entity.ActionNavigate, Data: "/about", Icon: "Brain"},
	{Label: "Download Resume", Action: entity.ActionDownload, Data: resumePDFPath, Icon: "Download"},
}

var contactActions = []entity.Action{
	{Label: "Send Email", Action: entity.ActionEmail, Data: ownerEmail, Icon: "Mail"},
	{Label: "LinkedIn", Action: entity.ActionExternal, Data: linkedinURL, Icon: "ExternalLink"},
	{Label: "Contact Page", Action: entity.ActionNavigate, Data: "/contact", Icon: "Phone"},
}

var educationActions = []entity.Action{
	{Label: "View Academics", Action: entity.ActionNavigate, Data: "/academics", Icon: "GraduationCap"},
	{Label: "About Michael", Action: entity.ActionNavigate, Data: "/about", Icon: "User"},
}

var resumeActions = []entity.Action{
	{Label: "View Resume", Action: entity.ActionNavigate, Data: "/resume", Icon: "FileText"},
	{Label: "Download PDF", Action: entity.ActionDownload, Data: resumePDFPath, Icon: "Download"},
}

var aboutActions = []entity.Action{
	{Label: "About Michael", Action: entity.ActionNavigate, Data: "/about", Icon: "User"},
	{Label: "View Projects", Action: entity.ActionNavigate, Data: "/projects", Icon: "Code"},
}

var mobileActions = []entity.Action{
	{Label: "Mobile Projects", Action: entity.ActionNavigate, Data: "/projects", Icon: "Smartphone"},
	{Label: "Discuss an App", Action: entity.ActionEmail, Data: ownerEmail, Icon: "Mail"},
}

var apiActions = []entity.Action{
	{Label: "Backend Work", Action: entity.ActionNavigate, Data: "/projects", Icon: "Server"},
	{Label: "Get in Touch", Action: entity.ActionEmail, Data: ownerEmail, Icon: "Mail"},
}

var cloudActions = []entity.Action{
	{Label: "DevOps Projects", Action: entity.ActionNavigate, Data: "/projects", Icon: "Cloud"},
	{Label: "Get in Touch", Action: entity.ActionEmail, Data: ownerEmail, Icon: "Mail"},
}

var designActions = []entity.Action{
	{Label: "Design Work", Action: entity.ActionNavigate, Data: "/projects", Icon: "Palette"},
	{Label: "Contact Page", Action: entity.ActionNavigate, Data: "/contact", Icon: "Phone"},
}

var consultingActions = []entity.Action{
	{Label: "Book a Consultation", Action: entity.ActionEmail, Data: ownerEmail, Icon: "Mail"},
	{Label: "About Michael", Action: entity.ActionNavigate, Data: "/about", Icon: "User"},
}

var maintenanceActions = []entity.Action{
	{Label: "Request Support", Action: entity.ActionEmail, Data: ownerEmail, Icon: "Mail"},
	{Label: "Contact Page", Action: entity.ActionNavigate, Data: "/contact", Icon: "Phone"},
}

func (s *chatbotService) greetingReply(session *entity.SessionContext, returning bool) entity.Reply {
	if returning {
		text := "Welcome back! What else would you like to explore?"
		if session.Name != "" {
			text = "Welcome back, " + session.Name + "! What else would you like to explore?"
		}
		if phrase := interestsPhrase(session); phrase != "" {
			text += " We could pick up where we left off with " + phrase + "."
		}
		return entity.Reply{Text: text, Actions: greetingActions}
	}

	greeting := s.timeOfDayGreeting()
	if session.Name != "" {
		greeting += ", " + session.Name
	}
	text := greeting + "! 👋 I'm Michael's portfolio assistant. How can I help you today?"

	return entity.Reply{Text: text, Actions: greetingActions}
}

func projectsReply(session *entity.SessionContext, askedBefore bool) entity.Reply {
	if askedBefore {
		text := namePrefix(session) + "back to the projects! 🚀 The GitHub profile has the source for most of them."
		if phrase := interestsPhrase(session); phrase != "" {
			text += " The " + phrase + " work might be the most interesting for you."
		}
		return entity.Reply{Text: text, Actions: projectsActions}
	}

	text := namePrefix(session) + "🚀 Michael has built IoT systems, web applications, and smart solutions. The projects page has the full list!"
	return entity.Reply{Text: text, Actions: projectsActions}
}

func skillsReply(session *entity.SessionContext, askedBefore bool) entity.Reply {
	if askedBefore {
		text := namePrefix(session) + "as mentioned, the core stack is React, TypeScript, and IoT development. The resume has the complete picture."
		if phrase := interestsPhrase(session); phrase != "" {
			text += " And yes, " + phrase + " included."
		}
		return entity.Reply{Text: text, Actions: skillsActions}
	}

	text := namePrefix(session) + "💻 Michael works with React, TypeScript, JavaScript, and IoT development, from device firmware to modern web apps."
	return entity.Reply{Text: text, Actions: skillsActions}
}

func contactReply(session *entity.SessionContext, askedBefore bool) entity.Reply {
	if askedBefore {
		text := namePrefix(session) + "still thinking it over? Michael is always open to collaborations and new opportunities."
		return entity.Reply{Text: text, Actions: contactActions}
	}

	text := namePrefix(session) + "📧 You can reach Michael at aramichae19@gmail.com or through his LinkedIn profile!"
	return entity.Reply{Text: text, Actions: contactActions}
}

func educationReply(session *entity.SessionContext) entity.Reply {
	text := namePrefix(session) + "🎓 Michael's academic history and certifications are on the Academics page."
	return entity.Reply{Text: text, Actions: educationActions}
}

func resumeReply(session *entity.SessionContext, askedBefore bool) entity.Reply {
	if askedBefore {
		text := namePrefix(session) + "the resume download is one click away whenever you're ready."
		return entity.Reply{Text: text, Actions: resumeActions}
	}

	text := namePrefix(session) + "📄 The resume covers Michael's experience and skills. You can view it online or download the PDF."
	return entity.Reply{Text: text, Actions: resumeActions}
}

func aboutReply(session *entity.SessionContext) entity.Reply {
	text := namePrefix(session) + "Michael is a full-stack developer focused on IoT and smart systems. The about page tells the whole story."
	return entity.Reply{Text: text, Actions: aboutActions}
}

func mobileReply(session *entity.SessionContext) entity.Reply {
	text := namePrefix(session) + "📱 Michael builds mobile experiences with React Native and Flutter, from prototype to store release."
	return entity.Reply{Text: text, Actions: mobileActions}
}

func apiReply(session *entity.SessionContext) entity.Reply {
	text := namePrefix(session) + "🛠️ Backend work is a core service: REST APIs, databases, and third-party integrations."
	return entity.Reply{Text: text, Actions: apiActions}
}

func cloudReply(session *entity.SessionContext) entity.Reply {
	text := namePrefix(session) + "☁️ Deployments, CI/CD pipelines, and cloud infrastructure are part of Michael's toolkit."
	return entity.Reply{Text: text, Actions: cloudActions}
}

func designReply(session *entity.SessionContext) entity.Reply {
	text := namePrefix(session) + "🎨 Michael pairs engineering with an eye for UI/UX and clean, usable interfaces."
	return entity.Reply{Text: text, Actions: designActions}
}

func consultingReply(session *entity.SessionContext) entity.Reply {
	text := namePrefix(session) + "💡 Michael offers consulting and technical guidance for teams and solo founders alike."
	return entity.Reply{Text: text, Actions: consultingActions}
}

func maintenanceReply(session *entity.SessionContext) entity.Reply {
	text := namePrefix(session) + "🔧 Ongoing support and maintenance keep projects healthy long after launch."
	return entity.Reply{Text: text, Actions: maintenanceActions}
}

// fallbackReply is the only reply without actions. Cold sessions get a
// generic pointer at the portfolio, ongoing sessions a context-aware
// nudge.
func fallbackReply(session *entity.SessionContext, coldStart bool) entity.Reply {
	if coldStart {
		return entity.Reply{
			Text: "I'm here to help you explore Michael's portfolio! Ask about projects, skills, education, or how to get in touch.",
		}
	}

	text := namePrefix(session) + "that's interesting! What aspect of Michael's portfolio can I dig into for you?"
	if phrase := interestsPhrase(session); phrase != "" {
		text += " We could look at more " + phrase + " work."
	}
	return entity.Reply{Text: text}
}

// namePrefix yields "Name, " once the visitor has introduced themselves.
func namePrefix(session *entity.SessionContext) string {
	if session.Name == "" {
		return ""
	}
	return session.Name + ", "
}

// interestsPhrase renders up to the first two recorded interests.
func interestsPhrase(session *entity.SessionContext) string {
	switch {
	case len(session.Interests) == 0:
		return ""
	case len(session.Interests) == 1:
		return session.Interests[0]
	default:
		return session.Interests[0] + " and " + session.Interests[1]
	}
}
