package entity

// ActionKind is the closed action vocabulary shared with the UI
// dispatcher. Adding a kind is a breaking change for clients.
type ActionKind string

const (
	ActionNavigate ActionKind = "navigate"
	ActionExternal ActionKind = "external"
	ActionEmail    ActionKind = "email"
	ActionDownload ActionKind = "download"
)

// Action is a suggested next step rendered as a clickable affordance.
// The UI renders actions in array order.
type Action struct {
	Label  string     `json:"label"`
	Action ActionKind `json:"action"`
	Data   string     `json:"data,omitempty"`
	Icon   string     `json:"icon,omitempty"`
}

// Reply is what the responder produces for one utterance. Remote and
// local responders emit the same shape.
type Reply struct {
	Text    string   `json:"text"`
	Actions []Action `json:"actions,omitempty"`
}
