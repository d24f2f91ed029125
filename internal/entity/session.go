package entity

// SessionContext accumulates what is known about one chat session. The
// server never stores it: the caller round-trips it on every request.
// All collections only grow and Name is write-once.
type SessionContext struct {
	SessionID           string   `json:"sessionId"`
	Name                string   `json:"name,omitempty"`
	Interests           []string `json:"interests"`
	VisitedPages        []string `json:"visitedPages"`
	AskedAbout          []string `json:"askedAbout"`
	ConversationHistory []string `json:"conversationHistory"`
}

const returningVisitorThreshold = 3

func NewSessionContext(sessionID string) *SessionContext {
	return &SessionContext{
		SessionID:           sessionID,
		Interests:           []string{},
		VisitedPages:        []string{},
		AskedAbout:          []string{},
		ConversationHistory: []string{},
	}
}

func (c *SessionContext) RecordUtterance(text string) {
	c.ConversationHistory = append(c.ConversationHistory, text)
}

// RecordTopic adds a topic with set semantics, preserving first-seen order.
func (c *SessionContext) RecordTopic(topic string) {
	for _, asked := range c.AskedAbout {
		if asked == topic {
			return
		}
	}
	c.AskedAbout = append(c.AskedAbout, topic)
}

// RecordInterests unions the found interests into the session,
// preserving insertion order.
func (c *SessionContext) RecordInterests(found []string) {
	for _, interest := range found {
		exists := false
		for _, known := range c.Interests {
			if known == interest {
				exists = true
				break
			}
		}
		if !exists {
			c.Interests = append(c.Interests, interest)
		}
	}
}

func (c *SessionContext) RecordVisitedPage(page string) {
	for _, visited := range c.VisitedPages {
		if visited == page {
			return
		}
	}
	c.VisitedPages = append(c.VisitedPages, page)
}

// TrySetName sets the visitor name only if it is still unset. Reports
// whether the candidate was taken.
func (c *SessionContext) TrySetName(candidate string) bool {
	if c.Name != "" || candidate == "" {
		return false
	}
	c.Name = candidate
	return true
}

func (c *SessionContext) HasAskedBefore(topic string) bool {
	for _, asked := range c.AskedAbout {
		if asked == topic {
			return true
		}
	}
	return false
}

func (c *SessionContext) IsReturningVisitor() bool {
	return len(c.ConversationHistory) > returningVisitorThreshold
}
