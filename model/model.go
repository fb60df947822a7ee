// Package model contains abstract data models.
package model

// Commit holds the answers that make up a commit message. Type is the
// selected commit type value, including any emoji glyph.
type Commit struct {
	Type     string `json:"type"`
	Scope    string `json:"scope,omitempty"`
	Subject  string `json:"subject"`
	Body     string `json:"body,omitempty"`
	Breaking string `json:"breaking,omitempty"`
	Footer   string `json:"footer,omitempty"`
}

// Header returns the first line of the commit message.
func (c *Commit) Header() string {
	if c.Scope == "" {
		return c.Type + ": " + c.Subject
	}
	return c.Type + "(" + c.Scope + "): " + c.Subject
}

// IsBreaking reports whether the commit declares a breaking change.
func (c *Commit) IsBreaking() bool {
	return c.Breaking != ""
}
