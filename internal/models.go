package internal

import "time"

// Identity is a user that can be impersonated through the login modal
type Identity struct {
	UserID    string `json:"userId" yaml:"user_id"`
	Name      string `json:"name" yaml:"name"`
	Email     string `json:"email" yaml:"email"`
	AvatarURL string `json:"photoUrl" yaml:"avatar_url"`
	Color     string `json:"color" yaml:"color"`
}

// Organization the demo users belong to
type Organization struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Document is the comment target the session is associated with
type Document struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// DocumentOptions is passed along with the document id on association
type DocumentOptions struct {
	DocumentName string `json:"documentName"`
}

// AuthUser is the user block of the provider auth configuration
type AuthUser struct {
	UserID         string `json:"userId"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhotoURL       string `json:"photoUrl"`
}

// AuthProvider is handed to the comment provider. A nil *AuthProvider means
// the provider runs unauthenticated.
type AuthProvider struct {
	User AuthUser `json:"user"`
}

// PeopleFilterEntry identifies one user in a sidebar people filter
type PeopleFilterEntry struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// SidebarFilters is the filter payload for the comment sidebar. The zero
// value clears every filter.
type SidebarFilters struct {
	People []PeopleFilterEntry `json:"people,omitempty"`
}

// Comment is a single comment left on a document
type Comment struct {
	ID          int64     `json:"id" yaml:"id"`
	DocumentID  string    `json:"document_id" yaml:"document_id"`
	AuthorID    string    `json:"author_id" yaml:"author_id"`
	AuthorName  string    `json:"author_name" yaml:"author_name"`
	AuthorEmail string    `json:"author_email" yaml:"author_email"`
	Body        string    `json:"body" yaml:"body"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Severity of an activity log entry
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarn    Severity = "warn"
	SeverityError   Severity = "error"
)

// LogEntry is one line of the activity log
type LogEntry struct {
	Message   string    `json:"message" yaml:"message"`
	Severity  Severity  `json:"type" yaml:"type"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Time      string    `json:"time" yaml:"time"` // display form, 15:04:05
}
