package internal

import (
	"fmt"
	"time"
)

// FixedClock returns a clock that starts at start and advances one second per call
func FixedClock(start time.Time) func() time.Time {
	t := start.Add(-time.Second)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// RecordingClient is a CommentClient that records every call it receives
type RecordingClient struct {
	Calls     []string
	Filters   []SidebarFilters
	NoElement bool
	DocErr    error
	Documents []string
}

// CommentElement returns the client itself unless NoElement is set
func (c *RecordingClient) CommentElement() CommentElement {
	c.Calls = append(c.Calls, "getCommentElement")
	if c.NoElement {
		return nil
	}
	return recordingElement{c}
}

// SetDocument records the association
func (c *RecordingClient) SetDocument(documentID string, opts DocumentOptions) error {
	c.Calls = append(c.Calls, fmt.Sprintf("setDocument:%s", documentID))
	if c.DocErr != nil {
		return c.DocErr
	}
	c.Documents = append(c.Documents, documentID+"|"+opts.DocumentName)
	return nil
}

// ElementCalls returns the recorded calls made on the comment element
func (c *RecordingClient) ElementCalls() []string {
	var out []string
	for _, call := range c.Calls {
		switch call {
		case "openCommentSidebar", "setCommentSidebarFilters", "enableFilterCommentsOnDom", "disableFilterCommentsOnDom":
			out = append(out, call)
		}
	}
	return out
}

type recordingElement struct{ c *RecordingClient }

func (e recordingElement) OpenCommentSidebar() {
	e.c.Calls = append(e.c.Calls, "openCommentSidebar")
}

func (e recordingElement) SetCommentSidebarFilters(filters SidebarFilters) {
	e.c.Calls = append(e.c.Calls, "setCommentSidebarFilters")
	e.c.Filters = append(e.c.Filters, filters)
}

func (e recordingElement) EnableFilterCommentsOnDom() {
	e.c.Calls = append(e.c.Calls, "enableFilterCommentsOnDom")
}

func (e recordingElement) DisableFilterCommentsOnDom() {
	e.c.Calls = append(e.c.Calls, "disableFilterCommentsOnDom")
}

// RecordingProvider is a CommentProvider around a RecordingClient
type RecordingProvider struct {
	Ready     bool
	Recording *RecordingClient
	Auths     []*AuthProvider
	// Trace interleaves auth updates with client calls in call order
	Trace []string
}

// NewRecordingProvider returns a ready provider with an empty recording client
func NewRecordingProvider() *RecordingProvider {
	return &RecordingProvider{Ready: true, Recording: &RecordingClient{}}
}

// SetAuthProvider records the auth configuration
func (p *RecordingProvider) SetAuthProvider(auth *AuthProvider) {
	p.Auths = append(p.Auths, auth)
	if auth == nil {
		p.Trace = append(p.Trace, "auth:none")
		return
	}
	p.Trace = append(p.Trace, "auth:"+auth.User.UserID)
}

// Client returns the recording client when Ready
func (p *RecordingProvider) Client() CommentClient {
	if !p.Ready {
		return nil
	}
	return tracingClient{p}
}

type tracingClient struct{ p *RecordingProvider }

func (t tracingClient) CommentElement() CommentElement {
	return t.p.Recording.CommentElement()
}

func (t tracingClient) SetDocument(documentID string, opts DocumentOptions) error {
	t.p.Trace = append(t.p.Trace, "setDocument:"+documentID)
	return t.p.Recording.SetDocument(documentID, opts)
}

// CreateTestPage builds a page on a recording provider with a fixed clock
func CreateTestPage() (*Page, *RecordingProvider) {
	provider := NewRecordingProvider()
	page := NewPage(provider, PageOptions{
		Organization: Organization{ID: "org-1", Name: "Acme Corporation"},
		Document:     Document{ID: "doc-filter-test", Name: "Filter Test Doc"},
		Now:          FixedClock(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)),
	})
	return page, provider
}

// CreateTestEntries returns a short activity log for exporter tests
func CreateTestEntries() []LogEntry {
	log := NewActivityLog(FixedClock(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)))
	log.Append("Ready. Please login to start.", SeverityInfo)
	log.Append("Logged in as Alice Johnson (user-1)", SeveritySuccess)
	log.Append("Please login first", SeverityWarn)
	log.Append("Comment element not available", SeverityError)
	return log.Entries()
}
