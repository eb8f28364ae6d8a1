package internal

import (
	"fmt"
	"time"
)

// PageTitle is shown in the header bar
const PageTitle = "Comment User Filter Demo"

// DocumentSetup associates the comment client with the demo document. It
// runs only while a session is active, once per login.
type DocumentSetup struct {
	doc    Document
	client func() CommentClient
	log    *ActivityLog
	runs   int
}

// Associate registers the document with the client
func (d *DocumentSetup) Associate() error {
	client := d.client()
	if client == nil {
		d.log.Append("Comment client not ready, document not set", SeverityWarn)
		return ErrClientUnavailable
	}
	if err := client.SetDocument(d.doc.ID, DocumentOptions{DocumentName: d.doc.Name}); err != nil {
		d.log.Append(fmt.Sprintf("Failed to set document %s: %v", d.doc.ID, err), SeverityError)
		return err
	}
	d.runs++
	LogDebug("document %s associated (run %d)", d.doc.ID, d.runs)
	return nil
}

// Runs returns how many times the document was associated
func (d *DocumentSetup) Runs() int {
	return d.runs
}

// PageOptions configure a Page
type PageOptions struct {
	Organization Organization
	Document     Document
	Now          func() time.Time
}

// Page composes the session, the filter controls, the document setup and the
// activity log around one comment provider.
type Page struct {
	opts     PageOptions
	provider CommentProvider
	log      *ActivityLog
	session  *SessionController
	filter   *FilterController
	docSetup *DocumentSetup
}

// NewPage builds a logged-out page with the login modal open
func NewPage(provider CommentProvider, opts PageOptions) *Page {
	log := NewActivityLog(opts.Now)
	session := NewSessionController(opts.Organization, log)
	p := &Page{
		opts:     opts,
		provider: provider,
		log:      log,
		session:  session,
	}
	p.filter = NewFilterController(session.LoggedIn, provider.Client, log)
	p.docSetup = &DocumentSetup{doc: opts.Document, client: provider.Client, log: log}

	provider.SetAuthProvider(nil)
	log.Append("Ready. Please login to start.", SeverityInfo)
	return p
}

// Log returns the page's activity log
func (p *Page) Log() *ActivityLog { return p.log }

// Session returns the session controller
func (p *Page) Session() *SessionController { return p.session }

// Filter returns the filter controller
func (p *Page) Filter() *FilterController { return p.filter }

// DocumentSetup returns the document association unit
func (p *Page) DocumentSetup() *DocumentSetup { return p.docSetup }

// SelectCandidate forwards the login form selection
func (p *Page) SelectCandidate(userID string) error {
	return p.session.SelectCandidate(userID)
}

// Login logs the candidate in, hands the identity to the provider and then
// associates the document.
func (p *Page) Login() error {
	if _, err := p.session.Login(); err != nil {
		return err
	}
	p.provider.SetAuthProvider(p.session.AuthProvider())
	if err := p.docSetup.Associate(); err != nil {
		LogWarn("document association failed: %v", err)
	}
	return nil
}

// Logout clears an applied filter, then ends the session
func (p *Page) Logout() {
	if !p.session.LoggedIn() {
		return
	}
	if p.filter.Applied() {
		if err := p.filter.ClearFilter(); err != nil {
			p.filter.reset()
		}
	}
	p.session.Logout()
	p.provider.SetAuthProvider(nil)
}

// OpenLoginModal shows the login modal
func (p *Page) OpenLoginModal() { p.session.OpenLoginModal() }

// CloseLoginModal hides the login modal
func (p *Page) CloseLoginModal() { p.session.CloseLoginModal() }

// ApplyFilter applies the five-user people filter
func (p *Page) ApplyFilter() error { return p.filter.ApplyFilter() }

// ClearFilter removes the people filter
func (p *Page) ClearFilter() error { return p.filter.ClearFilter() }

// ToggleSidebar opens or closes the sidebar panel when the client supports it
func (p *Page) ToggleSidebar() {
	client := p.provider.Client()
	if client == nil {
		return
	}
	t, ok := client.(interface {
		SidebarOpen() bool
		CloseCommentSidebar()
	})
	if !ok {
		return
	}
	if t.SidebarOpen() {
		t.CloseCommentSidebar()
		return
	}
	if el := client.CommentElement(); el != nil {
		el.OpenCommentSidebar()
	}
}

// AddComment posts body as the active identity
func (p *Page) AddComment(body string) error {
	if !p.session.LoggedIn() {
		p.log.Append("Please login first", SeverityWarn)
		return ErrNotAuthenticated
	}
	client := p.provider.Client()
	if client == nil {
		p.log.Append("Comment client not ready, try again shortly", SeverityWarn)
		return ErrClientUnavailable
	}
	poster, ok := client.(CommentPoster)
	if !ok {
		p.log.Append("This client does not accept comments", SeverityError)
		return fmt.Errorf("client %T cannot post comments", client)
	}
	c, err := poster.AddComment(body)
	if err != nil {
		p.log.Append(fmt.Sprintf("Failed to add comment: %v", err), SeverityError)
		return err
	}
	p.log.Append(fmt.Sprintf("Comment #%d added by %s", c.ID, c.AuthorName), SeverityInfo)
	return nil
}

// UserCard is one tile of the user overview grid
type UserCard struct {
	Identity
	InFilter bool
}

// Badge is SHOW for included users and HIDE for the rest
func (c UserCard) Badge() string {
	if c.InFilter {
		return "SHOW"
	}
	return "HIDE"
}

// PageView is a read-only snapshot for the rendering surfaces
type PageView struct {
	Title           string
	Organization    Organization
	Document        Document
	ModalVisible    bool
	Candidate       string
	LoggedIn        bool
	User            Identity
	FilterApplied   bool
	ClientReady     bool
	Users           []UserCard
	SidebarOpen     bool
	DomComments     []Comment
	SidebarComments []Comment
	Log             []LogEntry
}

// View snapshots the page state
func (p *Page) View() PageView {
	v := PageView{
		Title:         PageTitle,
		Organization:  p.opts.Organization,
		Document:      p.opts.Document,
		ModalVisible:  p.session.ModalVisible(),
		Candidate:     p.session.Candidate(),
		LoggedIn:      p.session.LoggedIn(),
		FilterApplied: p.filter.Applied(),
		Log:           p.log.Entries(),
	}
	v.User, _ = p.session.Active()
	for _, u := range AllUsers() {
		v.Users = append(v.Users, UserCard{Identity: u, InFilter: IsIncluded(u.UserID)})
	}

	client := p.provider.Client()
	v.ClientReady = client != nil
	if feed, ok := client.(CommentFeed); ok && v.LoggedIn {
		var err error
		if v.DomComments, err = feed.DomComments(); err != nil {
			LogWarn("failed to load comments: %v", err)
		}
		v.SidebarOpen = feed.SidebarOpen()
		if v.SidebarOpen {
			if v.SidebarComments, err = feed.SidebarComments(); err != nil {
				LogWarn("failed to load sidebar comments: %v", err)
			}
		}
	}
	return v
}
