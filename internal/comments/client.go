package comments

import (
	"github.com/iksnae/comment-filter/internal"
	"github.com/iksnae/comment-filter/internal/metrics"
)

// Client is the local comment client handle
type Client struct {
	provider *Provider
	element  *Element
	document *internal.Document
}

// CommentElement returns the element that controls sidebar and DOM filtering
func (c *Client) CommentElement() internal.CommentElement {
	if c.element == nil {
		return nil
	}
	return c.element
}

// Element returns the concrete comment element
func (c *Client) Element() *Element {
	return c.element
}

// SetDocument associates the client with documentID. The provider must be
// authenticated first.
func (c *Client) SetDocument(documentID string, opts internal.DocumentOptions) error {
	if c.provider.auth == nil {
		return internal.ErrNotAuthenticated
	}
	doc := internal.Document{ID: documentID, Name: opts.DocumentName}
	if doc.Name == "" {
		doc.Name = documentID
	}
	if err := c.provider.store.UpsertDocument(doc); err != nil {
		return err
	}
	c.document = &doc
	internal.LogDebug("document set to %s (%s)", doc.ID, doc.Name)
	return nil
}

// Document returns the associated document, if any
func (c *Client) Document() (internal.Document, bool) {
	if c.document == nil {
		return internal.Document{}, false
	}
	return *c.document, true
}

// AddComment posts body on the current document as the authenticated user
func (c *Client) AddComment(body string) (internal.Comment, error) {
	auth := c.provider.auth
	if auth == nil {
		return internal.Comment{}, internal.ErrNotAuthenticated
	}
	if c.document == nil {
		return internal.Comment{}, errNoDocument
	}
	author := internal.Identity{
		UserID: auth.User.UserID,
		Name:   auth.User.Name,
		Email:  auth.User.Email,
	}
	comment, err := c.provider.store.AddComment(c.document.ID, author, body)
	if err != nil {
		return internal.Comment{}, err
	}
	metrics.CommentsPosted.Inc()
	return comment, nil
}

// Comments returns every comment on the current document
func (c *Client) Comments() ([]internal.Comment, error) {
	if c.document == nil {
		return nil, nil
	}
	return c.provider.store.ListComments(c.document.ID)
}

// SidebarOpen reports whether the sidebar panel is open
func (c *Client) SidebarOpen() bool {
	return c.element.sidebarOpen
}

// CloseCommentSidebar closes the sidebar panel
func (c *Client) CloseCommentSidebar() {
	c.element.CloseCommentSidebar()
}

// SidebarComments returns the comments the sidebar lists under its filter
func (c *Client) SidebarComments() ([]internal.Comment, error) {
	all, err := c.Comments()
	if err != nil {
		return nil, err
	}
	return filterByPeople(all, c.element.filters.People), nil
}

// DomComments returns the comment markers visible on the document. The
// sidebar filter is mirrored only while DOM sync is on and the sidebar is open.
func (c *Client) DomComments() ([]internal.Comment, error) {
	all, err := c.Comments()
	if err != nil {
		return nil, err
	}
	if !c.element.domSync || !c.element.sidebarOpen {
		return all, nil
	}
	return filterByPeople(all, c.element.filters.People), nil
}

func filterByPeople(comments []internal.Comment, people []internal.PeopleFilterEntry) []internal.Comment {
	if len(people) == 0 {
		return comments
	}
	allowed := make(map[string]bool, len(people))
	for _, p := range people {
		allowed[p.UserID] = true
	}
	out := make([]internal.Comment, 0, len(comments))
	for _, c := range comments {
		if allowed[c.AuthorID] {
			out = append(out, c)
		}
	}
	return out
}
