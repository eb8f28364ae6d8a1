package comments

import (
	"errors"

	"github.com/iksnae/comment-filter/internal"
)

var errNoDocument = errors.New("no document set")

// Element holds sidebar and DOM filter state
type Element struct {
	sidebarOpen bool
	domSync     bool
	filters     internal.SidebarFilters
}

// OpenCommentSidebar opens the sidebar panel
func (e *Element) OpenCommentSidebar() {
	e.sidebarOpen = true
}

// CloseCommentSidebar closes the sidebar panel
func (e *Element) CloseCommentSidebar() {
	e.sidebarOpen = false
}

// SetCommentSidebarFilters replaces the sidebar filters
func (e *Element) SetCommentSidebarFilters(filters internal.SidebarFilters) {
	people := make([]internal.PeopleFilterEntry, len(filters.People))
	copy(people, filters.People)
	e.filters = internal.SidebarFilters{People: people}
}

// ClearCommentSidebarFilters drops every sidebar filter
func (e *Element) ClearCommentSidebarFilters() {
	e.filters = internal.SidebarFilters{}
}

// EnableFilterCommentsOnDom syncs DOM visibility with the sidebar filter
func (e *Element) EnableFilterCommentsOnDom() {
	e.domSync = true
}

// DisableFilterCommentsOnDom shows every comment marker again
func (e *Element) DisableFilterCommentsOnDom() {
	e.domSync = false
}

// SidebarOpen reports whether the sidebar is open
func (e *Element) SidebarOpen() bool { return e.sidebarOpen }

// DomSync reports whether DOM visibility follows the sidebar filter
func (e *Element) DomSync() bool { return e.domSync }

// People returns the active people filter
func (e *Element) People() []internal.PeopleFilterEntry {
	out := make([]internal.PeopleFilterEntry, len(e.filters.People))
	copy(out, e.filters.People)
	return out
}
