package internal

import (
	"fmt"
	"strings"

	"github.com/iksnae/comment-filter/internal/metrics"
)

// FilterState is the people filter state machine
type FilterState int

const (
	Unfiltered FilterState = iota
	Filtered
)

func (s FilterState) String() string {
	if s == Filtered {
		return "filtered"
	}
	return "unfiltered"
}

// FilterController applies and clears the people filter. The sidebar filter
// and DOM sync are always switched together.
type FilterController struct {
	state    FilterState
	loggedIn func() bool
	client   func() CommentClient
	log      *ActivityLog
}

// NewFilterController wires the controller to the session flag and the
// provider's client accessor.
func NewFilterController(loggedIn func() bool, client func() CommentClient, log *ActivityLog) *FilterController {
	return &FilterController{
		loggedIn: loggedIn,
		client:   client,
		log:      log,
	}
}

// State returns the current filter state
func (f *FilterController) State() FilterState {
	return f.state
}

// Applied reports whether the filter is on
func (f *FilterController) Applied() bool {
	return f.state == Filtered
}

func (f *FilterController) element(action string) (CommentElement, error) {
	if !f.loggedIn() {
		metrics.FilterTransitions.WithLabelValues(action, "not_authenticated").Inc()
		f.log.Append("Please login first", SeverityWarn)
		return nil, ErrNotAuthenticated
	}
	client := f.client()
	if client == nil {
		metrics.FilterTransitions.WithLabelValues(action, "client_unavailable").Inc()
		f.log.Append("Comment client not ready, try again shortly", SeverityWarn)
		return nil, ErrClientUnavailable
	}
	el := client.CommentElement()
	if el == nil {
		metrics.FilterTransitions.WithLabelValues(action, "element_unavailable").Inc()
		f.log.Append("Comment element not available", SeverityError)
		return nil, ErrCommentElementUnavailable
	}
	return el, nil
}

// ApplyFilter opens the sidebar, filters it to the included identities and
// syncs DOM visibility with that filter.
func (f *FilterController) ApplyFilter() error {
	el, err := f.element("apply")
	if err != nil {
		return err
	}

	// DOM sync only has a visible effect while the sidebar is open
	el.OpenCommentSidebar()
	f.log.Append("Sidebar opened (required for DOM filtering to work)", SeverityInfo)

	people := PeopleFilter()
	el.SetCommentSidebarFilters(SidebarFilters{People: people})
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.Name)
	}
	f.log.Append(fmt.Sprintf("Sidebar filter set for %d users: %s", len(people), strings.Join(names, ", ")), SeverityInfo)

	el.EnableFilterCommentsOnDom()
	f.log.Append("filterCommentsOnDom enabled - DOM now synced with sidebar filter", SeveritySuccess)

	f.state = Filtered
	metrics.FilterTransitions.WithLabelValues("apply", "ok").Inc()
	f.log.Append(fmt.Sprintf("Only comments from %s through %s should be visible now", people[0].UserID, people[len(people)-1].UserID), SeveritySuccess)
	return nil
}

// ClearFilter empties the people filter and turns DOM sync off
func (f *FilterController) ClearFilter() error {
	el, err := f.element("clear")
	if err != nil {
		return err
	}

	el.SetCommentSidebarFilters(SidebarFilters{})
	el.DisableFilterCommentsOnDom()
	f.state = Unfiltered
	metrics.FilterTransitions.WithLabelValues("clear", "ok").Inc()
	f.log.Append("Filters cleared - all comments are now visible", SeveritySuccess)
	return nil
}

// reset forgets the applied state without touching the client
func (f *FilterController) reset() {
	f.state = Unfiltered
}
