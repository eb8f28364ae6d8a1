// Package comments is a local, SQLite-backed implementation of the comment
// client the demo page drives. It mirrors the hosted SDK's sidebar filter and
// DOM sync behaviour closely enough to watch the filter work offline.
package comments

import (
	"fmt"

	"github.com/iksnae/comment-filter/internal"
	"github.com/iksnae/comment-filter/internal/store"
)

// Provider hands out the client once initialised and tracks the acting user
type Provider struct {
	store  *store.Store
	apiKey string
	auth   *internal.AuthProvider
	client *Client
}

// NewProvider creates an uninitialised provider
func NewProvider(s *store.Store, apiKey string) *Provider {
	return &Provider{store: s, apiKey: apiKey}
}

// Init validates the api key and the store, then makes the client available
func (p *Provider) Init() error {
	if p.apiKey == "" {
		return fmt.Errorf("%w: api key is empty", internal.ErrClientUnavailable)
	}
	if p.store == nil {
		return fmt.Errorf("%w: no comment store", internal.ErrClientUnavailable)
	}
	if err := p.store.Ping(); err != nil {
		return fmt.Errorf("%w: %v", internal.ErrClientUnavailable, err)
	}
	if p.client == nil {
		p.client = &Client{provider: p}
		p.client.element = &Element{}
	}
	internal.LogDebug("comment provider initialised")
	return nil
}

// SetAuthProvider switches the acting user; nil runs unauthenticated
func (p *Provider) SetAuthProvider(auth *internal.AuthProvider) {
	p.auth = auth
	if auth == nil {
		internal.LogDebug("comment provider unauthenticated")
		return
	}
	internal.LogDebug("comment provider user %s (org %s)", auth.User.UserID, auth.User.OrganizationID)
}

// Auth returns the current auth configuration
func (p *Provider) Auth() *internal.AuthProvider {
	return p.auth
}

// Client returns the client handle, or nil before Init
func (p *Provider) Client() internal.CommentClient {
	if p.client == nil {
		return nil
	}
	return p.client
}

// LocalClient returns the concrete client, or nil before Init
func (p *Provider) LocalClient() *Client {
	return p.client
}
