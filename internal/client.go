package internal

// CommentElement is the part of the comment client the filter controls use
type CommentElement interface {
	OpenCommentSidebar()
	SetCommentSidebarFilters(filters SidebarFilters)
	EnableFilterCommentsOnDom()
	DisableFilterCommentsOnDom()
}

// CommentClient is the handle obtained from the comment provider
type CommentClient interface {
	// CommentElement may return nil while the client is still loading
	CommentElement() CommentElement
	SetDocument(documentID string, opts DocumentOptions) error
}

// CommentProvider owns authentication and hands out the client handle
type CommentProvider interface {
	SetAuthProvider(auth *AuthProvider)
	// Client returns nil until the provider is initialised
	Client() CommentClient
}

// CommentFeed is implemented by clients that can list what each surface shows
type CommentFeed interface {
	SidebarOpen() bool
	DomComments() ([]Comment, error)
	SidebarComments() ([]Comment, error)
}

// CommentPoster is implemented by clients that accept new comments
type CommentPoster interface {
	AddComment(body string) (Comment, error)
}
