package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned when an action needs a logged-in identity
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrClientUnavailable is returned before the comment provider hands out a client
	ErrClientUnavailable = errors.New("comment client unavailable")
	// ErrCommentElementUnavailable is returned when the client has no comment element
	ErrCommentElementUnavailable = errors.New("comment element unavailable")
	// ErrNoCandidateSelected is returned by Login without a selected identity
	ErrNoCandidateSelected = errors.New("no identity selected")
	// ErrUnknownIdentity is returned for ids missing from the user directory
	ErrUnknownIdentity = errors.New("unknown identity")
)

// StoreError represents errors accessing the comment database
type StoreError struct {
	Path string
	Op   string // "open", "migrate", "insert", "query"
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ConfigError represents errors loading or validating configuration
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error [%s] %s: %v", e.Field, e.Path, e.Err)
	}
	return fmt.Sprintf("config error %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during activity log export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
