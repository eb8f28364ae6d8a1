package testutil

import (
	"path/filepath"
	"testing"

	"github.com/iksnae/comment-filter/internal"
	"github.com/iksnae/comment-filter/internal/store"
)

// TestDocument is the document the fixtures comment on
var TestDocument = internal.Document{ID: "doc-filter-test", Name: "Filter Test Doc"}

// CreateInMemoryStore opens an in-memory comment store for testing
func CreateInMemoryStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// CreateFileStore creates a comment database in a temp dir and returns its path.
// The store is closed again so commands under test can open it themselves.
func CreateFileStore(t *testing.T, seed bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "comments.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	if seed {
		SeedOneCommentPerUser(t, s)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Failed to close store: %v", err)
	}
	return path
}

// SeedOneCommentPerUser leaves one comment from each directory user on TestDocument
func SeedOneCommentPerUser(t *testing.T, s *store.Store) []internal.Comment {
	t.Helper()
	if err := s.UpsertDocument(TestDocument); err != nil {
		t.Fatalf("Failed to insert document: %v", err)
	}
	var comments []internal.Comment
	for _, u := range internal.AllUsers() {
		c, err := s.AddComment(TestDocument.ID, u, "Comment from "+u.Name)
		if err != nil {
			t.Fatalf("Failed to insert comment for %s: %v", u.UserID, err)
		}
		comments = append(comments, c)
	}
	return comments
}
