// Package store persists documents and comments for the local comment client.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/iksnae/comment-filter/internal"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS comments (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	document_id  TEXT NOT NULL,
	author_id    TEXT NOT NULL,
	author_name  TEXT NOT NULL,
	author_email TEXT NOT NULL,
	body         TEXT NOT NULL,
	created_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_comments_document ON comments(document_id, created_at);
`

// Store is a SQLite-backed comment store
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens (creating if needed) the database at path and applies the schema.
// ":memory:" gives a private in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &internal.StoreError{Path: path, Op: "open", Err: err}
	}
	// a second connection to :memory: would see an empty database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &internal.StoreError{Path: path, Op: "open", Err: fmt.Errorf("database ping failed: %w", err)}
	}

	s := New(db, path)
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already open database. The schema is not applied.
func New(db *sql.DB, path string) *Store {
	return &Store{db: db, path: path, now: time.Now}
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return &internal.StoreError{Path: s.path, Op: "migrate", Err: err}
	}
	return nil
}

// Path returns the database location
func (s *Store) Path() string {
	return s.path
}

// Ping checks the connection
func (s *Store) Ping() error {
	if err := s.db.Ping(); err != nil {
		return &internal.StoreError{Path: s.path, Op: "ping", Err: err}
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertDocument records a document, renaming it if it exists
func (s *Store) UpsertDocument(doc internal.Document) error {
	_, err := s.db.Exec(
		"INSERT INTO documents (id, name) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET name = excluded.name",
		doc.ID, doc.Name,
	)
	if err != nil {
		return &internal.StoreError{Path: s.path, Op: "insert", Err: err}
	}
	return nil
}

// GetDocument returns a document by id
func (s *Store) GetDocument(id string) (internal.Document, bool, error) {
	var doc internal.Document
	err := s.db.QueryRow("SELECT id, name FROM documents WHERE id = ?", id).Scan(&doc.ID, &doc.Name)
	if err == sql.ErrNoRows {
		return internal.Document{}, false, nil
	}
	if err != nil {
		return internal.Document{}, false, &internal.StoreError{Path: s.path, Op: "query", Err: err}
	}
	return doc, true, nil
}

// AddComment stores a comment by author on documentID
func (s *Store) AddComment(documentID string, author internal.Identity, body string) (internal.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return internal.Comment{}, fmt.Errorf("comment body is empty")
	}
	c := internal.Comment{
		DocumentID:  documentID,
		AuthorID:    author.UserID,
		AuthorName:  author.Name,
		AuthorEmail: author.Email,
		Body:        body,
		CreatedAt:   s.now().UTC(),
	}
	res, err := s.db.Exec(
		"INSERT INTO comments (document_id, author_id, author_name, author_email, body, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		c.DocumentID, c.AuthorID, c.AuthorName, c.AuthorEmail, c.Body, c.CreatedAt.UnixNano(),
	)
	if err != nil {
		return internal.Comment{}, &internal.StoreError{Path: s.path, Op: "insert", Err: err}
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return internal.Comment{}, &internal.StoreError{Path: s.path, Op: "insert", Err: err}
	}
	return c, nil
}

// ListComments returns the comments of documentID in creation order
func (s *Store) ListComments(documentID string) ([]internal.Comment, error) {
	rows, err := s.db.Query(
		"SELECT id, document_id, author_id, author_name, author_email, body, created_at FROM comments WHERE document_id = ? ORDER BY created_at, id",
		documentID,
	)
	if err != nil {
		return nil, &internal.StoreError{Path: s.path, Op: "query", Err: err}
	}
	defer rows.Close()

	var comments []internal.Comment
	for rows.Next() {
		var c internal.Comment
		var created int64
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.AuthorID, &c.AuthorName, &c.AuthorEmail, &c.Body, &created); err != nil {
			return nil, &internal.StoreError{Path: s.path, Op: "scan", Err: err}
		}
		c.CreatedAt = time.Unix(0, created).UTC()
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &internal.StoreError{Path: s.path, Op: "query", Err: fmt.Errorf("rows iteration error: %w", err)}
	}
	return comments, nil
}

// CountByAuthor returns the number of comments per author id on documentID
func (s *Store) CountByAuthor(documentID string) (map[string]int, error) {
	rows, err := s.db.Query("SELECT author_id, COUNT(*) FROM comments WHERE document_id = ? GROUP BY author_id", documentID)
	if err != nil {
		return nil, &internal.StoreError{Path: s.path, Op: "query", Err: err}
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, &internal.StoreError{Path: s.path, Op: "scan", Err: err}
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

// DeleteDocumentComments removes every comment on documentID
func (s *Store) DeleteDocumentComments(documentID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM comments WHERE document_id = ?", documentID)
	if err != nil {
		return 0, &internal.StoreError{Path: s.path, Op: "delete", Err: err}
	}
	return res.RowsAffected()
}
