package server

import (
	"sync"

	"github.com/drblallo/odl/ast"
	"github.com/drblallo/odl/parser"
	"github.com/drblallo/odl/token"
)

// Document holds the content and parse result for a single open file.
// Unlike a recovering parser, ParseDocument stops at the first error, so
// a Document carries at most one error at a time.
type Document struct {
	URI     string
	Content string
	File    *ast.Document
	Err     error
	ErrLoc  token.SourceLocation
}

// analyze parses the document content, replacing any previous result.
func (d *Document) analyze() {
	d.File, d.ErrLoc, d.Err = parser.ParseDocumentWithLocation(d.Content)
}

// DocumentStore is a thread-safe store of open documents.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Open adds or replaces a document in the store and analyzes it.
func (s *DocumentStore) Open(uri, content string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := &Document{URI: uri, Content: content}
	doc.analyze()
	s.docs[uri] = doc
	return doc
}

// Update updates the content of an existing document and re-analyzes it.
func (s *DocumentStore) Update(uri, content string) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		doc = &Document{URI: uri}
		s.docs[uri] = doc
	}
	doc.Content = content
	doc.analyze()
	return doc
}

// Get returns a document by URI, or nil if it isn't open.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}
