package memory

import (
	"document-catalog/core"

	"github.com/sirupsen/logrus"
)

// DocumentStore keeps documents in a map keyed by id.
type DocumentStore struct {
	documents  map[string]core.Document
	generateID core.IDGenerator
}

var _ core.DocumentStore = (*DocumentStore)(nil)

type Option func(*DocumentStore)

// WithIDGenerator replaces the default ULID generator.
func WithIDGenerator(generate core.IDGenerator) Option {
	return func(s *DocumentStore) {
		s.generateID = generate
	}
}

// NewDocumentStore returns an empty store. It is not safe for concurrent use.
func NewDocumentStore(opts ...Option) *DocumentStore {
	s := &DocumentStore{
		documents:  make(map[string]core.Document),
		generateID: core.ULID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DocumentStore) Save(document core.Document) core.Document {
	if document.ID == "" {
		document.ID = core.NewID(s.generateID, s.exists)
	}
	log := logrus.WithField("document_id", document.ID)

	if existing, ok := s.documents[document.ID]; ok {
		document.Created = existing.Created
		log.Debug("Document replaced")
	} else {
		log.Debug("Document created")
	}
	s.documents[document.ID] = document
	return document
}

func (s *DocumentStore) Search(request core.SearchRequest) []core.Document {
	documents := make([]core.Document, 0, len(s.documents))
	for _, d := range s.documents {
		documents = append(documents, d)
	}
	unfiltered := request.IsEmpty()
	result := documents
	if !unfiltered {
		result = core.Filter(request, documents)
	}

	logrus.WithFields(logrus.Fields{
		"scanned":    len(documents),
		"matched":    len(result),
		"unfiltered": unfiltered,
	}).Debug("Documents searched")
	return result
}

func (s *DocumentStore) FindByID(id string) (core.Document, bool) {
	document, ok := s.documents[id]
	if !ok {
		logrus.WithField("document_id", id).Debug("Document with specified ID not found")
	}
	return document, ok
}

// Len returns the number of stored documents.
func (s *DocumentStore) Len() int {
	return len(s.documents)
}

func (s *DocumentStore) exists(id string) bool {
	_, ok := s.documents[id]
	return ok
}
