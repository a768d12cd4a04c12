package core

import (
	"errors"
	"time"
)

// ErrNotFound is returned by callers that need to turn a missed lookup into an error.
var ErrNotFound = errors.New("document not found")

type (
	Author struct {
		ID   string `json:"id" yaml:"id"`
		Name string `json:"name" yaml:"name"`
	}

	Document struct {
		ID      string    `json:"id" yaml:"id"`
		Title   string    `json:"title" yaml:"title"`
		Content string    `json:"content" yaml:"content"`
		Author  Author    `json:"author" yaml:"author"`
		Created time.Time `json:"created" yaml:"created"`
	}

	// SearchRequest holds optional search criteria. A nil or empty slice and a nil
	// bound mean "no constraint", so the zero value matches every document.
	SearchRequest struct {
		TitlePrefixes    []string   `json:"titlePrefixes,omitempty" yaml:"titlePrefixes,omitempty"`
		ContainsContents []string   `json:"containsContents,omitempty" yaml:"containsContents,omitempty"`
		AuthorIDs        []string   `json:"authorIds,omitempty" yaml:"authorIds,omitempty"`
		CreatedFrom      *time.Time `json:"createdFrom,omitempty" yaml:"createdFrom,omitempty"`
		CreatedTo        *time.Time `json:"createdTo,omitempty" yaml:"createdTo,omitempty"`
	}

	DocumentStore interface {
		// Save upserts the document by ID, generating one when it is empty.
		// An existing document keeps its Created timestamp.
		Save(document Document) Document
		Search(request SearchRequest) []Document
		FindByID(id string) (Document, bool)
	}
)
