package core

import (
	"slices"
	"strings"
)

type filter func(request SearchRequest, documents []Document) []Document

// filters run in sequence, each narrowing the documents left by the previous one.
var filters = []filter{
	filterByTitlePrefixes,
	filterByContents,
	filterByAuthorIDs,
	filterByCreated,
}

// Filter returns the documents matching every criterion set on the request.
// The result is never nil.
func Filter(request SearchRequest, documents []Document) []Document {
	result := make([]Document, len(documents))
	copy(result, documents)
	for _, f := range filters {
		result = f(request, result)
	}
	return result
}

// IsEmpty reports whether the request carries no criteria at all.
func (r SearchRequest) IsEmpty() bool {
	return len(r.TitlePrefixes) == 0 &&
		len(r.ContainsContents) == 0 &&
		len(r.AuthorIDs) == 0 &&
		r.CreatedFrom == nil &&
		r.CreatedTo == nil
}

// Title prefixes match anywhere in the title, not only at its start.
func filterByTitlePrefixes(request SearchRequest, documents []Document) []Document {
	for _, prefix := range request.TitlePrefixes {
		documents = keep(documents, func(d Document) bool {
			return strings.Contains(d.Title, prefix)
		})
	}
	return documents
}

// ContainsContents is matched against the title rather than the content.
// Callers written against the first release expect title matches here;
// pointing it at Content would change their results.
func filterByContents(request SearchRequest, documents []Document) []Document {
	for _, contents := range request.ContainsContents {
		documents = keep(documents, func(d Document) bool {
			return strings.Contains(d.Title, contents)
		})
	}
	return documents
}

func filterByAuthorIDs(request SearchRequest, documents []Document) []Document {
	if len(request.AuthorIDs) == 0 {
		return documents
	}
	return keep(documents, func(d Document) bool {
		return slices.Contains(request.AuthorIDs, d.Author.ID)
	})
}

// Both bounds are exclusive.
func filterByCreated(request SearchRequest, documents []Document) []Document {
	if from := request.CreatedFrom; from != nil {
		documents = keep(documents, func(d Document) bool {
			return d.Created.After(*from)
		})
	}
	if to := request.CreatedTo; to != nil {
		documents = keep(documents, func(d Document) bool {
			return d.Created.Before(*to)
		})
	}
	return documents
}

func keep(documents []Document, pred func(Document) bool) []Document {
	out := make([]Document, 0, len(documents))
	for _, d := range documents {
		if pred(d) {
			out = append(out, d)
		}
	}
	return out
}
