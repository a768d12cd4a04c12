package core

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator produces candidate document ids. Candidates may collide;
// NewID is responsible for rejecting taken ones.
type IDGenerator func() string

// ULID generates 128-bit ULIDs in their 26 character Crockford base32 form.
func ULID() string {
	return ulid.Make().String()
}

// UUID generates random (version 4) UUIDs.
func UUID() string {
	return uuid.NewString()
}

// NewID draws ids from generate until one is not taken.
func NewID(generate IDGenerator, taken func(id string) bool) string {
	id := generate()
	for id == "" || taken(id) {
		id = generate()
	}
	return id
}
