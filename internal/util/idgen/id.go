package idgen

import (
	"github.com/google/uuid"
)

// Source produces identifiers for newly inserted rows.
type Source func() uuid.UUID

func ID() uuid.UUID {
	// Version 7 keeps ids roughly ordered by creation time, like a ULID, which keeps
	// sqlite primary key indexes compact. Fall back to a random v4 id if the clock
	// sequence cannot be produced.
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// Sequence returns a Source that yields the given ids in order and then
// falls back to ID.
func Sequence(ids ...uuid.UUID) Source {
	pos := 0
	return func() uuid.UUID {
		if pos < len(ids) {
			id := ids[pos]
			pos++
			return id
		}
		return ID()
	}
}
