package futsal

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Ref identifies an entity that may not be stored yet. An unassigned Ref
// makes AddEdit operations generate a new id and insert; an existing Ref
// makes them update the row with that id.
type Ref struct {
	id    uuid.UUID
	valid bool
}

func Unassigned() Ref { return Ref{} }

func Existing(id uuid.UUID) Ref {
	return Ref{id: id, valid: true}
}

func (r Ref) ID() (uuid.UUID, bool) {
	return r.id, r.valid
}

func (r Ref) IsAssigned() bool { return r.valid }

func (r Ref) String() string {
	if !r.valid {
		return ""
	}
	return r.id.String()
}

// ParseRef turns user input into a Ref. An empty string yields an unassigned Ref.
func ParseRef(s string) (Ref, error) {
	if strings.TrimSpace(s) == "" {
		return Unassigned(), nil
	}
	id, err := ParseID("entity", s)
	if err != nil {
		return Ref{}, err
	}
	return Existing(id), nil
}

// ParseID parses a textual identifier. what names the kind of id in the error.
func ParseID(what, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %s id %q", ErrInvalidID, what, s)
	}
	return id, nil
}
