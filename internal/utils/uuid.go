package utils

import "github.com/google/uuid"

// UUIDGenerator issues scan record and request ids. Ids are time-ordered
// (version 7) so that freshly created records sort last in the primary key
// index; a random version 4 id is used if the v7 source fails.
type UUIDGenerator struct {
	fallback func() uuid.UUID
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{fallback: uuid.New}
}

// Generate returns a new id in canonical textual form.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = g.fallback()
	}

	return id.String()
}

// IsUUID reports whether s is a textual UUID in any of the forms accepted by
// the database uuid type.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
