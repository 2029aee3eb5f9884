package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for new diary entries.
// Version 7 UUIDs sort by creation time, which keeps identifier order
// consistent with entry order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID string, falling back to a random v4 when the
// clock-based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
