package utils

import "github.com/google/uuid"

// UUIDGenerator mints the ids for locally created records and queue entries.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 (time-ordered) uuid so ids created on one device sort
// roughly by creation time. Falls back to v4 if the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
