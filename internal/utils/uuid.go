package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for camera records. UUIDv7 is
// preferred because it sorts roughly by creation time; plain v4 is the
// fallback when v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
