package utils

import "github.com/google/uuid"

// NewTraceID returns a fresh request trace identifier. UUIDv7 is preferred so
// that identifiers sort by creation time; a random UUIDv4 is used if the v7
// generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
