package utils

import "github.com/google/uuid"

// roomIDLen is the length of room identifiers. Short ids keep room links
// shareable while staying collision-resistant for a single process.
const roomIDLen = 8

// NewID returns a full-length unique identifier, used for messages and
// connections.
func NewID() string {
	return uuid.NewString()
}

// NewRoomID returns a short room identifier: a fixed-length prefix of a
// fresh UUID.
func NewRoomID() string {
	return uuid.NewString()[:roomIDLen]
}
