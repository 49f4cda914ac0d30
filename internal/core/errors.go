package core

import "errors"

// Error codes for domain errors surfaced to clients.
const (
	ErrCodeRoomNotFound   = "room_not_found"
	ErrCodeMessageTooLong = "message_too_long"
	ErrCodeBadRequest     = "bad_request"
	ErrCodeInternal       = "internal_error"
)

var (
	ErrRoomNotFound = errors.New("room not found")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
