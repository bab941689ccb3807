package lsb

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMessage = errors.New("empty message provided")
	ErrInvalidUTF8  = errors.New("decoded message contains invalid UTF-8")
)

// MessageTooLargeError is returned by Encode when the message does not fit
// in the image. Nothing has been written when it is returned.
type MessageTooLargeError struct {
	Required  int
	Available int
}

func (e *MessageTooLargeError) Error() string {
	return fmt.Sprintf("message too large: requires %d bytes but image can only hold %d bytes",
		e.Required, e.Available)
}
