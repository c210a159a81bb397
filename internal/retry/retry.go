// Package retry classifies round failures as transient or fatal per the
// service's error handling contract: transient failures are logged and
// retried after a fixed backoff without touching the trust anchor; fatal
// failures terminate the process.
package retry

import (
	"errors"
	"fmt"
	"time"
)

// Error marks a failure as transient: the caller should log it, sleep
// the fixed backoff (or After, if set), and restart the round from
// scratch without mutating any persisted state.
type Error struct {
	msg   string
	err   error
	after time.Duration
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// New constructs a retryable error from a message.
func New(msg string) error {
	return &Error{msg: msg}
}

// Newf constructs a retryable error from a formatted message.
func Newf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Wrap marks an existing error as retryable, attaching msg as context.
func Wrap(msg string, err error) error {
	return &Error{msg: msg, err: err}
}

// NewAfter constructs a retryable error carrying a caller-computed
// backoff, for failures where the source already knows a better wait
// than the loop's fixed default — e.g. waiting on a beacon chain slot
// clock for the next slot boundary rather than sleeping blind.
func NewAfter(msg string, after time.Duration) error {
	return &Error{msg: msg, after: after}
}

// IsRetryable reports whether err (or anything it wraps) is a retryable
// round failure. Any error not marked this way is treated as fatal.
func IsRetryable(err error) bool {
	var re *Error
	return errors.As(err, &re)
}

// After returns the error's caller-supplied backoff and true, or
// (0, false) if none was set and the loop should use its own default.
func After(err error) (time.Duration, bool) {
	var re *Error
	if !errors.As(err, &re) || re.after <= 0 {
		return 0, false
	}
	return re.after, true
}
