package ytdl

import (
	"errors"
	"strings"
)

// ErrNoInfo is returned by Info when yt-dlp succeeded but reported nothing.
var ErrNoInfo = errors.New("no media information extracted")

// ErrorKind classifies a yt-dlp failure for the user.
type ErrorKind int

const (
	// KindGeneric is any failure without a more specific explanation.
	KindGeneric ErrorKind = iota
	// KindSignIn means the site wants a logged-in session.
	KindSignIn
	// KindUnavailable means the media is removed or private.
	KindUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindSignIn:
		return "sign-in"
	case KindUnavailable:
		return "unavailable"
	}
	return "generic"
}

// Error is a yt-dlp extraction or download failure.
type Error struct {
	Kind ErrorKind
	// Message is yt-dlp's own description of the failure.
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "yt-dlp failed"
}

func (e *Error) Unwrap() error { return e.Err }

// Classify picks the ErrorKind for a yt-dlp error message.
func Classify(msg string) ErrorKind {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "sign in to confirm"):
		return KindSignIn
	case strings.Contains(msg, "video unavailable"):
		return KindUnavailable
	}
	return KindGeneric
}

// NewError wraps err as an *Error, using msg (yt-dlp's stderr, say) when it
// is not empty and err's text otherwise.
func NewError(msg string, err error) *Error {
	msg = strings.TrimSpace(msg)
	if msg == "" && err != nil {
		msg = err.Error()
	}
	return &Error{Kind: Classify(msg), Message: lastErrorLine(msg), Err: err}
}

// lastErrorLine keeps the last "ERROR:" line of a multi-line yt-dlp log, or
// the whole text if there is none.
func lastErrorLine(msg string) string {
	lines := strings.Split(msg, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); strings.HasPrefix(l, "ERROR:") {
			return l
		}
	}
	return msg
}

// KindOf returns the ErrorKind of err. Errors that are not an *Error are
// classified from their text.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindGeneric
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Classify(err.Error())
}
