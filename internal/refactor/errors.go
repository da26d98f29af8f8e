package refactor

import (
	"errors"
	"fmt"
)

// Kind classifies a failed refactor call
type Kind int

const (
	KindTransport Kind = iota // connection, DNS, context cancelled
	KindStatus                // non-2xx response
	KindDecode                // body is not the expected JSON
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrMissingCode is wrapped when the response has no reformated_code field
var ErrMissingCode = errors.New("response has no reformated_code field")

// Error is returned by Client.Refactor for every failure
type Error struct {
	Kind   Kind
	Status int    // HTTP status, KindStatus only
	Body   string // truncated response body, KindStatus only
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Body != "" {
			return fmt.Sprintf("refactor endpoint returned %d: %s", e.Status, e.Body)
		}
		return fmt.Sprintf("refactor endpoint returned %d", e.Status)
	default:
		return fmt.Sprintf("refactor %s error: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, and false if err is not a refactor error
func KindOf(err error) (Kind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}
