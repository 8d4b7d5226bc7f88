package seating

import "errors"

// Notice is a transient message shown to the user after a rejected toggle.
type Notice int

const (
	NoticeSelectTime Notice = iota + 1
	NoticeSeatLimit
)

func (n Notice) Message() string {
	switch n {
	case NoticeSelectTime:
		return "Please select a time"
	case NoticeSeatLimit:
		return "Maximum 5 seats are selected"
	default:
		return ""
	}
}

// NoticeFor maps a selection error to the notice it should raise.
func NoticeFor(err error) (Notice, bool) {
	switch {
	case errors.Is(err, ErrNoTimeSelected):
		return NoticeSelectTime, true
	case errors.Is(err, ErrSeatLimitExceeded):
		return NoticeSeatLimit, true
	default:
		return 0, false
	}
}
