package domain

import "errors"

var (
	ErrInvalidPIN       = errors.New("invalid PIN")
	ErrUnknownWorker    = errors.New("unknown worker")
	ErrForbidden        = errors.New("admin access required")
	ErrInvalidAction    = errors.New("action must be \"in\" or \"out\"")
	ErrInvalidWeekStart = errors.New("week start must be YYYY-MM-DD")
	ErrInvalidTimestamp = errors.New("unparseable timestamp")
)
