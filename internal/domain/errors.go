package domain

import "errors"

var (
	ErrInvalidWorkload   = errors.New("invalid workload level")
	ErrHistoryUnreadable = errors.New("mood history unreadable")
	ErrEmptyName         = errors.New("employee name is empty")
)
