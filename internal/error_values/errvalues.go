package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrGoalNotFound  = errors.New("goal doesn't exist")
	ErrChunkNotFound = errors.New("chunk with such week index doesn't exist")
	ErrOwnerNotFound = errors.New("goal owner doesn't exist")
	// Goal belongs to a different user. Handlers surface it as not found
	// so the existence of foreign goals never leaks.
	ErrWrongOwner = errors.New("goal has different owner")

	ErrNotificationNotFound = errors.New("notification doesn't exist")
)
