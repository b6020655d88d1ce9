package entity

import "errors"

// Domain outcomes handlers branch on. Anything else bubbling out of a use
// case is treated as an upstream failure.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrSelfSubscribe      = errors.New("you cannot subscribe to your own channel")
)
