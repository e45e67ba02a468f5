package user

import "errors"

var (
	ErrCountFailed = errors.New("could not count users")
)
