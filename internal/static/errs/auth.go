package errs

import "errors"

var InvalidCredentials = errors.New("invalid credentials")

var (
	InternalError      = errors.New("internal error")
	GeneratingToken    = errors.New("error generating token")
	EmailRequired      = errors.New("email is required")
	UsernameTaken      = errors.New("username already registered")
	EmailTaken         = errors.New("email already registered")
	FailedToCreateUser = errors.New("failed to create user")
)
