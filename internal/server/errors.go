package server

import "errors"

var ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
