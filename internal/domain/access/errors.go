package access

import "errors"

var (
	ErrInvalidPIN   = errors.New("invalid access pin")
	ErrInvalidToken = errors.New("invalid access token")
)
