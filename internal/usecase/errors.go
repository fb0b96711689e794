package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUpstreamStatus = errors.New("unexpected upstream status")
)
