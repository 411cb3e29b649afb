package capacity

import "errors"

var (
	ErrStationNotFound = errors.New("station not found")
	ErrInvalidRequest  = errors.New("invalid request")
)
