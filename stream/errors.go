package stream

import "errors"

var (
	ErrNoData = errors.New("no buffered data")
)
