package errorz

import "errors"

var (
	InvalidURL = errors.New("invalid url")
)
