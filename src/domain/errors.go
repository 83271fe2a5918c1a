package domain

import "errors"

var (
	// ErrFormat means a date/time string did not match the expected
	// "H:MM AM/PM (M/D/YYYY" shape.
	ErrFormat         = errors.New("unrecognized date/time format")
	ErrShortCard      = errors.New("card has too few lines")
	ErrMalformedField = errors.New("malformed card field")
	ErrRender         = errors.New("page could not be rendered")
)
