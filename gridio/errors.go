package gridio

import "errors"

var (
	// ErrBadDimensions indicates rows or cols is not positive.
	ErrBadDimensions = errors.New("gridio: rows and cols must be positive")
	// ErrShortData indicates the source holds fewer than rows*cols integers.
	ErrShortData = errors.New("gridio: not enough elevation values")
	// ErrBadToken indicates a token that is not a base-10 integer.
	ErrBadToken = errors.New("gridio: malformed elevation value")
)
