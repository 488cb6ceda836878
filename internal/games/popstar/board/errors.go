package board

import "errors"

var (
	// ErrOutOfBounds is returned for positions or columns outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidOrigin is returned when a group search starts on a vacated cell.
	ErrInvalidOrigin = errors.New("origin cell is not alive")

	// ErrAlreadyRemoved is returned when a removal lists a vacated cell or the
	// same position twice.
	ErrAlreadyRemoved = errors.New("cell already removed")
)
