package render

import "errors"

var (
	// ErrDegenerateBasis is returned when the view direction and the up
	// reference are parallel (or either is zero) so the image plane basis
	// cannot be built.
	ErrDegenerateBasis = errors.New("degenerate camera basis: view and up directions are parallel")
	// ErrInvalidFocal is returned for focal distances that are not strictly positive.
	ErrInvalidFocal = errors.New("focal distance must be positive")
	// ErrInvalidViewport is returned for non-positive viewport dimensions.
	ErrInvalidViewport = errors.New("viewport dimensions must be positive")
	// ErrInvalidDistance is returned for render distances that are not strictly positive.
	ErrInvalidDistance = errors.New("max render distance must be positive")
)
