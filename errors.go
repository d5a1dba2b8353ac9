package colorfield

import (
	"errors"
	"fmt"
)

// Value construction and request validation errors.
var (
	// ErrInvalidCoordinate is returned when a color component lies
	// outside the normalized [0, 1] range.
	ErrInvalidCoordinate = errors.New("colorfield: coordinate out of [0, 1]")

	// ErrAxisValueOutOfRange is returned when an integer axis value lies
	// outside the axis [min, max] range.
	ErrAxisValueOutOfRange = errors.New("colorfield: axis value out of range")

	// ErrPaletteTooLarge is returned when a palette exceeds MaxPaletteColors
	// entries.
	ErrPaletteTooLarge = errors.New("colorfield: palette exceeds maximum size")

	// ErrUnknownSpace is returned when a color space id does not name one of
	// the supported spaces.
	ErrUnknownSpace = errors.New("colorfield: unknown color space")

	// ErrInvalidRequest is returned when a RenderRequest violates one of the
	// request invariants. The returned error wraps ErrInvalidRequest with a
	// description of the violated invariant.
	ErrInvalidRequest = errors.New("colorfield: invalid render request")

	// ErrAxisCountMismatch is returned when a request's slice count does
	// not match what its view mode requires. It wraps ErrInvalidRequest.
	ErrAxisCountMismatch = fmt.Errorf("%w: slice count does not match axis count", ErrInvalidRequest)
)
