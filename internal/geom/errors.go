package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every input error returned by this package.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrNegativeRadius is returned when a circle has a radius below zero.
	ErrNegativeRadius = fmt.Errorf("%w: negative radius", ErrInvalidArgument)
	// ErrNonFinite is returned for NaN or infinite coordinates and radii.
	ErrNonFinite = fmt.Errorf("%w: non-finite value", ErrInvalidArgument)
	// ErrCoincident is returned when both circles share center and radius,
	// which leaves infinitely many common points.
	ErrCoincident = fmt.Errorf("%w: coincident circles", ErrInvalidArgument)
)
