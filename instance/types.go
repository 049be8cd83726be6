package instance

import "errors"

// Sentinel errors returned by this package. Callers branch with errors.Is;
// no other error values escape the public API.
var (
	// ErrNoPoints is returned when a constructor receives no points (or an
	// empty distance table); an instance must contain at least one point.
	ErrNoPoints = errors.New("instance: no points")

	// ErrNotFinite is returned when a coordinate or a distance entry is
	// NaN or ±Inf.
	ErrNotFinite = errors.New("instance: coordinate or distance not finite")

	// ErrIndexOutOfRange is returned by accessors when a point index lies
	// outside [0, N).
	ErrIndexOutOfRange = errors.New("instance: point index out of range")

	// ErrNonSquare is returned by NewMatrix when the table is ragged or
	// not n×n.
	ErrNonSquare = errors.New("instance: distance table is not square")

	// ErrNegativeDistance is returned by NewMatrix when an entry is < 0.
	ErrNegativeDistance = errors.New("instance: negative distance")

	// ErrNonZeroDiagonal is returned by NewMatrix when some dist[i][i]
	// deviates from zero beyond tolerance.
	ErrNonZeroDiagonal = errors.New("instance: non-zero diagonal")

	// ErrBadCount is returned by Random when n < 1.
	ErrBadCount = errors.New("instance: point count must be positive")

	// ErrBadSide is returned by Random when the square side is not a
	// positive finite number.
	ErrBadSide = errors.New("instance: square side must be positive and finite")
)

// Point is a city location in the plane. The zero value is the origin.
type Point struct {
	X float64
	Y float64
}
