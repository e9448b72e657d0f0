package stagefit

import "errors"

var (
	// ErrInvalidDesignSize is returned when a design width or height is NaN,
	// infinite, zero, or negative. The delegate is left untouched.
	ErrInvalidDesignSize = errors.New("stagefit: invalid design size")

	// ErrInvalidViewport is returned when the viewport (or a fixed target)
	// has a non-positive or NaN dimension. Nothing is committed.
	ErrInvalidViewport = errors.New("stagefit: invalid viewport")

	// ErrNoPolicy is returned when no resolution policy can be resolved.
	// It is logged at LevelFatal and moves the delegate to StateFailed.
	ErrNoPolicy = errors.New("stagefit: no resolution policy")

	// ErrUnknownStrategy is returned when a nil or unregistered strategy is
	// assigned to a ResolutionPolicy. The previous strategy is retained.
	ErrUnknownStrategy = errors.New("stagefit: unknown strategy")

	// ErrFailed is returned by every mutating call once the delegate has
	// entered StateFailed.
	ErrFailed = errors.New("stagefit: delegate failed")
)
