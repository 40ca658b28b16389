package solar

import (
	"errors"
	"fmt"
	"math"

	"github.com/chrissnell/solarpotential/internal/log"
)

// ErrInvalidArgument is wrapped by every precondition failure in this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidTimestamp is returned for instants that are unset or cannot be parsed.
// It satisfies errors.Is(err, ErrInvalidArgument).
var ErrInvalidTimestamp = fmt.Errorf("%w: invalid timestamp", ErrInvalidArgument)

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// checkRange rejects NaN and anything outside [lo, hi].
func checkRange(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return invalidArgument("%s %v out of range [%v, %v]", name, v, lo, hi)
	}
	return nil
}

func checkNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return invalidArgument("%s %v must be finite and >= 0", name, v)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return invalidArgument("%s %v must be finite and > 0", name, v)
	}
	return nil
}

// reject logs a refused call at debug level and hands the error back.
func reject(op string, err error) error {
	log.Debugw("rejected "+op+" request", "error", err)
	return err
}
