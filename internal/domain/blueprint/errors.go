package blueprint

import "fmt"

// ErrNoPreferredMultiple indicates the constants carry no preferred
// machine multiple for a building type. This is a configuration error:
// sizing never guesses a batch size.
type ErrNoPreferredMultiple struct {
	Building string
}

func (e *ErrNoPreferredMultiple) Error() string {
	return fmt.Sprintf("no preferred machine multiple configured for %s", e.Building)
}

// ErrNoBasePower indicates a building type has no known nameplate draw.
type ErrNoBasePower struct {
	Building string
}

func (e *ErrNoBasePower) Error() string {
	return fmt.Sprintf("no base power defined for %s", e.Building)
}

// ErrClockOutOfRange indicates a clock outside the (0, 2.5) domain of
// the power curve.
type ErrClockOutOfRange struct {
	Clock float64
}

func (e *ErrClockOutOfRange) Error() string {
	return fmt.Sprintf("clock %.4f outside power curve domain (0, 2.5)", e.Clock)
}
