package clock

import (
	"errors"
	"fmt"
	"math"

	"github.com/shinji-kodama/clockangle/internal/model"
)

const (
	hourDegrees         = 30.0       // per hour on the 12-hour dial
	hourDegreesPerMin   = 0.5        // hour hand drift per minute
	hourDegreesPerSec   = 0.5 / 60.0 // hour hand drift per second
	minuteDegrees       = 6.0        // per minute
	minuteDegreesPerSec = 0.1        // minute hand drift per second

	// precision is the number of decimal places kept in a result.
	precision = 4
)

// ErrInvalidArgument is matched by every *InvalidArgumentError via errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a time field outside its accepted range.
type InvalidArgumentError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}

// Is makes errors.Is(err, ErrInvalidArgument) succeed.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Calculate returns the smallest angle in degrees between the hour and
// minute hands at hours:minutes:seconds. Pass 0 for seconds when only
// hours and minutes are known.
//
// hours accepts 0-23 and is folded onto the 12-hour dial; minutes and
// seconds accept 0-59. Out-of-range input returns *InvalidArgumentError
// for the first offending field (hours, then minutes, then seconds).
func Calculate(hours, minutes, seconds int) (float64, error) {
	if err := checkRange("hours", hours, 0, 23); err != nil {
		return 0, err
	}
	if err := checkRange("minutes", minutes, 0, 59); err != nil {
		return 0, err
	}
	if err := checkRange("seconds", seconds, 0, 59); err != nil {
		return 0, err
	}

	hourHand := hourDegrees*float64(hours%12) +
		hourDegreesPerMin*float64(minutes) +
		hourDegreesPerSec*float64(seconds)
	minuteHand := minuteDegrees*float64(minutes) + minuteDegreesPerSec*float64(seconds)

	diff := math.Abs(hourHand - minuteHand)
	return RoundAngle(math.Min(diff, 360-diff)), nil
}

// CalculateTime is Calculate for a model.ClockTime.
func CalculateTime(t model.ClockTime) (float64, error) {
	return Calculate(t.Hours, t.Minutes, t.Seconds)
}

// RoundAngle rounds a to four decimal places, half to even.
func RoundAngle(a float64) float64 {
	scale := math.Pow10(precision)
	return math.RoundToEven(a*scale) / scale
}

func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &InvalidArgumentError{Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}
