// Package clock computes the smallest angle between the hour and minute
// hands of an analog 12-hour clock.
//
// Hand positions are measured clockwise from 12 o'clock in degrees:
//
//	hourHand   = 30*(hours mod 12) + 0.5*minutes + (0.5/60)*seconds
//	minuteHand = 6*minutes + 0.1*seconds
//
// The reported angle is the smaller of the two arcs between the hands,
// so it always lies in [0, 180]. Results are rounded half-to-even at
// four decimal places; compare them with a tolerance, not with ==.
package clock
