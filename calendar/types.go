// Package calendar defines the Pillars value returned by the adapter and
// its sentinel errors.
package calendar

import (
	"errors"

	"github.com/katalvlaran/qimen/ganzhi"
)

// Sentinel errors for the adapter boundary.
var (
	// ErrBadDate indicates a malformed civil date or an hour outside 0..23.
	ErrBadDate = errors.New("calendar: invalid civil date or hour")
	// ErrCalendar indicates a failure inside the lunisolar library.
	ErrCalendar = errors.New("calendar: lunisolar conversion failed")
)

// Pillars holds the four GanZhi pillars of a moment plus the name of the
// most recent solar term at or before it. Immutable once computed.
type Pillars struct {
	Year  ganzhi.StemBranch
	Month ganzhi.StemBranch
	Day   ganzhi.StemBranch
	Hour  ganzhi.StemBranch

	// Term is the solar term governing the moment, e.g. "大雪".
	Term string
}
