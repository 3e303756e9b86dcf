package domain

import (
	"fmt"
	"time"
)

// TimeOffset is a whole number of minutes measured from the ride start.
// Offsets produced by the calculators are never negative.
type TimeOffset int

// Duration converts the offset to a time.Duration.
func (o TimeOffset) Duration() time.Duration { return time.Duration(o) * time.Minute }

// From returns the clock time o minutes after start. The start's calendar
// fields and zone are never inspected, only shifted, so whatever offset the
// caller supplied is carried through.
func (o TimeOffset) From(start time.Time) time.Time { return start.Add(o.Duration()) }

// String formats the offset the way brevet cards print limits, H:MM
// (810 minutes renders as "13:30").
func (o TimeOffset) String() string { return fmt.Sprintf("%d:%02d", o/60, o%60) }
