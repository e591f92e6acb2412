// Package calendar adapts the lunar-go lunisolar library to the one contract
// the chart engine needs: civil date + hour in, Four Pillars + most recent
// solar term out.
//
// 🚀 What is calendar?
//
//	A thin boundary around github.com/6tail/lunar-go (the Go port of the
//	lunar-python library). The lunisolar math (GanZhi pillars, solar-term
//	instants) is consumed, never reimplemented.
//
// ✨ Guarantees at the boundary:
//   - malformed input (month 13, hour 24, Feb 30, …) returns ErrBadDate
//     before the library is touched
//   - any failure inside the library surfaces as a wrapped ErrCalendar;
//     no panic escapes to the caller
//   - deterministic: a fixed input always yields the same Pillars
//
// ⚙️ Usage:
//
//	p, err := calendar.Compute(2025, 12, 21, 20)
//	// p.Day.String() == "甲子", p.Term == "大雪"
//
// The input is local civil time; timezone handling is the caller's concern.
package calendar
