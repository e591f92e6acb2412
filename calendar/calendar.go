package calendar

import (
	"fmt"
	"time"

	lunarcal "github.com/6tail/lunar-go/calendar"

	"github.com/katalvlaran/qimen/ganzhi"
)

// Compute converts a local civil moment into its Four Pillars and the most
// recent solar term at or before it. The lunisolar math is delegated to
// lunar-go; this function only validates input and types the result.
func Compute(year, month, day, hour int) (p Pillars, err error) {
	if !validCivil(year, month, day, hour) {
		return Pillars{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:00", ErrBadDate, year, month, day, hour)
	}

	// lunar-go signals unsupported input by panicking; keep that inside
	// the adapter boundary.
	defer func() {
		if r := recover(); r != nil {
			p, err = Pillars{}, fmt.Errorf("%w: %v", ErrCalendar, r)
		}
	}()

	lunar := lunarcal.NewSolar(year, month, day, hour, 0, 0).GetLunar()

	if p.Year, err = pillar(lunar.GetYearInGanZhi()); err != nil {
		return Pillars{}, err
	}
	if p.Month, err = pillar(lunar.GetMonthInGanZhi()); err != nil {
		return Pillars{}, err
	}
	if p.Day, err = pillar(lunar.GetDayInGanZhi()); err != nil {
		return Pillars{}, err
	}
	if p.Hour, err = pillar(lunar.GetTimeInGanZhi()); err != nil {
		return Pillars{}, err
	}

	// Most recent term, today's own term included.
	p.Term = lunar.GetPrevJieQi().GetName()

	return p, nil
}

// pillar types one of the library's 2-character GanZhi strings.
func pillar(s string) (ganzhi.StemBranch, error) {
	sb, err := ganzhi.ParseStemBranch(s)
	if err != nil {
		return ganzhi.StemBranch{}, fmt.Errorf("%w: pillar %q: %v", ErrCalendar, s, err)
	}

	return sb, nil
}

// validCivil reports whether the civil components name a real moment:
// hour 0..23 and a date that survives normalization unchanged.
func validCivil(year, month, day, hour int) bool {
	if hour < 0 || hour > 23 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
