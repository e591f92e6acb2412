package chart

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qimen/calendar"
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/palace"
)

// Generate casts the chart for a local civil moment: it asks the calendar
// adapter for the Four Pillars and solar term, then runs the pure pipeline
// over them. Identical input always yields an identical Chart.
func Generate(year, month, day, hour int, opts *Options) (*Chart, error) {
	pillars, err := calendar.Compute(year, month, day, hour)
	if err != nil {
		return nil, err
	}

	c, err := FromPillars(pillars, opts)
	if err != nil {
		return nil, err
	}
	c.SolarDate = fmt.Sprintf("%04d-%02d-%02d %02d:00", year, month, day, hour)

	return c, nil
}

// FromPillars runs the chart pipeline over an already-computed pillar set.
// It exists so every downstream stage can be exercised without a calendar:
// the pillars fully determine the chart (SolarDate stays empty here).
//
// Pipeline, strictly downward: Yuan/Ju → Earth Plate → Xun Shou lead →
// Heaven Plate → Man Plate → Deity Plate → markers → assembly.
func FromPillars(p calendar.Pillars, opts *Options) (*Chart, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if !validPillars(p) {
		return nil, fmt.Errorf("%w: %s %s %s %s", ErrBadPillars, p.Year, p.Month, p.Day, p.Hour)
	}

	ft := fuTou(p.Day)
	yuan := yuanOf(ft.Branch)
	dun, ju := resolveJu(p.Term, yuan)

	ep := buildEarthPlate(ju, dun)
	ld := resolveLead(p.Hour, ep)
	stars, heavenStems, target := rotateHeaven(p.Hour.Stem, ld, ep)
	doors := rotateMan(p.Hour.Branch, ld, dun)
	deities := rotateDeities(target, dun)

	horseBranch, horseLoc := horseOf(p.Hour.Branch)
	emptyBranches, emptyLocs := emptyOf(ld.branch)

	c := &Chart{
		Timezone:   fmt.Sprintf("GMT%+d", o.UTCOffset),
		GanZhi:     GanZhi{Year: p.Year.String(), Month: p.Month.String(), Day: p.Day.String(), Hour: p.Hour.String()},
		SolarTerm:  p.Term,
		Yuan:       yuan.String(),
		YinYang:    dun.String(),
		JuNum:      ju,
		Formation:  fmt.Sprintf("%s遁%d局", dun, ju),
		XunShou:    ld.descriptor(),
		ZhiFu:      ld.star.String(),
		ZhiShi:     ld.door.String(),
		HorseStar:  horseBranch.String(),
		EmptyDeath: emptyBranches[0].String() + emptyBranches[1].String(),
		Palaces:    make(map[palace.Palace]PalaceRecord, palace.Count),
	}

	markersFor := func(p palace.Palace) []string {
		ms := []string{}
		if p == horseLoc {
			ms = append(ms, markerHorse)
		}
		if p == emptyLocs[0] || p == emptyLocs[1] {
			ms = append(ms, markerEmpty)
		}

		return ms
	}

	lodged := lodgingTarget(ep, heavenStems)
	for pn := palace.Palace(1); pn <= palace.Count; pn++ {
		// The center has no directly computed symbols: it copies the full
		// bundle of the palace its own stem lodges with.
		src := pn
		if pn.IsCenter() && lodged != 0 {
			src = lodged
		}

		rec := PalaceRecord{
			PalaceName: pn.Name(),
			EarthStem:  ep.display(pn),
			HeavenStem: heavenStems[src],
			Star:       stars[src].String(),
			Door:       doors[src].String(),
			Deity:      deities[src].String(),
			Markers:    markersFor(src),
		}
		rec.AllSymbols = []string{rec.HeavenStem, rec.Door, rec.Deity, rec.Star, rec.EarthStem}
		c.Palaces[pn] = rec
	}

	return c, nil
}

// lodgingTarget locates the outer palace whose heaven stem carries the
// center's own resting stem. The 天芮 palace always qualifies (it carries
// the center's stem by construction), so the scan cannot come up empty in a
// fully built chart; 0 is returned only for a malformed plate set.
func lodgingTarget(ep *earthPlate, heavenStems [palace.Count + 1]string) palace.Palace {
	want := ep.leading(palace.Center).String()
	for p := palace.Palace(1); p <= palace.Count; p++ {
		if p.IsCenter() {
			continue
		}
		if strings.Contains(heavenStems[p], want) {
			return p
		}
	}

	return 0
}

// validPillars rejects pillar sets holding out-of-range stems or branches.
func validPillars(p calendar.Pillars) bool {
	for _, sb := range [4]ganzhi.StemBranch{p.Year, p.Month, p.Day, p.Hour} {
		if !sb.Stem.Valid() || !sb.Branch.Valid() {
			return false
		}
	}

	return true
}
