package chart

import (
	"strings"

	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/palace"
)

// earthPlate is the base layer: every palace's resting stem(s) plus the
// inverse stem→palace index. Ten stems over nine palaces means exactly one
// palace (the Ju palace, where the walk wraps) holds two.
type earthPlate struct {
	stems [palace.Count + 1][]ganzhi.Stem
	loc   map[ganzhi.Stem]palace.Palace
}

// buildEarthPlate walks the fixed ten-stem order from the Ju palace through
// the numeric sequence, forward under Yang Dun and backward under Yin Dun.
func buildEarthPlate(ju int, dun Dun) *earthPlate {
	ep := &earthPlate{loc: make(map[ganzhi.Stem]palace.Palace, ganzhi.StemCount)}

	pos := palace.Palace(ju)
	for _, stem := range earthWalk {
		ep.stems[pos] = append(ep.stems[pos], stem)
		ep.loc[stem] = pos
		pos = palace.Step(pos, dun.step())
	}

	return ep
}

// leading returns the first stem placed on p; for the doubled palace that is
// the visible stem, with 甲 stacked beneath it.
func (e *earthPlate) leading(p palace.Palace) ganzhi.Stem { return e.stems[p][0] }

// display returns all stems on p concatenated in placement order, e.g. "戊甲"
// for the doubled palace and a single character everywhere else.
func (e *earthPlate) display(p palace.Palace) string {
	var b strings.Builder
	for _, s := range e.stems[p] {
		b.WriteString(s.String())
	}

	return b.String()
}

// locate returns the palace holding a stem.
func (e *earthPlate) locate(s ganzhi.Stem) palace.Palace { return e.loc[s] }
