package chart

import (
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/palace"
)

// rotateHeaven re-seats the eight-star ring around the spatial path,
// anchored at the palace where the hour stem rests on the Earth Plate
// (an 甲 hour borrows the lead stem instead). Each placed star carries the
// resting stem of its native home as its heaven-stem annotation; 天芮 also
// picks up the center's own stem, since 天禽 rides with it.
//
// Returns the star layer, the heaven-stem layer, and the anchor palace
// (which the deity rotation reuses).
func rotateHeaven(hourStem ganzhi.Stem, ld lead, ep *earthPlate) (
	stars [palace.Count + 1]Star, stems [palace.Count + 1]string, target palace.Palace,
) {
	ts := hourStem
	if ts == ganzhi.StemJia {
		ts = ld.stem
	}
	target = ep.locate(ts)

	start := starRingIndex(ld.star)
	anchor, ok := palace.RingIndex(target)
	if !ok {
		// A center target starts the layout at 天芮's home instead.
		anchor, _ = palace.RingIndex(starHome[StarRui])
	}

	for i := 0; i < palace.RingSize; i++ {
		star := starRing[(start+i)%palace.RingSize]
		p := palace.AtRing(anchor + i)
		stars[p] = star

		hs := ep.leading(starHome[star]).String()
		if star == StarRui {
			// Only the leading stem travels: on a Ju-5 chart the center also
			// hides 甲, which stays an Earth Plate resident.
			hs += ep.leading(palace.Center).String()
		}
		stems[p] = hs
	}

	return stars, stems, target
}
