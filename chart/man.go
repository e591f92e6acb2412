package chart

import (
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/palace"
)

// doorAnchor is where the door layout starts when the commanding door's
// numeric destination lands on the center: the center lodges in palace 2.
const doorAnchor = palace.Palace(2)

// rotateMan advances the commanding door from the lead palace by the number
// of double-hours elapsed since the Xun Shou. The advance runs along the
// plain numeric sequence (forward under Yang Dun, backward under Yin Dun);
// the eight-door ring is then laid around the spatial path from the
// destination.
func rotateMan(hourBranch ganzhi.Branch, ld lead, dun Dun) (doors [palace.Count + 1]Door) {
	elapsed := ganzhi.BranchDistance(ld.branch, hourBranch)
	dest := palace.Step(ld.loc, dun.step()*elapsed)

	anchor, ok := palace.RingIndex(dest)
	if !ok {
		anchor, _ = palace.RingIndex(doorAnchor)
	}

	start := doorRingIndex(ld.door)
	for i := 0; i < palace.RingSize; i++ {
		doors[palace.AtRing(anchor+i)] = doorRing[(start+i)%palace.RingSize]
	}

	return doors
}
