package chart

import "github.com/katalvlaran/qimen/palace"

// deityAnchorFallback is the ring slot used when the heaven target is the
// center. Unlike the door layout this anchors at slot 0 (palace 1); the two
// fallbacks are deliberately not harmonized.
const deityAnchorFallback = 0

// rotateDeities lays the fixed eight-deity ring around the spatial path,
// anchored at the heaven target: clockwise under Yang Dun, counterclockwise
// under Yin Dun. The ring order itself never changes with polarity.
func rotateDeities(target palace.Palace, dun Dun) (deities [palace.Count + 1]Deity) {
	anchor, ok := palace.RingIndex(target)
	if !ok {
		anchor = deityAnchorFallback
	}

	for i, d := range deityRing {
		deities[palace.AtRing(anchor+dun.step()*i)] = d
	}

	return deities
}
