package chart

import (
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/palace"
)

// lead is the resolved Xun Shou: the branch heading the hour's ten-day
// span, its lead stem, where that stem rests on the Earth Plate, and the
// star and door native to that palace (Zhi Fu and Zhi Shi).
type lead struct {
	branch ganzhi.Branch
	stem   ganzhi.Stem
	loc    palace.Palace
	star   Star
	door   Door
}

// resolveLead derives the Xun Shou from the hour pillar. The lead branch
// sits (branch − stem) mod 12 steps from 子; the six possible results each
// name a lead stem, and that stem's Earth Plate palace supplies the
// commanding star and door. A center lead palace has no native door and
// keeps 天禽 as its star; the door falls back to 死门.
func resolveLead(hour ganzhi.StemBranch, ep *earthPlate) lead {
	xun := ganzhi.BranchAt(int(hour.Branch) - int(hour.Stem))
	stem := xunLead[xun]
	loc := ep.locate(stem)

	ld := lead{
		branch: xun,
		stem:   stem,
		loc:    loc,
		star:   starByPalace[loc],
		door:   doorByPalace[loc],
	}
	if loc.IsCenter() {
		ld.star = StarQin
		ld.door = DoorDeath
	}

	return ld
}

// descriptor renders the 3-character Xun Shou form, e.g. "甲戌己": the 甲
// pillar opening the span plus its hidden lead stem.
func (l lead) descriptor() string {
	return ganzhi.StemJia.String() + l.branch.String() + l.stem.String()
}
