package chart

import (
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/palace"
)

// Marker characters attached to palaces in the output record.
const (
	markerHorse = "馬"
	markerEmpty = "空"
)

// horseOf returns the Travelling Horse branch for an hour branch and the
// palace it occupies. Twelve hour branches project onto four horses.
func horseOf(hour ganzhi.Branch) (ganzhi.Branch, palace.Palace) {
	b := horseByHour[hour]

	return b, palace.HomeOf(b)
}

// emptyOf returns the two Empty/Death branches of a Xun Shou span and their
// palaces. Six possible spans project onto six branch pairs.
func emptyOf(xun ganzhi.Branch) ([2]ganzhi.Branch, [2]palace.Palace) {
	bs := emptyByXun[xun]

	return bs, [2]palace.Palace{palace.HomeOf(bs[0]), palace.HomeOf(bs[1])}
}
