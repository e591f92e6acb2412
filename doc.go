// Package qimen turns a civil date and hour into a complete Qi Men Dun Jia
// (奇门遁甲) divination chart — stems, doors, stars and deities laid onto the
// nine palaces of the Luo Shu magic square.
//
// 🚀 What is qimen?
//
//	A small, deterministic chart engine built from cyclic arithmetic:
//		• Four Pillars & Solar Terms via the lunar-go lunisolar calendar
//		• Yuan / Ju resolution (Chai Bu method)
//		• Earth, Heaven, Man and Deity plate rotation
//		• Travelling Horse & Empty/Death markers
//		• Center-palace lodging
//
// ✨ Why choose qimen?
//
//   - Pure – one call in, one immutable Chart out, no shared state
//   - Typed – every symbol family is a closed enumeration, no stringly tables
//   - Faithful – golden-tested against hand-cast Chai Bu charts
//
// Under the hood, everything is organized under five subpackages:
//
//	ganzhi/   — the 10 Heavenly Stems & 12 Earthly Branches, cyclic stepping
//	palace/   — the 3×3 magic square: numeric sequence vs spatial ring
//	calendar/ — lunisolar adapter (Four Pillars + solar term)
//	chart/    — the engine: Ju seeding, plate rotation, markers, assembly
//	render/   — plain and lipgloss-styled 3×3 grid output
//
// Quick ASCII example:
//
//	    4 │ 9 │ 2
//	    ──┼───┼──
//	    3 │ 5 │ 7
//	    ──┼───┼──
//	    8 │ 1 │ 6
//
//	the Luo Shu layout: every row, column and diagonal sums to 15.
//
// Try `qimen chart --date 2025-12-21 --hour 20` from cmd/qimen, or start
// with chart.Generate in your own code.
//
//	go get github.com/katalvlaran/qimen/chart
package qimen
