package palace

import "github.com/katalvlaran/qimen/ganzhi"

// homeOf maps each of the twelve branches to the outer palace it natively
// occupies on the Luo Shu layout.
var homeOf = map[ganzhi.Branch]Palace{
	ganzhi.BranchZi:   1,
	ganzhi.BranchChou: 8,
	ganzhi.BranchYin:  8,
	ganzhi.BranchMao:  3,
	ganzhi.BranchChen: 4,
	ganzhi.BranchSi:   4,
	ganzhi.BranchWu:   9,
	ganzhi.BranchWei:  2,
	ganzhi.BranchShen: 2,
	ganzhi.BranchYou:  7,
	ganzhi.BranchXu:   6,
	ganzhi.BranchHai:  6,
}

// Valid reports whether p lies in 1..9.
func (p Palace) Valid() bool { return p >= 1 && p <= Count }

// IsCenter reports whether p is the center palace.
func (p Palace) IsCenter() bool { return p == Center }

// Name returns the trigram name of p (坎, 坤, …), or "?" if p is invalid.
func (p Palace) Name() string {
	if !p.Valid() {
		return "?"
	}

	return names[p]
}

// Opposite returns the fixed diagonal partner of p (1↔9, 2↔8, 3↔7, 4↔6).
// The center has no partner; ok is false for it and for invalid palaces.
func (p Palace) Opposite() (Palace, bool) {
	if !p.Valid() || p.IsCenter() {
		return 0, false
	}

	return Palace(Count+1) - p, true
}

// Step walks n positions from p along the plain numeric sequence
// 1,2,…,9,1,… used for door stepping; n may be negative. The center is an
// ordinary stop on this cycle.
func Step(p Palace, n int) Palace { return Palace(modNumeric(int(p)-1+n) + 1) }

// RingIndex returns the slot of p on the spatial rotation ring. The center
// palace has no slot; ok is false for it and for invalid palaces.
func RingIndex(p Palace) (int, bool) {
	if !p.Valid() {
		return 0, false
	}
	i := ringSlot[p]
	if i < 0 {
		return 0, false
	}

	return i, true
}

// AtRing returns the palace at ring slot i, folding any int onto 0..7.
func AtRing(i int) Palace { return rotationPath[modRing(i)] }

// HomeOf returns the outer palace a branch natively occupies.
func HomeOf(b ganzhi.Branch) Palace { return homeOf[b] }

// modNumeric folds any int onto the 9-cycle 0..8.
func modNumeric(i int) int { return ((i % Count) + Count) % Count }

// modRing folds any int onto the 8-cycle 0..7.
func modRing(i int) int { return ((i % RingSize) + RingSize) % RingSize }
