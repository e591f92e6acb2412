// Package palace defines the Palace type, its fixed tables, and sentinel
// errors for palace arithmetic.
package palace

import "errors"

// ErrBadPalace indicates a palace number outside 1..9.
var ErrBadPalace = errors.New("palace: palace number must be 1..9")

// Palace is one of the nine Luo Shu positions, numbered 1..9.
//
//	4 9 2
//	3 5 7
//	8 1 6
type Palace int

// Center is the fifth palace. It has no spatial ring slot and no diagonal
// partner; symbol plates never place anything on it directly.
const Center Palace = 5

// Count is the number of palaces; RingSize is the length of the spatial
// rotation ring (every palace except the center).
const (
	Count    = 9
	RingSize = 8
)

// names holds the trigram name per palace, index-aligned 1..9.
var names = []string{"", "坎", "坤", "震", "巽", "中", "乾", "兑", "艮", "离"}

// rotationPath is the fixed clockwise spatial ring over the eight outer
// palaces: 坎1 → 艮8 → 震3 → 巽4 → 离9 → 坤2 → 兑7 → 乾6 → back to 坎1.
var rotationPath = [RingSize]Palace{1, 8, 3, 4, 9, 2, 7, 6}

// ringSlot is the inverse of rotationPath: palace → ring index, -1 for the
// center (and for index 0, which is not a palace).
var ringSlot = [Count + 1]int{-1, 0, 5, 2, 3, -1, 7, 6, 1, 4}
