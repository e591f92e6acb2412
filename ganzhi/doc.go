// Package ganzhi models the two interlocking cyclic counters of East Asian
// calendrics: the 10 Heavenly Stems (天干) and the 12 Earthly Branches (地支),
// plus their pairing into GanZhi pillars (e.g. 甲子).
//
// 🚀 What is ganzhi?
//
//	The foundation every other qimen package stands on:
//	  • Stem — a closed 10-element enumeration (甲乙丙丁戊己庚辛壬癸)
//	  • Branch — a closed 12-element enumeration (子丑寅卯辰巳午未申酉戌亥)
//	  • StemBranch — an immutable (stem, branch) pillar
//
// ✨ Key guarantees:
//   - cyclic stepping via Add never leaves the valid range, even for
//     negative offsets (one floor-modulo helper per cycle size)
//   - parsing accepts exactly the canonical simplified characters and
//     rejects everything else with a sentinel error
//   - values are plain ints; copying is free, mutation is impossible
//
// ⚙️ Usage:
//
//	sb, err := ganzhi.ParseStemBranch("甲子")
//	// sb.Stem == ganzhi.StemJia, sb.Branch == ganzhi.BranchZi
//
//	next := sb.Branch.Add(1) // 丑
//
// All arithmetic is O(1); there is nothing to configure.
package ganzhi
