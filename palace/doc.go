// Package palace models the nine positions of the Luo Shu magic square used
// by Qi Men Dun Jia: eight outer palaces plus the center.
//
// 🚀 What is palace?
//
//	The spatial skeleton of a chart:
//	  • Palace — a closed 1..9 enumeration with its trigram name (坎..离)
//	  • the numeric sequence 1,2,…,9 used for door stepping
//	  • the spatial rotation ring 1→8→3→4→9→2→7→6 used for plate layout
//	  • fixed diagonal pairs 1↔9, 2↔8, 3↔7, 4↔6 (the center has none)
//	  • the branch→home-palace table (子 lives in 1, 午 in 9, …)
//
// ⚠️ The one invariant that matters:
//
//	The numeric sequence and the spatial ring are different cycles and must
//	never be conflated. Step walks the numeric sequence; RingIndex/AtRing
//	walk the spatial ring. Each has its own modulo helper and the center
//	palace only exists on the numeric side.
//
// ⚙️ Usage:
//
//	p := palace.Step(7, 4)        // numeric: 7 → 2 (wraps past 9)
//	i, ok := palace.RingIndex(3)  // spatial: 3 sits at ring slot 2
//	q := palace.AtRing(i + 1)     // next palace clockwise: 4
//
// All tables are fixed at compile time; the package holds no mutable state.
package palace
