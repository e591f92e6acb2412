// Package chart is the Qi Men Dun Jia engine: a pure function from a civil
// moment (or its Four Pillars) to a complete nine-palace chart.
//
// 🚀 What is chart?
//
//	The Chai Bu (拆补) casting pipeline, strictly top-down:
//	  1. Yuan/Ju resolver — Fu Tou of the day pillar picks the Yuan third;
//	     the solar term picks Yin/Yang Dun and the Ju seed number 1..9
//	  2. Earth Plate — ten stems walked from the Ju palace through the
//	     numeric sequence (one palace stacks two stems at the wrap)
//	  3. Lead resolver — the hour pillar's Xun Shou names a lead stem; its
//	     palace donates the commanding star (值符) and door (值使)
//	  4. Heaven Plate — the star ring re-anchored where the hour stem sits
//	  5. Man Plate — the commanding door stepped by elapsed double-hours
//	     along the numeric sequence, then the door ring laid spatially
//	  6. Deity Plate — the deity ring laid from the heaven anchor,
//	     direction by Dun
//	  7. Markers & assembly — Travelling Horse, Empty/Death, and the
//	     center-palace lodging rule
//
// ✨ Guarantees:
//   - pure and idempotent: no I/O beyond the calendar adapter, no shared
//     state, identical input → byte-identical output
//   - every constant table is fixed at compile time
//   - one error surface: a failed call returns a single wrapped error
//
// ⚙️ Usage:
//
//	c, err := chart.Generate(2025, 12, 21, 20, nil)
//	if err != nil { ... }
//	fmt.Println(c.Formation) // 阴遁4局
//	fmt.Println(c.Palaces[5].Star)
//
// Known limitation, kept deliberately: a solar-term name missing from the
// Ju table falls back to Ju 1 / Yin Dun instead of erroring.
package chart
