// Package render formats a generated chart for terminals.
//
// 🚀 What is render?
//
//	Two views over the same nine-palace chart, laid out in the classical
//	Luo Shu arrangement (4-9-2 / 3-5-7 / 8-1-6, south on top):
//	  - Grid — plain fixed-width text, safe to pipe or diff
//	  - StyledGrid — the same layout in bordered lipgloss cells
//
// ✨ Guarantees:
//   - read-only: the chart is never mutated
//   - Grid output is byte-stable for a given chart
//
// ⚙️ Usage:
//
//	c, _ := chart.Generate(2025, 12, 21, 20, nil)
//	fmt.Println(render.Grid(c))
package render
