package render_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qimen/chart"
	"github.com/katalvlaran/qimen/render"
)

// ExampleGrid casts a chart and prints the header of its plain rendering.
func ExampleGrid() {
	c, err := chart.Generate(2025, 12, 21, 20, nil)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	lines := strings.Split(render.Grid(c), "\n")
	for _, l := range lines[:4] {
		fmt.Println(l)
	}
	// Output:
	// Time: 2025-12-21 20:00 (GMT+8)
	// GanZhi: 乙巳 戊子 甲子 甲戌
	// JieQi: 大雪 (上元)
	// Chart: 阴遁4局
}
