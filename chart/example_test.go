package chart_test

import (
	"fmt"

	"github.com/katalvlaran/qimen/chart"
)

// ExampleGenerate casts the chart of a winter evening and reads off the
// headline fields.
func ExampleGenerate() {
	c, err := chart.Generate(2025, 12, 21, 20, nil)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println(c.Formation)
	fmt.Println(c.XunShou)
	fmt.Println(c.ZhiFu, c.ZhiShi)
	// Output:
	// 阴遁4局
	// 甲戌己
	// 天冲 伤门
}

// ExampleGenerate_palace shows the per-palace bundle: the resting stem, the
// rotated stem above it, and the star/door/deity that landed there.
func ExampleGenerate_palace() {
	c, err := chart.Generate(2025, 12, 21, 20, nil)
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	rec := c.Palaces[1]
	fmt.Println(rec.PalaceName)
	fmt.Println(rec.EarthStem, rec.HeavenStem)
	fmt.Println(rec.Star, rec.Door, rec.Deity)
	// Output:
	// 坎
	// 辛 辛
	// 天蓬 休门 太阴
}
