package render_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/katalvlaran/qimen/chart"
	"github.com/katalvlaran/qimen/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func golden(t *testing.T) *chart.Chart {
	t.Helper()
	c, err := chart.Generate(2025, 12, 21, 20, nil)
	require.NoError(t, err)

	return c
}

// TestGrid_Header: the seven header lines carry the chart's headline fields.
func TestGrid_Header(t *testing.T) {
	out := render.Grid(golden(t))

	assert.Contains(t, out, "Time: 2025-12-21 20:00 (GMT+8)")
	assert.Contains(t, out, "GanZhi: 乙巳 戊子 甲子 甲戌")
	assert.Contains(t, out, "JieQi: 大雪 (上元)")
	assert.Contains(t, out, "Chart: 阴遁4局")
	assert.Contains(t, out, "Xun Shou: 甲戌己")
	assert.Contains(t, out, "Zhi Fu: 天冲 | Zhi Shi: 伤门")
	assert.Contains(t, out, "Horse: 申 | Empty: 申酉")
}

// TestGrid_Cells: each palace cell packs markers, deity, star, door and the
// (heaven)earth stem notation; the center inverts to heaven(earth).
func TestGrid_Cells(t *testing.T) {
	out := render.Grid(golden(t))

	assert.Contains(t, out, "太阴天蓬休门(辛)辛", "palace 1")
	assert.Contains(t, out, "[馬空]玄武天芮死门(庚乙)庚", "palace 2 with markers")
	assert.Contains(t, out, "值符天冲伤门(己)己", "palace 3")
	assert.Contains(t, out, "九天天辅杜门(戊)戊甲", "palace 4 with the doubled stem")
	assert.Contains(t, out, "[馬空]玄武天芮死门庚(乙)", "center, lodged bundle over its own stem")
	assert.Contains(t, out, "[空]白虎天柱惊门(丁)丁", "palace 7")
}

// TestGrid_Shape: 7 header lines, a 40-dash rule, then three cell rows each
// followed by an 82-dash rule; cell rows are three 26-rune columns.
func TestGrid_Shape(t *testing.T) {
	out := render.Grid(golden(t))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 14)

	assert.Equal(t, strings.Repeat("-", 40), lines[7])
	for _, i := range []int{9, 11, 13} {
		assert.Equal(t, strings.Repeat("-", 82), lines[i])
	}
	for _, i := range []int{8, 10, 12} {
		assert.Equal(t, 26*3+2, utf8.RuneCountInString(lines[i]), "line %d", i)
		assert.Equal(t, 2, strings.Count(lines[i], "|"), "line %d", i)
	}
}

// TestGrid_Stable: same chart, same bytes.
func TestGrid_Stable(t *testing.T) {
	c := golden(t)
	assert.Equal(t, render.Grid(c), render.Grid(c))
}

// TestStyledGrid: the bordered view carries the same symbols; exact bytes
// depend on the terminal profile, so only content is asserted.
func TestStyledGrid(t *testing.T) {
	out := render.StyledGrid(golden(t))

	assert.Contains(t, out, "阴遁4局")
	assert.Contains(t, out, "甲戌己")
	assert.Contains(t, out, "天芮")
	assert.Contains(t, out, "休门")
	assert.Contains(t, out, "值符")
	assert.NotEmpty(t, out)
}
