package chart_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/qimen/chart"
	"github.com/katalvlaran/qimen/palace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_Golden20251221 pins the full chart for
// 2025-12-21 20:00 local (GMT+8) in full: 阴遁4局 under 大雪, an 甲戌 hour
// whose Xun Shou is 甲戌己. The hour stem is 甲, so every plate rests in its
// native position. The one extension over the classical single-stem listing
// is the ten-stem Earth walk: 甲 closes the walk on the Ju palace, so
// palace 4 shows 戊甲.
func TestGenerate_Golden20251221(t *testing.T) {
	c, err := chart.Generate(2025, 12, 21, 20, nil)
	require.NoError(t, err)

	assert.Equal(t, "2025-12-21 20:00", c.SolarDate)
	assert.Equal(t, "GMT+8", c.Timezone)
	assert.Equal(t, "乙巳", c.GanZhi.Year)
	assert.Equal(t, "戊子", c.GanZhi.Month)
	assert.Equal(t, "甲子", c.GanZhi.Day)
	assert.Equal(t, "甲戌", c.GanZhi.Hour)
	assert.Equal(t, "大雪", c.SolarTerm)
	assert.Equal(t, "上元", c.Yuan)
	assert.Equal(t, "阴", c.YinYang)
	assert.Equal(t, 4, c.JuNum)
	assert.Equal(t, "阴遁4局", c.Formation)
	assert.Equal(t, "甲戌己", c.XunShou)
	assert.Equal(t, "天冲", c.ZhiFu)
	assert.Equal(t, "伤门", c.ZhiShi)
	assert.Equal(t, "申", c.HorseStar)
	assert.Equal(t, "申酉", c.EmptyDeath)

	want := map[palace.Palace]chart.PalaceRecord{
		1: {PalaceName: "坎", EarthStem: "辛", HeavenStem: "辛", Star: "天蓬", Door: "休门", Deity: "太阴", Markers: []string{}},
		2: {PalaceName: "坤", EarthStem: "庚", HeavenStem: "庚乙", Star: "天芮", Door: "死门", Deity: "玄武", Markers: []string{"馬", "空"}},
		3: {PalaceName: "震", EarthStem: "己", HeavenStem: "己", Star: "天冲", Door: "伤门", Deity: "值符", Markers: []string{}},
		4: {PalaceName: "巽", EarthStem: "戊甲", HeavenStem: "戊", Star: "天辅", Door: "杜门", Deity: "九天", Markers: []string{}},
		5: {PalaceName: "中", EarthStem: "乙", HeavenStem: "庚乙", Star: "天芮", Door: "死门", Deity: "玄武", Markers: []string{"馬", "空"}},
		6: {PalaceName: "乾", EarthStem: "丙", HeavenStem: "丙", Star: "天心", Door: "开门", Deity: "六合", Markers: []string{}},
		7: {PalaceName: "兑", EarthStem: "丁", HeavenStem: "丁", Star: "天柱", Door: "惊门", Deity: "白虎", Markers: []string{"空"}},
		8: {PalaceName: "艮", EarthStem: "癸", HeavenStem: "癸", Star: "天任", Door: "生门", Deity: "腾蛇", Markers: []string{}},
		9: {PalaceName: "离", EarthStem: "壬", HeavenStem: "壬", Star: "天英", Door: "景门", Deity: "九地", Markers: []string{}},
	}
	require.Len(t, c.Palaces, 9)
	for p, w := range want {
		got := c.Palaces[p]
		w.AllSymbols = []string{w.HeavenStem, w.Door, w.Deity, w.Star, w.EarthStem}
		assert.Equal(t, w, got, "palace %d", p)
	}
}

// TestGenerate_GoldenJSON checks the compatibility field names on the wire.
func TestGenerate_GoldenJSON(t *testing.T) {
	c, err := chart.Generate(2025, 12, 21, 20, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, key := range []string{
		"solar_date", "timezone", "gan_zhi", "solar_term", "yuan", "yin_yang",
		"ju_num", "formation", "xun_shou", "zhi_fu", "zhi_shi",
		"horse_star", "empty_death", "palaces",
	} {
		assert.Contains(t, m, key)
	}

	gz, ok := m["gan_zhi"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "甲子", gz["day"])

	palaces, ok := m["palaces"].(map[string]any)
	require.True(t, ok)
	require.Len(t, palaces, 9)

	p5, ok := palaces["5"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"palace_name", "earth_stem", "heaven_stem", "star", "door", "deity", "markers", "all_symbols"} {
		assert.Contains(t, p5, key)
	}
	assert.Equal(t, "天芮", p5["star"], "the center lodges with the 天芮 palace")

	syms, ok := p5["all_symbols"].([]any)
	require.True(t, ok)
	assert.Len(t, syms, 5)
}

// TestGenerate_HourBoundary: 19:00 and 20:00 share a double-hour and hence
// a chart; 21:00 crosses into 亥 and differs.
func TestGenerate_HourBoundary(t *testing.T) {
	at19, err := chart.Generate(2025, 12, 21, 19, nil)
	require.NoError(t, err)
	at20, err := chart.Generate(2025, 12, 21, 20, nil)
	require.NoError(t, err)
	at21, err := chart.Generate(2025, 12, 21, 21, nil)
	require.NoError(t, err)

	assert.Equal(t, at19.GanZhi.Hour, at20.GanZhi.Hour)
	assert.Equal(t, at19.Palaces, at20.Palaces, "same double-hour, same chart")
	assert.NotEqual(t, at20.GanZhi.Hour, at21.GanZhi.Hour, "21:00 opens the next double-hour")
}

// TestGenerate_Deterministic: two identical calls, byte-identical output.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := chart.Generate(2025, 12, 21, 20, nil)
	require.NoError(t, err)
	b, err := chart.Generate(2025, 12, 21, 20, nil)
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, ja, jb)
}

// TestGenerate_BadInput surfaces calendar validation as a single error value.
func TestGenerate_BadInput(t *testing.T) {
	_, err := chart.Generate(2025, 13, 1, 0, nil)
	assert.Error(t, err)
	_, err = chart.Generate(2025, 2, 30, 12, nil)
	assert.Error(t, err)
	_, err = chart.Generate(2025, 6, 1, 24, nil)
	assert.Error(t, err)
}

// TestGenerate_TimezoneLabel: the offset labels the output without shifting
// the civil time handed to the calendar.
func TestGenerate_TimezoneLabel(t *testing.T) {
	c, err := chart.Generate(2025, 12, 21, 20, &chart.Options{UTCOffset: -5})
	require.NoError(t, err)
	assert.Equal(t, "GMT-5", c.Timezone)
	assert.Equal(t, "甲戌", c.GanZhi.Hour, "civil time is not shifted by the label")
}
