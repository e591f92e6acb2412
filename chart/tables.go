package chart

import (
	"github.com/katalvlaran/qimen/ganzhi"
	"github.com/katalvlaran/qimen/palace"
)

// doorNames, starNames and deityNames are index-aligned with the enum
// constants; slot 0 is the "nothing here" value rendered as "".
var (
	doorNames  = []string{"", "休门", "生门", "伤门", "杜门", "景门", "死门", "惊门", "开门"}
	starNames  = []string{"", "天蓬", "天任", "天冲", "天辅", "天英", "天芮", "天柱", "天心", "天禽"}
	deityNames = []string{"", "值符", "腾蛇", "太阴", "六合", "白虎", "玄武", "九地", "九天"}
)

// String returns the canonical door name, or "" for the zero value.
func (d Door) String() string {
	if d < DoorRest || d > DoorOpen {
		return ""
	}

	return doorNames[d]
}

// String returns the canonical star name, or "" for the zero value.
func (s Star) String() string {
	if s < StarPeng || s > StarQin {
		return ""
	}

	return starNames[s]
}

// String returns the canonical deity name, or "" for the zero value.
func (d Deity) String() string {
	if d < DeityChief || d > DeityHeaven {
		return ""
	}

	return deityNames[d]
}

// String returns 阳 or 阴.
func (d Dun) String() string {
	if d == YangDun {
		return "阳"
	}

	return "阴"
}

// step is the rotation direction on cyclic walks: +1 for Yang, -1 for Yin.
func (d Dun) step() int {
	if d == YangDun {
		return 1
	}

	return -1
}

// String returns the Yuan label 上元, 中元 or 下元.
func (y Yuan) String() string {
	switch y {
	case UpperYuan:
		return "上元"
	case MiddleYuan:
		return "中元"
	default:
		return "下元"
	}
}

// termAliases folds Traditional-script solar-term names onto the Simplified
// forms the tables (and the calendar library) use.
var termAliases = map[string]string{
	"驚蟄": "惊蛰",
	"穀雨": "谷雨",
	"小滿": "小满",
	"芒種": "芒种",
	"處暑": "处暑",
}

// CanonicalTerm returns the canonical (Simplified) spelling of a solar-term
// name. Names without a known variant pass through unchanged.
func CanonicalTerm(name string) string {
	if c, ok := termAliases[name]; ok {
		return c
	}

	return name
}

// yangTerms holds the twelve terms of the Yang half-cycle, winter solstice
// through the start of summer. Membership decides the Dun polarity.
var yangTerms = map[string]bool{
	"冬至": true, "小寒": true, "大寒": true, "立春": true,
	"雨水": true, "惊蛰": true, "春分": true, "清明": true,
	"谷雨": true, "立夏": true, "小满": true, "芒种": true,
}

// juByTerm holds the three Ju numbers per solar term, column-selected by
// Yuan (upper, middle, lower).
var juByTerm = map[string][3]int{
	"冬至": {1, 7, 4}, "小寒": {2, 8, 5}, "大寒": {3, 9, 6},
	"立春": {8, 5, 2}, "雨水": {9, 6, 3}, "惊蛰": {1, 7, 4},
	"春分": {3, 9, 6}, "清明": {4, 1, 7}, "谷雨": {5, 2, 8},
	"立夏": {4, 1, 7}, "小满": {5, 2, 8}, "芒种": {6, 3, 9},
	"夏至": {9, 3, 6}, "小暑": {8, 2, 5}, "大暑": {7, 1, 4},
	"立秋": {2, 5, 8}, "处暑": {1, 4, 7}, "白露": {9, 3, 6},
	"秋分": {7, 1, 4}, "寒露": {6, 9, 3}, "霜降": {5, 8, 2},
	"立冬": {6, 9, 3}, "小雪": {5, 8, 2}, "大雪": {4, 7, 1},
}

// fallbackJu is the documented-limitation default when a solar-term name is
// not in juByTerm: the chart silently becomes Ju 1 (and, because the Yang
// membership test also fails, Yin Dun).
const fallbackJu = 1

// earthWalk is the fixed stem order of the Earth Plate walk. Ten stems over
// nine palaces: 甲 closes the walk and wraps onto the starting (Ju) palace,
// stacking beneath the 戊 placed there first.
var earthWalk = [ganzhi.StemCount]ganzhi.Stem{
	ganzhi.StemWu, ganzhi.StemJi, ganzhi.StemGeng, ganzhi.StemXin,
	ganzhi.StemRen, ganzhi.StemGui, ganzhi.StemDing, ganzhi.StemBing,
	ganzhi.StemYi, ganzhi.StemJia,
}

// xunLead maps each of the six possible Xun Shou branches to the stem that
// leads its ten-day span (甲子→戊, 甲戌→己, …).
var xunLead = map[ganzhi.Branch]ganzhi.Stem{
	ganzhi.BranchZi:   ganzhi.StemWu,
	ganzhi.BranchXu:   ganzhi.StemJi,
	ganzhi.BranchShen: ganzhi.StemGeng,
	ganzhi.BranchWu:   ganzhi.StemXin,
	ganzhi.BranchChen: ganzhi.StemRen,
	ganzhi.BranchYin:  ganzhi.StemGui,
}

// emptyByXun maps each Xun Shou branch to the two branches left empty in
// its span (空亡).
var emptyByXun = map[ganzhi.Branch][2]ganzhi.Branch{
	ganzhi.BranchZi:   {ganzhi.BranchXu, ganzhi.BranchHai},
	ganzhi.BranchXu:   {ganzhi.BranchShen, ganzhi.BranchYou},
	ganzhi.BranchShen: {ganzhi.BranchWu, ganzhi.BranchWei},
	ganzhi.BranchWu:   {ganzhi.BranchChen, ganzhi.BranchSi},
	ganzhi.BranchChen: {ganzhi.BranchYin, ganzhi.BranchMao},
	ganzhi.BranchYin:  {ganzhi.BranchZi, ganzhi.BranchChou},
}

// horseByHour maps the hour branch to its Travelling Horse branch: each of
// the four branch triads shares one horse (申子辰→寅, 寅午戌→申,
// 巳酉丑→亥, 亥卯未→巳).
var horseByHour = map[ganzhi.Branch]ganzhi.Branch{
	ganzhi.BranchShen: ganzhi.BranchYin,
	ganzhi.BranchZi:   ganzhi.BranchYin,
	ganzhi.BranchChen: ganzhi.BranchYin,
	ganzhi.BranchYin:  ganzhi.BranchShen,
	ganzhi.BranchWu:   ganzhi.BranchShen,
	ganzhi.BranchXu:   ganzhi.BranchShen,
	ganzhi.BranchSi:   ganzhi.BranchHai,
	ganzhi.BranchYou:  ganzhi.BranchHai,
	ganzhi.BranchChou: ganzhi.BranchHai,
	ganzhi.BranchHai:  ganzhi.BranchSi,
	ganzhi.BranchMao:  ganzhi.BranchSi,
	ganzhi.BranchWei:  ganzhi.BranchSi,
}

// starByPalace and doorByPalace are the native (resting) assignments per
// palace, index-aligned 1..9. The center natively hosts 天禽 and no door.
var (
	starByPalace = [palace.Count + 1]Star{
		0, StarPeng, StarRui, StarChong, StarFu, StarQin, StarXin, StarZhu, StarRen, StarYing,
	}
	doorByPalace = [palace.Count + 1]Door{
		0, DoorRest, DoorDeath, DoorHarm, DoorBlock, 0, DoorOpen, DoorFright, DoorLife, DoorScenery,
	}
)

// starHome is the native home palace per star, index-aligned with the Star
// constants; 天禽's home is the center.
var starHome = [palace.Count + 1]palace.Palace{
	0, 1, 8, 3, 4, 9, 2, 7, 6, 5,
}

// The three standard rotation rings. Ring order never changes; only the
// anchor and direction do.
var (
	starRing = [palace.RingSize]Star{
		StarPeng, StarRen, StarChong, StarFu, StarYing, StarRui, StarZhu, StarXin,
	}
	doorRing = [palace.RingSize]Door{
		DoorRest, DoorLife, DoorHarm, DoorBlock, DoorScenery, DoorDeath, DoorFright, DoorOpen,
	}
	deityRing = [palace.RingSize]Deity{
		DeityChief, DeitySnake, DeityMoon, DeityHarmony, DeityTiger, DeityTortoise, DeityEarth, DeityHeaven,
	}
)

// starRingIndex returns the ring slot of s, with 天禽 standing in at 天芮's
// slot (they travel together).
func starRingIndex(s Star) int {
	if s == StarQin {
		s = StarRui
	}
	for i, r := range starRing {
		if r == s {
			return i
		}
	}

	return 0
}

// doorRingIndex returns the ring slot of d. Every real door is on the ring.
func doorRingIndex(d Door) int {
	for i, r := range doorRing {
		if r == d {
			return i
		}
	}

	return 0
}
