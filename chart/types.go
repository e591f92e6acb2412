// Package chart types: the closed Door/Star/Deity enumerations, Dun and
// Yuan labels, Options, sentinel errors, and the output Chart record.
package chart

import (
	"errors"

	"github.com/katalvlaran/qimen/palace"
)

// Sentinel errors for chart generation. Calendar failures pass through
// wrapped in the calendar package's own sentinels.
var (
	// ErrBadPillars indicates FromPillars received a pillar set with an
	// out-of-range stem or branch.
	ErrBadPillars = errors.New("chart: invalid pillars")
)

// Door is one of the eight movable doors (八门), declared in standard ring
// order 休生伤杜景死惊开. The zero value means "no door" (a bare center).
type Door int

// The eight doors, in ring order.
const (
	DoorRest    Door = iota + 1 // 休门
	DoorLife                    // 生门
	DoorHarm                    // 伤门
	DoorBlock                   // 杜门
	DoorScenery                 // 景门
	DoorDeath                   // 死门
	DoorFright                  // 惊门
	DoorOpen                    // 开门
)

// Star is one of the nine stars (九星). The first eight are declared in
// standard ring order 蓬任冲辅英芮柱心; 天禽 has no ring slot of its own and
// travels with 天芮. The zero value means "no star".
type Star int

// The nine stars; the first eight form the rotation ring.
const (
	StarPeng  Star = iota + 1 // 天蓬
	StarRen                   // 天任
	StarChong                 // 天冲
	StarFu                    // 天辅
	StarYing                  // 天英
	StarRui                   // 天芮
	StarZhu                   // 天柱
	StarXin                   // 天心
	StarQin                   // 天禽 (center-born, no ring slot)
)

// Deity is one of the eight deities (八神), declared in ring order.
// The zero value means "no deity".
type Deity int

// The eight deities, in ring order.
const (
	DeityChief    Deity = iota + 1 // 值符
	DeitySnake                     // 腾蛇
	DeityMoon                      // 太阴
	DeityHarmony                   // 六合
	DeityTiger                     // 白虎
	DeityTortoise                  // 玄武
	DeityEarth                     // 九地
	DeityHeaven                    // 九天
)

// Dun is the rotation polarity of a chart.
type Dun int

// Yang Dun rotates forward, Yin Dun backward.
const (
	YangDun Dun = iota
	YinDun
)

// Yuan selects which third of a fortnight's Ju triple applies.
type Yuan int

// The three Yuan, in Ju-table column order.
const (
	UpperYuan Yuan = iota
	MiddleYuan
	LowerYuan
)

// Options holds the tunable parameters of chart generation.
type Options struct {
	// UTCOffset is the timezone offset in whole hours used to label the
	// output (the input is already local civil time and is not shifted).
	UTCOffset int
}

// DefaultOptions returns the canonical settings: UTCOffset=+8 (China
// Standard Time, the convention of the source tradition).
func DefaultOptions() Options {
	return Options{UTCOffset: 8}
}

// GanZhi holds the four pillars of the output record as 2-character strings.
type GanZhi struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Hour  string `json:"hour"`
}

// PalaceRecord is the per-palace bundle of the output record. AllSymbols
// repeats the symbol fields in fixed display order: heaven stem, door,
// deity, star, earth stem.
type PalaceRecord struct {
	PalaceName string   `json:"palace_name"`
	EarthStem  string   `json:"earth_stem"`
	HeavenStem string   `json:"heaven_stem"`
	Star       string   `json:"star"`
	Door       string   `json:"door"`
	Deity      string   `json:"deity"`
	Markers    []string `json:"markers"`
	AllSymbols []string `json:"all_symbols"`
}

// Chart is the complete generated chart. It is constructed once per
// Generate call and never mutated afterwards; the JSON field names are a
// compatibility surface shared with downstream consumers.
type Chart struct {
	SolarDate  string                         `json:"solar_date"`
	Timezone   string                         `json:"timezone"`
	GanZhi     GanZhi                         `json:"gan_zhi"`
	SolarTerm  string                         `json:"solar_term"`
	Yuan       string                         `json:"yuan"`
	YinYang    string                         `json:"yin_yang"`
	JuNum      int                            `json:"ju_num"`
	Formation  string                         `json:"formation"`
	XunShou    string                         `json:"xun_shou"`
	ZhiFu      string                         `json:"zhi_fu"`
	ZhiShi     string                         `json:"zhi_shi"`
	HorseStar  string                         `json:"horse_star"`
	EmptyDeath string                         `json:"empty_death"`
	Palaces    map[palace.Palace]PalaceRecord `json:"palaces"`
}
