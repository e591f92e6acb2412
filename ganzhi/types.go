// Package ganzhi defines the Stem and Branch enumerations, the StemBranch
// pillar, and sentinel errors for GanZhi parsing.
package ganzhi

import "errors"

// Sentinel errors for ganzhi parsing.
var (
	// ErrBadStem indicates a rune that is not one of the ten Heavenly Stems.
	ErrBadStem = errors.New("ganzhi: not a heavenly stem")
	// ErrBadBranch indicates a rune that is not one of the twelve Earthly Branches.
	ErrBadBranch = errors.New("ganzhi: not an earthly branch")
	// ErrBadGanZhi indicates a string that is not a 2-rune stem+branch pair.
	ErrBadGanZhi = errors.New("ganzhi: not a stem+branch pair")
)

// StemCount and BranchCount are the fixed cycle sizes.
const (
	StemCount   = 10
	BranchCount = 12
)

// Stem is one of the ten Heavenly Stems, ordered 甲..癸.
type Stem int

// The ten Heavenly Stems.
const (
	StemJia  Stem = iota // 甲
	StemYi               // 乙
	StemBing             // 丙
	StemDing             // 丁
	StemWu               // 戊
	StemJi               // 己
	StemGeng             // 庚
	StemXin              // 辛
	StemRen              // 壬
	StemGui              // 癸
)

// Branch is one of the twelve Earthly Branches, ordered 子..亥.
type Branch int

// The twelve Earthly Branches.
const (
	BranchZi   Branch = iota // 子
	BranchChou               // 丑
	BranchYin                // 寅
	BranchMao                // 卯
	BranchChen               // 辰
	BranchSi                 // 巳
	BranchWu                 // 午
	BranchWei                // 未
	BranchShen               // 申
	BranchYou                // 酉
	BranchXu                 // 戌
	BranchHai                // 亥
)

// StemBranch pairs a stem with a branch into one GanZhi pillar (e.g. 甲子).
// It is immutable once constructed; four instances make up a chart's
// year/month/day/hour pillars.
type StemBranch struct {
	Stem   Stem
	Branch Branch
}
