package chart

import "github.com/katalvlaran/qimen/ganzhi"

// fuTou derives the Fu Tou (符头) of a day pillar: the most recent 甲 or 己
// day heading the day's five-day block. Day stems 甲..戊 fold back to 甲,
// 己..癸 fold back to 己, and the branch retreats by the same offset.
func fuTou(day ganzhi.StemBranch) ganzhi.StemBranch {
	stem, offset := ganzhi.StemJia, int(day.Stem)
	if offset >= 5 {
		stem, offset = ganzhi.StemJi, offset-5
	}

	return ganzhi.StemBranch{Stem: stem, Branch: day.Branch.Add(-offset)}
}

// yuanOf classifies a Fu Tou branch into its fortnight third: the four
// cardinal branches open the upper Yuan, the four corner branches the
// middle, the remaining four the lower.
func yuanOf(b ganzhi.Branch) Yuan {
	switch b {
	case ganzhi.BranchZi, ganzhi.BranchWu, ganzhi.BranchMao, ganzhi.BranchYou:
		return UpperYuan
	case ganzhi.BranchYin, ganzhi.BranchShen, ganzhi.BranchSi, ganzhi.BranchHai:
		return MiddleYuan
	default:
		return LowerYuan
	}
}

// resolveJu determines the Dun polarity and Ju number for a solar term and
// Yuan. The term name is canonicalized first so Traditional spellings hit
// both tables. An unmapped term degrades silently to fallbackJu and, since
// the Yang membership test fails too, Yin Dun.
func resolveJu(term string, y Yuan) (Dun, int) {
	term = CanonicalTerm(term)

	dun := YinDun
	if yangTerms[term] {
		dun = YangDun
	}

	triple, ok := juByTerm[term]
	if !ok {
		return dun, fallbackJu
	}

	return dun, triple[y]
}
