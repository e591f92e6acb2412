package ganzhi

// stemRunes and branchRunes hold the canonical simplified characters,
// index-aligned with the Stem and Branch constants.
var (
	stemRunes   = []rune("甲乙丙丁戊己庚辛壬癸")
	branchRunes = []rune("子丑寅卯辰巳午未申酉戌亥")
)

// Valid reports whether s lies in the canonical range 甲..癸.
func (s Stem) Valid() bool { return s >= StemJia && s <= StemGui }

// String returns the canonical character for s, or "?" if s is invalid.
func (s Stem) String() string {
	if !s.Valid() {
		return "?"
	}

	return string(stemRunes[s])
}

// Add steps s forward by n positions on the 10-cycle; n may be negative.
func (s Stem) Add(n int) Stem { return Stem(modStem(int(s) + n)) }

// Valid reports whether b lies in the canonical range 子..亥.
func (b Branch) Valid() bool { return b >= BranchZi && b <= BranchHai }

// String returns the canonical character for b, or "?" if b is invalid.
func (b Branch) String() string {
	if !b.Valid() {
		return "?"
	}

	return string(branchRunes[b])
}

// Add steps b forward by n positions on the 12-cycle; n may be negative.
func (b Branch) Add(n int) Branch { return Branch(modBranch(int(b) + n)) }

// BranchAt returns the branch at cyclic index i (any int, folded mod 12).
func BranchAt(i int) Branch { return Branch(modBranch(i)) }

// BranchDistance returns the number of forward steps from one branch to
// another on the 12-cycle, always in 0..11.
func BranchDistance(from, to Branch) int { return modBranch(int(to) - int(from)) }

// ParseStem maps a canonical stem rune to its Stem value.
func ParseStem(r rune) (Stem, error) {
	for i, sr := range stemRunes {
		if sr == r {
			return Stem(i), nil
		}
	}

	return 0, ErrBadStem
}

// ParseBranch maps a canonical branch rune to its Branch value.
func ParseBranch(r rune) (Branch, error) {
	for i, br := range branchRunes {
		if br == r {
			return Branch(i), nil
		}
	}

	return 0, ErrBadBranch
}

// String returns the 2-character GanZhi form, e.g. "甲子".
func (sb StemBranch) String() string { return sb.Stem.String() + sb.Branch.String() }

// ParseStemBranch parses a 2-rune GanZhi string such as "甲子".
func ParseStemBranch(s string) (StemBranch, error) {
	rs := []rune(s)
	if len(rs) != 2 {
		return StemBranch{}, ErrBadGanZhi
	}
	stem, err := ParseStem(rs[0])
	if err != nil {
		return StemBranch{}, err
	}
	branch, err := ParseBranch(rs[1])
	if err != nil {
		return StemBranch{}, err
	}

	return StemBranch{Stem: stem, Branch: branch}, nil
}

// modStem folds any int onto the stem cycle 0..9.
func modStem(i int) int { return ((i % StemCount) + StemCount) % StemCount }

// modBranch folds any int onto the branch cycle 0..11.
func modBranch(i int) int { return ((i % BranchCount) + BranchCount) % BranchCount }
