package emojis

import "strconv"

// Group is a top-level Unicode CLDR emoji category, e.g. Flags.
// The constants are generated together with the table, see emojitable.go.
// The synthetic CLDR group "Component" carries no table entries and has no
// Group constant.
type Group int

// Stringer for type Group; returns the CLDR group name, e.g. "Food & Drink".
func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return "Group(" + strconv.Itoa(int(g)) + ")"
	}
	return groupNames[g]
}

// Groups returns all groups, in CLDR (and therefore table) order.
func Groups() []Group {
	gg := make([]Group, len(groupNames))
	for i := range gg {
		gg[i] = Group(i)
	}
	return gg
}

// Emojis returns an iterator over all emojis of this group, in CLDR order.
// Records of one group are contiguous in the table, so the iterator skips
// ahead to the first record of the group and stops at the last one.
// As with Iter, non-default skin-tone variants are excluded.
func (g Group) Emojis() *Iterator {
	setup()
	lo := 0
	for lo < len(emojiTable) && emojiTable[lo].group != g {
		lo++
	}
	hi := lo
	for hi < len(emojiTable) && emojiTable[hi].group == g {
		hi++
	}
	return &Iterator{pos: lo, end: hi, accept: isDefaultTone}
}
