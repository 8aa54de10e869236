package emojis

import (
	"fmt"
	"sync"
)

// The index maps resolve external key strings to table positions. Both are
// built exactly once and never mutated afterwards, so all read paths can
// share them without synchronization.
var (
	unicodeMap   map[string]int
	shortcodeMap map[string]int
)

var setupOnce sync.Once

// setup freezes the generated table: it assigns stable positions, builds
// the Unicode and shortcode index maps and asserts the structural
// invariants the lookup functions rely on. Every public entry point calls
// setup; it is concurrency-safe and a no-op after the first call.
//
// An invariant violation means the generator emitted an inconsistent
// table. That is not a recoverable runtime condition, so setup panics
// rather than letting lookups run against broken data.
func setup() {
	setupOnce.Do(buildIndexes)
}

func buildIndexes() {
	unicodeMap = make(map[string]int, len(emojiTable)+len(emojiVariations))
	shortcodeMap = make(map[string]int)
	for i := range emojiTable {
		e := &emojiTable[i]
		e.id = i
		if prev, dup := unicodeMap[e.emoji]; dup {
			panic(fmt.Sprintf("emojis: duplicate sequence %+q at positions %d and %d", e.emoji, prev, i))
		}
		unicodeMap[e.emoji] = i
		for _, alias := range e.aliases {
			if prev, dup := shortcodeMap[alias]; dup && prev != i {
				panic(fmt.Sprintf("emojis: shortcode %q claimed by positions %d and %d", alias, prev, i))
			}
			shortcodeMap[alias] = i
		}
	}
	for variant, canonical := range emojiVariations {
		pos, ok := unicodeMap[canonical]
		if !ok {
			panic(fmt.Sprintf("emojis: variation %+q has no fully-qualified record %+q", variant, canonical))
		}
		if prev, dup := unicodeMap[variant]; dup && prev != pos {
			panic(fmt.Sprintf("emojis: variation key %+q collides with position %d", variant, prev))
		}
		unicodeMap[variant] = pos
	}
	checkFamilies()
	tracer().Infof("emoji table frozen: %d records, %d sequence keys, %d shortcodes",
		len(emojiTable), len(unicodeMap), len(shortcodeMap))
}

// checkFamilies asserts the skin-tone family invariants: families are
// contiguous with the Default member first, sized 6 or 26, members appear
// in SkinTone constant order, and every member's stored tone agrees with
// the structural decomposition of its sequence.
func checkFamilies() {
	for i := range emojiTable {
		e := &emojiTable[i]
		tone, modified := classifySequence(e.emoji)
		if e.family.size == 0 {
			if modified {
				panic(fmt.Sprintf("emojis: %+q carries modifier %s but no family", e.emoji, tone))
			}
			continue
		}
		if e.family.size != 6 && e.family.size != toneCount {
			panic(fmt.Sprintf("emojis: family of %+q has size %d", e.emoji, e.family.size))
		}
		if e.family.tone != tone {
			panic(fmt.Sprintf("emojis: %+q declares tone %s, sequence says %s", e.emoji, e.family.tone, tone))
		}
		base := e.family.base
		if base < 0 || base+e.family.size > len(emojiTable) {
			panic(fmt.Sprintf("emojis: family span of %+q out of table range", e.emoji))
		}
		if i < base || i >= base+e.family.size {
			panic(fmt.Sprintf("emojis: %+q lies outside its own family span", e.emoji))
		}
		// member k of a family carries tone k, Default being tone 0
		if e.family.tone != SkinTone(i-base) {
			panic(fmt.Sprintf("emojis: %+q out of tone order within its family", e.emoji))
		}
		def := &emojiTable[base]
		if def.family.base != base || def.family.size != e.family.size || def.family.tone != Default {
			panic(fmt.Sprintf("emojis: family of %+q has no Default member at %d", e.emoji, base))
		}
	}
}
