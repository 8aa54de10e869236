package emojis

import "strconv"

// Emoji is one entry of the emoji table: a single fully-qualified Unicode
// emoji sequence together with its CLDR metadata. Emoji values are never
// created by clients; every Emoji pointer handed out refers into the
// static table.
type Emoji struct {
	id      int
	emoji   string
	name    string
	version UnicodeVersion
	group   Group
	family  skinFamily
	aliases []string
}

// skinFamily links an emoji to the skin-tone variants of the same base
// emoji. base is the table position of the Default member, size the number
// of contiguous family members (6 or 26) starting there, and tone the
// member this record represents. A zero size means the emoji has no
// skin-tone dimension at all.
type skinFamily struct {
	base int
	size int
	tone SkinTone
}

// String returns the Unicode sequence of the emoji, e.g. "🚀".
func (e *Emoji) String() string {
	return e.emoji
}

// Bytes returns the UTF-8 encoding of the emoji sequence.
func (e *Emoji) Bytes() []byte {
	return []byte(e.emoji)
}

// Name returns the CLDR short name, e.g. "rocket".
func (e *Emoji) Name() string {
	return e.name
}

// UnicodeVersion returns the Unicode emoji specification version that
// introduced this sequence.
func (e *Emoji) UnicodeVersion() UnicodeVersion {
	return e.version
}

// Group returns the CLDR group this emoji belongs to.
func (e *Emoji) Group() Group {
	return e.group
}

// Shortcode returns the primary gemoji shortcode for this emoji, without
// the surrounding colons. The second return value is false if no shortcode
// is on record.
func (e *Emoji) Shortcode() (string, bool) {
	if len(e.aliases) == 0 {
		return "", false
	}
	return e.aliases[0], true
}

// Shortcodes returns all gemoji shortcodes for this emoji, primary one
// first. The result may be empty.
func (e *Emoji) Shortcodes() []string {
	aliases := make([]string, len(e.aliases))
	copy(aliases, e.aliases)
	return aliases
}

// UnicodeVersion is a (major, minor) version of the Unicode emoji
// specification, ordered lexicographically by major, then minor.
type UnicodeVersion struct {
	Major int
	Minor int
}

func (v UnicodeVersion) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Before reports whether version v was published before w.
func (v UnicodeVersion) Before(w UnicodeVersion) bool {
	if v.Major != w.Major {
		return v.Major < w.Major
	}
	return v.Minor < w.Minor
}

// Lookup finds an emoji by its Unicode sequence. Matching is by exact
// string equality against every registered sequence key, but minimally-
// and unqualified forms are registered as keys as well, so any
// qualification form resolves to the fully-qualified record:
//
//	emojis.Lookup("☹") == emojis.Lookup("☹️")
//
// Lookup returns nil if the sequence is unknown.
func Lookup(s string) *Emoji {
	setup()
	if pos, ok := unicodeMap[s]; ok {
		return &emojiTable[pos]
	}
	return nil
}

// LookupShortcode finds an emoji by one of its gemoji shortcodes, given
// without the surrounding colons. Matching is by exact string equality;
// LookupShortcode returns nil if the shortcode is unknown.
func LookupShortcode(s string) *Emoji {
	setup()
	if pos, ok := shortcodeMap[s]; ok {
		return &emojiTable[pos]
	}
	return nil
}

// Iter returns an iterator over all emojis, in CLDR order. Non-default
// members of skin-tone families are excluded; use Emoji.SkinTones to walk
// a family.
//
// Usage:
//
//	it := emojis.Iter()
//	for it.Next() {
//	    e := it.Emoji()
//	    …
//	}
func Iter() *Iterator {
	setup()
	return &Iterator{end: len(emojiTable), accept: isDefaultTone}
}

// Iterator walks a contiguous span of the emoji table, possibly skipping
// records. Iterators are cheap to create; functions returning one hand out
// a fresh, restartable sequence on every call.
type Iterator struct {
	pos    int
	end    int
	accept func(*Emoji) bool
	e      *Emoji
}

// Next advances the iterator to the next emoji, returning false when the
// sequence is exhausted.
func (it *Iterator) Next() bool {
	for it.pos < it.end {
		e := &emojiTable[it.pos]
		it.pos++
		if it.accept == nil || it.accept(e) {
			it.e = e
			return true
		}
	}
	it.e = nil
	return false
}

// Emoji returns the emoji the iterator currently points at, or nil before
// the first call to Next and after exhaustion.
func (it *Iterator) Emoji() *Emoji {
	return it.e
}

// isDefaultTone accepts records which are visible in the default
// enumeration: emojis without a skin-tone dimension and the Default
// members of skin-tone families.
func isDefaultTone(e *Emoji) bool {
	return e.family.size == 0 || e.family.tone == Default
}
