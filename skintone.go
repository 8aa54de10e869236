package emojis

import (
	"strconv"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// SkinTone identifies one member of a skin-tone family. Single-person
// emoji families carry the Default member plus the five Fitzpatrick
// modifier tones; two-person emoji additionally carry the twenty ordered
// combinations of two distinct tones. A pair of equal tones collapses to
// the corresponding single-tone identifier.
//
// The constant order below is the family member order in the table.
type SkinTone int

// All 26 skin-tone identifiers.
const (
	Default SkinTone = iota
	Light
	MediumLight
	Medium
	MediumDark
	Dark
	LightAndMediumLight
	LightAndMedium
	LightAndMediumDark
	LightAndDark
	MediumLightAndLight
	MediumLightAndMedium
	MediumLightAndMediumDark
	MediumLightAndDark
	MediumAndLight
	MediumAndMediumLight
	MediumAndMediumDark
	MediumAndDark
	MediumDarkAndLight
	MediumDarkAndMediumLight
	MediumDarkAndMedium
	MediumDarkAndDark
	DarkAndLight
	DarkAndMediumLight
	DarkAndMedium
	DarkAndMediumDark
)

const toneCount = 26

var skinToneNames = [toneCount]string{
	"Default", "Light", "MediumLight", "Medium", "MediumDark", "Dark",
	"LightAndMediumLight", "LightAndMedium", "LightAndMediumDark", "LightAndDark",
	"MediumLightAndLight", "MediumLightAndMedium", "MediumLightAndMediumDark", "MediumLightAndDark",
	"MediumAndLight", "MediumAndMediumLight", "MediumAndMediumDark", "MediumAndDark",
	"MediumDarkAndLight", "MediumDarkAndMediumLight", "MediumDarkAndMedium", "MediumDarkAndDark",
	"DarkAndLight", "DarkAndMediumLight", "DarkAndMedium", "DarkAndMediumDark",
}

// Stringer for type SkinTone
func (t SkinTone) String() string {
	if t < 0 || t >= toneCount {
		return "SkinTone(" + strconv.Itoa(int(t)) + ")"
	}
	return skinToneNames[t]
}

// The five Fitzpatrick skin-tone modifier code points, U+1F3FB…U+1F3FF.
var modifierTable = rangetable.New(
	'\U0001f3fb', '\U0001f3fc', '\U0001f3fd', '\U0001f3fe', '\U0001f3ff',
)

func isModifier(r rune) bool {
	return unicode.Is(modifierTable, r)
}

// singleTone maps a modifier code point to its tone identifier.
func singleTone(r rune) SkinTone {
	return Light + SkinTone(r-'\U0001f3fb')
}

// combineTones maps an ordered pair of single tones to a tone identifier.
// Equal tones collapse to the single-tone identifier; distinct pairs are
// addressed by formula instead of a 20-way enumeration.
func combineTones(a, b SkinTone) SkinTone {
	if a == b {
		return a
	}
	a0, b0 := int(a-Light), int(b-Light)
	if b0 > a0 {
		b0--
	}
	return LightAndMediumLight + SkinTone(a0*4+b0)
}

// classifySequence determines the skin tone of an emoji sequence by
// structural decomposition, i.e. by extracting the modifier code points in
// order of appearance. It reports Default and false for sequences without
// any modifier. More than two modifiers never occur in CLDR data; such a
// sequence is rejected with ok=false as well.
func classifySequence(s string) (tone SkinTone, ok bool) {
	var tones []SkinTone
	for _, r := range s {
		if isModifier(r) {
			tones = append(tones, singleTone(r))
		}
	}
	switch len(tones) {
	case 0:
		return Default, false
	case 1:
		return tones[0], true
	case 2:
		return combineTones(tones[0], tones[1]), true
	}
	return Default, false
}

// SkinTone returns the tone of this family member. For emoji without a
// skin-tone dimension the second return value is false; note that this is
// different from being the Default member of a family.
func (e *Emoji) SkinTone() (SkinTone, bool) {
	if e.family.size == 0 {
		return Default, false
	}
	return e.family.tone, true
}

// SkinTones returns an iterator over all members of this emoji's skin-tone
// family, Default member first, then in SkinTone constant order. It may be
// called on any member of the family. The result is nil for emoji without
// a skin-tone dimension.
func (e *Emoji) SkinTones() *Iterator {
	setup()
	if e.family.size == 0 {
		return nil
	}
	return &Iterator{pos: e.family.base, end: e.family.base + e.family.size}
}

// WithSkinTone returns the member of this emoji's skin-tone family that
// carries the given tone, or nil if the emoji has no skin-tone dimension
// or the family has no member with that tone.
func (e *Emoji) WithSkinTone(tone SkinTone) *Emoji {
	it := e.SkinTones()
	if it == nil {
		return nil
	}
	for it.Next() {
		if t, _ := it.Emoji().SkinTone(); t == tone {
			return it.Emoji()
		}
	}
	return nil
}
