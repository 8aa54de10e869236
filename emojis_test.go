package emojis

import "testing"

func TestLookupRocket(t *testing.T) {
	e := Lookup("🚀")
	if e == nil {
		t.Fatal("rocket not found by sequence")
	}
	if e.Name() != "rocket" {
		t.Errorf("rocket named %q", e.Name())
	}
	if e.Group() != TravelAndPlaces {
		t.Errorf("rocket grouped as %s", e.Group())
	}
	if v := e.UnicodeVersion(); v != (UnicodeVersion{0, 6}) {
		t.Errorf("rocket introduced in E%s", v)
	}
	if code, ok := e.Shortcode(); !ok || code != "rocket" {
		t.Errorf("rocket has shortcode %q, %v", code, ok)
	}
	if LookupShortcode("rocket") != e {
		t.Error("shortcode lookup does not find the same record")
	}
}

func TestLookupUnknown(t *testing.T) {
	if e := Lookup("not an emoji"); e != nil {
		t.Errorf("bogus sequence found %s", e.Name())
	}
	if e := LookupShortcode("no_such_code"); e != nil {
		t.Errorf("bogus shortcode found %s", e.Name())
	}
	if e := Lookup(""); e != nil {
		t.Errorf("empty sequence found %s", e.Name())
	}
}

func TestLookupQualificationForms(t *testing.T) {
	unqualified := Lookup("☹")
	qualified := Lookup("☹️")
	if unqualified == nil || qualified == nil {
		t.Fatal("frowning face not found")
	}
	if unqualified != qualified {
		t.Error("qualification forms resolve to different records")
	}
	if qualified.String() != "☹️" {
		t.Errorf("lookup returned non-canonical form %+q", qualified.String())
	}
}

func TestLookupEveryTableEntry(t *testing.T) {
	setup()
	for i := range emojiTable {
		e := Lookup(emojiTable[i].emoji)
		if e != &emojiTable[i] {
			t.Fatalf("sequence %+q (%s) does not round-trip to its own record",
				emojiTable[i].emoji, emojiTable[i].name)
		}
	}
}

func TestLookupEveryShortcode(t *testing.T) {
	setup()
	for i := range emojiTable {
		for _, alias := range emojiTable[i].aliases {
			if LookupShortcode(alias) != &emojiTable[i] {
				t.Fatalf("shortcode %q does not round-trip to %s", alias, emojiTable[i].name)
			}
		}
	}
}

func TestShortcodeIsPrimary(t *testing.T) {
	e := Lookup("🇬🇧") // carries aliases "gb" and "uk"
	if e == nil {
		t.Fatal("UK flag not found")
	}
	codes := e.Shortcodes()
	if len(codes) < 2 {
		t.Fatalf("UK flag has %d shortcodes", len(codes))
	}
	if code, ok := e.Shortcode(); !ok || code != codes[0] {
		t.Errorf("primary shortcode %q is not Shortcodes()[0] %q", code, codes[0])
	}
}

func TestShortcodesAreCopies(t *testing.T) {
	e := Lookup("🚀")
	codes := e.Shortcodes()
	codes[0] = "mutated"
	if code, _ := e.Shortcode(); code != "rocket" {
		t.Error("mutating the Shortcodes slice leaked into the table")
	}
}

func TestIterStartsAtGrinningFace(t *testing.T) {
	it := Iter()
	if !it.Next() {
		t.Fatal("iteration over all emojis is empty")
	}
	if it.Emoji().Name() != "grinning face" {
		t.Errorf("iteration starts at %q", it.Emoji().Name())
	}
}

func TestIterSkipsTonedFamilyMembers(t *testing.T) {
	count := 0
	for it := Iter(); it.Next(); {
		e := it.Emoji()
		count++
		if tone, ok := e.SkinTone(); ok && tone != Default {
			t.Fatalf("iteration yielded toned member %s (%s)", e.Name(), tone)
		}
	}
	defaults := 0
	for i := range emojiTable {
		if isDefaultTone(&emojiTable[i]) {
			defaults++
		}
	}
	if count != defaults {
		t.Errorf("iteration yielded %d emojis, table has %d default records", count, defaults)
	}
}

func TestIterIsRestartable(t *testing.T) {
	first := Iter()
	second := Iter()
	first.Next()
	first.Next()
	if !second.Next() {
		t.Fatal("second iterator is empty")
	}
	if second.Emoji().Name() != "grinning face" {
		t.Error("iterators share state")
	}
}

func TestUnicodeVersionOrdering(t *testing.T) {
	cases := []struct {
		v, w   UnicodeVersion
		before bool
	}{
		{UnicodeVersion{0, 6}, UnicodeVersion{1, 0}, true},
		{UnicodeVersion{1, 0}, UnicodeVersion{0, 7}, false},
		{UnicodeVersion{12, 0}, UnicodeVersion{12, 1}, true},
		{UnicodeVersion{12, 1}, UnicodeVersion{12, 1}, false},
	}
	for _, c := range cases {
		if c.v.Before(c.w) != c.before {
			t.Errorf("%s.Before(%s) = %v", c.v, c.w, !c.before)
		}
	}
	if (UnicodeVersion{12, 1}).String() != "12.1" {
		t.Errorf("version prints as %s", UnicodeVersion{12, 1})
	}
}
