package emojis

import "testing"

func TestRaisedHandsFamily(t *testing.T) {
	medium := Lookup("🙌🏼")
	if medium == nil {
		t.Fatal("toned raising hands not found")
	}
	if tone, ok := medium.SkinTone(); !ok || tone != MediumLight {
		t.Errorf("🙌🏼 carries tone %s, %v", tone, ok)
	}
	want := []string{"🙌", "🙌🏻", "🙌🏼", "🙌🏽", "🙌🏾", "🙌🏿"}
	var family []string
	for it := medium.SkinTones(); it.Next(); {
		family = append(family, it.Emoji().String())
	}
	if len(family) != len(want) {
		t.Fatalf("family has %d members", len(family))
	}
	for i, seq := range family {
		if seq != want[i] {
			t.Errorf("family member %d is %+q, expected %+q", i, seq, want[i])
		}
	}
}

func TestNoSkinToneDimension(t *testing.T) {
	rocket := Lookup("🚀")
	if _, ok := rocket.SkinTone(); ok {
		t.Error("rocket claims a skin tone")
	}
	if it := rocket.SkinTones(); it != nil {
		t.Error("rocket claims a skin-tone family")
	}
	if e := rocket.WithSkinTone(Dark); e != nil {
		t.Errorf("dark rocket exists: %s", e)
	}
}

func TestWithSkinTone(t *testing.T) {
	wave := Lookup("👋")
	dark := wave.WithSkinTone(Dark)
	if dark == nil || dark.String() != "👋🏿" {
		t.Fatalf("dark waving hand is %v", dark)
	}
	if back := dark.WithSkinTone(Default); back != wave {
		t.Error("family does not lead back to its default member")
	}
	// a single-person family has no two-tone members
	if e := wave.WithSkinTone(LightAndMedium); e != nil {
		t.Errorf("single-person family yielded two-tone member %s", e)
	}
}

func TestTwoPersonFamily(t *testing.T) {
	holding := Lookup("🧑‍🤝‍🧑")
	if holding == nil {
		t.Fatal("people holding hands not found")
	}
	members := 0
	for it := holding.SkinTones(); it.Next(); {
		e := it.Emoji()
		if tone, ok := e.SkinTone(); !ok || tone != SkinTone(members) {
			t.Errorf("family member %d carries tone %s", members, tone)
		}
		members++
	}
	if members != 26 {
		t.Errorf("two-person family has %d members", members)
	}
	mixed := holding.WithSkinTone(LightAndDark)
	if mixed == nil {
		t.Fatal("light/dark pair not found")
	}
	if mixed.String() != "🧑🏻‍🤝‍🧑🏿" {
		t.Errorf("light/dark pair is %+q", mixed.String())
	}
}

func TestFamilyStructure(t *testing.T) {
	setup()
	seen := make(map[int]bool)
	for i := range emojiTable {
		e := &emojiTable[i]
		if e.family.size == 0 || seen[e.family.base] {
			continue
		}
		seen[e.family.base] = true
		if e.family.size != 6 && e.family.size != 26 {
			t.Errorf("family at %d has size %d", e.family.base, e.family.size)
		}
		for k := 0; k < e.family.size; k++ {
			member := &emojiTable[e.family.base+k]
			if member.family.tone != SkinTone(k) {
				t.Errorf("member %d of family at %d carries tone %s",
					k, e.family.base, member.family.tone)
			}
			if member.family.base != e.family.base || member.family.size != e.family.size {
				t.Errorf("member %d of family at %d disagrees on the family span",
					k, e.family.base)
			}
		}
	}
}

func TestClassifySequence(t *testing.T) {
	cases := []struct {
		seq  string
		tone SkinTone
		ok   bool
	}{
		{"🚀", Default, false},
		{"👋", Default, false},
		{"👋🏿", Dark, true},
		{"🙌🏼", MediumLight, true},
		{"🧑🏻‍🤝‍🧑🏿", LightAndDark, true},
		{"🧑🏿‍🤝‍🧑🏻", DarkAndLight, true},
		{"🧑🏽‍🤝‍🧑🏽", Medium, true}, // equal pair collapses
	}
	for _, c := range cases {
		tone, ok := classifySequence(c.seq)
		if tone != c.tone || ok != c.ok {
			t.Errorf("classify %+q = (%s, %v), expected (%s, %v)",
				c.seq, tone, ok, c.tone, c.ok)
		}
	}
}

func TestCombineTones(t *testing.T) {
	cases := []struct {
		a, b, want SkinTone
	}{
		{Light, Light, Light},
		{Medium, Medium, Medium},
		{Light, MediumLight, LightAndMediumLight},
		{Light, Dark, LightAndDark},
		{Dark, Light, DarkAndLight},
		{MediumDark, Dark, MediumDarkAndDark},
		{Dark, MediumDark, DarkAndMediumDark},
	}
	for _, c := range cases {
		if got := combineTones(c.a, c.b); got != c.want {
			t.Errorf("combine(%s, %s) = %s, expected %s", c.a, c.b, got, c.want)
		}
	}
}

func TestSkinToneString(t *testing.T) {
	if Default.String() != "Default" || DarkAndMediumDark.String() != "DarkAndMediumDark" {
		t.Error("tone names off")
	}
	if SkinTone(42).String() != "SkinTone(42)" {
		t.Errorf("out-of-range tone prints as %s", SkinTone(42))
	}
}
