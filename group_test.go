package emojis

import "testing"

func TestGroupNames(t *testing.T) {
	cases := []struct {
		group Group
		name  string
	}{
		{SmileysAndEmotion, "Smileys & Emotion"},
		{PeopleAndBody, "People & Body"},
		{FoodAndDrink, "Food & Drink"},
		{Flags, "Flags"},
	}
	for _, c := range cases {
		if c.group.String() != c.name {
			t.Errorf("group %d prints as %q, expected %q", c.group, c.group, c.name)
		}
	}
	if Group(99).String() != "Group(99)" {
		t.Errorf("out-of-range group prints as %s", Group(99))
	}
}

func TestGroupsOrder(t *testing.T) {
	gg := Groups()
	if len(gg) == 0 {
		t.Fatal("no groups")
	}
	if gg[0] != SmileysAndEmotion || gg[len(gg)-1] != Flags {
		t.Errorf("groups run from %s to %s", gg[0], gg[len(gg)-1])
	}
	for i, g := range gg {
		if g != Group(i) {
			t.Errorf("group %d out of order: %s", i, g)
		}
	}
}

func TestGroupIterationStart(t *testing.T) {
	it := Flags.Emojis()
	if !it.Next() {
		t.Fatal("flags group is empty")
	}
	if it.Emoji().Name() != "chequered flag" {
		t.Errorf("flags start at %q", it.Emoji().Name())
	}
}

// Group iteration partitions the default enumeration: walking all groups
// in order visits exactly the emojis of Iter, in the same order.
func TestGroupsPartitionIteration(t *testing.T) {
	all := Iter()
	for _, g := range Groups() {
		for it := g.Emojis(); it.Next(); {
			if !all.Next() {
				t.Fatalf("group %s yields emojis beyond the full enumeration", g)
			}
			if it.Emoji() != all.Emoji() {
				t.Fatalf("group %s yields %s where the full enumeration has %s",
					g, it.Emoji().Name(), all.Emoji().Name())
			}
			if it.Emoji().Group() != g {
				t.Fatalf("%s claims group %s while iterated under %s",
					it.Emoji().Name(), it.Emoji().Group(), g)
			}
		}
	}
	if all.Next() {
		t.Errorf("full enumeration continues past the last group with %s", all.Emoji().Name())
	}
}
