package emojis

import "testing"

func TestSearchStarOrdering(t *testing.T) {
	result := Search("star")
	if len(result) < 3 {
		t.Fatalf("search for \"star\" found %d emojis", len(result))
	}
	// the exact name match first, then the shortcode prefix matches
	// "star2" and "stars" in table order
	want := []string{"⭐", "🌟", "🌠"}
	for i, seq := range want {
		if result[i].String() != seq {
			t.Errorf("result %d is %s (%s), expected %s", i, result[i], result[i].Name(), seq)
		}
	}
}

func TestSearchExactNameFirst(t *testing.T) {
	result := Search("rocket")
	if len(result) == 0 {
		t.Fatal("search for \"rocket\" came up empty")
	}
	if result[0] != Lookup("🚀") {
		t.Errorf("best match for \"rocket\" is %s", result[0].Name())
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	lower := Search("rocket")
	upper := Search("ROCKET")
	if len(lower) != len(upper) {
		t.Fatalf("case changes the result count: %d vs %d", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] != upper[i] {
			t.Fatalf("case changes result %d: %s vs %s", i, lower[i].Name(), upper[i].Name())
		}
	}
}

func TestSearchToleratesTypos(t *testing.T) {
	result := Search("grining")
	if len(result) == 0 {
		t.Fatal("search does not tolerate a missing letter")
	}
	if result[0].Name() != "grinning face" {
		t.Errorf("best match for \"grining\" is %q", result[0].Name())
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	first := Search("face")
	second := Search("face")
	if len(first) != len(second) {
		t.Fatalf("result counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("result %d differs between runs: %s vs %s",
				i, first[i].Name(), second[i].Name())
		}
	}
}

func TestSearchRanksByScore(t *testing.T) {
	result := Search("flag")
	for i := 1; i < len(result); i++ {
		// recompute the ranking criterion of each neighbor pair
		if bestScore("flag", result[i-1]) < bestScore("flag", result[i]) {
			t.Fatalf("results out of order at %d: %s before %s",
				i, result[i-1].Name(), result[i].Name())
		}
	}
}

func bestScore(query string, e *Emoji) float64 {
	score := similarity(query, e.name)
	for _, alias := range e.aliases {
		if s := similarity(query, alias); s > score {
			score = s
		}
	}
	return score
}

func TestSearchEmptyQuery(t *testing.T) {
	if result := Search(""); len(result) != 0 {
		t.Errorf("empty query matched %d emojis", len(result))
	}
}

func TestSearchNoMatch(t *testing.T) {
	if result := Search("qqqxxxzzz"); len(result) != 0 {
		t.Errorf("nonsense query matched %d emojis, first %s",
			len(result), result[0].Name())
	}
}
