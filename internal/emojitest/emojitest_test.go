package emojitest

import (
	"strings"
	"testing"
)

const sample = `# emoji-test.txt
# Date: 2020-09-12
# group: Smileys & Emotion

# subgroup: face-smiling
1F600                                      ; fully-qualified     # 😀 E1.0 grinning face

# subgroup: face-concerned
2639 FE0F                                  ; fully-qualified     # ☹️ E0.7 frowning face
2639                                       ; unqualified         # ☹ E0.7 frowning face

# group: People & Body

# subgroup: hand-fingers-open
1F44B                                      ; fully-qualified     # 👋 E0.6 waving hand
1F44B 1F3FB                                ; fully-qualified     # 👋🏻 E1.0 waving hand: light skin tone

# subgroup: person-symbol
1FAC2                                      ; fully-qualified     # 🫂 E13.0 people hugging

# group: Component

# subgroup: skin-tone
1F3FB                                      ; component           # 🏻 E1.0 light skin tone
`

func TestScanSample(t *testing.T) {
	sc := New(strings.NewReader(sample))
	var entries []Entry
	for sc.Next() {
		entries = append(entries, sc.Entry())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scanning sample failed: %v", err)
	}
	if len(entries) != 7 {
		t.Fatalf("expected 7 entries from sample, have %d", len(entries))
	}
	first := entries[0]
	if first.Sequence != "\U0001f600" || first.Name != "grinning face" {
		t.Errorf("first entry decoded as %+q %q", first.Sequence, first.Name)
	}
	if first.Group != "Smileys & Emotion" || first.Subgroup != "face-smiling" {
		t.Errorf("first entry grouped as %q / %q", first.Group, first.Subgroup)
	}
	if first.Version != (Version{1, 0}) {
		t.Errorf("first entry has version E%d.%d", first.Version.Major, first.Version.Minor)
	}
}

func TestScanStatuses(t *testing.T) {
	sc := New(strings.NewReader(sample))
	var statuses []Status
	for sc.Next() {
		statuses = append(statuses, sc.Entry().Status)
	}
	want := []Status{FullyQualified, FullyQualified, Unqualified,
		FullyQualified, FullyQualified, FullyQualified, Component}
	if len(statuses) != len(want) {
		t.Fatalf("expected %d entries, have %d", len(want), len(statuses))
	}
	for i, st := range statuses {
		if st != want[i] {
			t.Errorf("entry %d has status %s, expected %s", i, st, want[i])
		}
	}
}

func TestScanMultiCodepointSequence(t *testing.T) {
	sc := New(strings.NewReader(sample))
	for sc.Next() {
		if sc.Entry().Name == "frowning face" && sc.Entry().Status == FullyQualified {
			if sc.Entry().Sequence != "☹️" {
				t.Errorf("frowning face decoded as %+q", sc.Entry().Sequence)
			}
			return
		}
	}
	t.Fatal("fully-qualified frowning face not found in sample")
}

func TestScanTracksGroupHeaders(t *testing.T) {
	sc := New(strings.NewReader(sample))
	groups := make(map[string]int)
	for sc.Next() {
		groups[sc.Entry().Group]++
	}
	if groups["Smileys & Emotion"] != 2 || groups["People & Body"] != 3 || groups["Component"] != 1 {
		t.Errorf("group attribution off: %v", groups)
	}
}

func TestScanRejectsMalformedLine(t *testing.T) {
	inputs := []string{
		"1F600 fully-qualified # 😀 E1.0 grinning face", // missing ';'
		"1F600 ; fully-qualified 😀 E1.0 grinning face", // missing '#'
		"1F600 ; over-qualified # 😀 E1.0 grinning face",
		"ZZZZ ; fully-qualified # 😀 E1.0 grinning face",
		"1F600 ; fully-qualified # 😀 V1.0 grinning face",
		"1F600 ; fully-qualified # 😀",
	}
	for _, input := range inputs {
		sc := New(strings.NewReader(input))
		if sc.Next() {
			t.Errorf("line %q scanned without error", input)
		}
		if sc.Err() == nil {
			t.Errorf("line %q produced no error", input)
		}
	}
}
