/*
Generator for the static emoji table.

The generator fetches the Unicode emoji-test.txt data file and the GitHub
gemoji shortcode database, assembles the emoji table and emits it as Go
source. For more information on the upstream data see
https://unicode.org/reports/tr51/ and https://github.com/github/gemoji.

Usage

The generator takes a "verbose" flag and two optional file arguments to
work from local copies of the upstream files instead of fetching them:

	generator [-v] [-emoji-test file] [-gemoji file]

This creates a file "emojitable.go" in the current directory. It is
designed to be called from the module root directory (via go generate).

Invariants

The emitted table has to satisfy the invariants the lookup side relies on:
skin-tone families are contiguous runs in fixed tone order with the
default member first, only fully-qualified sequences become table entries
(minimally- and unqualified forms are recorded as variation keys), and no
Unicode sequence or shortcode key is claimed by two table positions. Any
violation aborts the generator, leaving the previous table untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2025 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"runtime"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/emojis/internal/emojitest"
)

const emojiTestURL = "https://unicode.org/Public/emoji/13.1/emoji-test.txt"
const gemojiURL = "https://github.com/github/gemoji/raw/v4.0.0.rc3/db/emoji.json"

var logger = log.New(os.Stderr, "emoji table generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// record is one table entry in the making.
type record struct {
	Sequence   string
	Name       string
	Version    emojitest.Version
	Group      int // index into groups
	Tone       int // index into toneNames; only meaningful with HasTone
	HasTone    bool
	Base       int // table position of the family's default member
	Size       int // family size, 6 or 26
	Aliases    []string
	variations []string // minimally-/unqualified forms of this sequence
}

// The 26 skin-tone identifiers of the lookup side, in family member order.
var toneNames = []string{
	"Default", "Light", "MediumLight", "Medium", "MediumDark", "Dark",
	"LightAndMediumLight", "LightAndMedium", "LightAndMediumDark", "LightAndDark",
	"MediumLightAndLight", "MediumLightAndMedium", "MediumLightAndMediumDark", "MediumLightAndDark",
	"MediumAndLight", "MediumAndMediumLight", "MediumAndMediumDark", "MediumAndDark",
	"MediumDarkAndLight", "MediumDarkAndMediumLight", "MediumDarkAndMedium", "MediumDarkAndDark",
	"DarkAndLight", "DarkAndMediumLight", "DarkAndMedium", "DarkAndMediumDark",
}

// classifyTone determines the tone of a sequence from its skin-tone
// modifier code points (U+1F3FB…U+1F3FF). Pairs of distinct tones map to
// the combination identifiers by formula; equal pairs collapse to the
// single tone.
func classifyTone(seq string) (tone int, hasTone bool, err error) {
	var tt []int
	for _, r := range seq {
		if r >= '\U0001f3fb' && r <= '\U0001f3ff' {
			tt = append(tt, int(r-'\U0001f3fb')+1)
		}
	}
	switch len(tt) {
	case 0:
		return 0, false, nil
	case 1:
		return tt[0], true, nil
	case 2:
		a, b := tt[0], tt[1]
		if a == b {
			return a, true, nil
		}
		b0 := b - 1
		if b0 > a-1 {
			b0--
		}
		return 6 + (a-1)*4 + b0, true, nil
	}
	return 0, false, fmt.Errorf("sequence %+q carries %d skin-tone modifiers", seq, len(tt))
}

// --- Loading ----------------------------------------------------------

func fetch(url string) ([]byte, error) {
	if verbose {
		logger.Printf("fetching %s", url)
	}
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func load(localfile string, url string) ([]byte, error) {
	if localfile != "" {
		return os.ReadFile(localfile)
	}
	return fetch(url)
}

// loadEmojiTestFile parses emoji-test.txt into per-group record lists.
// Group order is the order of first appearance in the file; the synthetic
// "Component" group is dropped entirely.
func loadEmojiTestFile(data io.Reader) (groups []string, lists map[string]*arraylist.List, err error) {
	defer timeTrack(time.Now(), "loading emoji-test.txt")
	lists = make(map[string]*arraylist.List)
	sc := emojitest.New(data)
	for sc.Next() {
		entry := sc.Entry()
		if entry.Group == "Component" || entry.Status == emojitest.Component {
			continue
		}
		list := lists[entry.Group]
		if list == nil {
			list = arraylist.New()
			lists[entry.Group] = list
			groups = append(groups, entry.Group)
		}
		switch entry.Status {
		case emojitest.MinimallyQualified, emojitest.Unqualified:
			// variation of the preceding fully-qualified record
			last, ok := list.Get(list.Size() - 1)
			if !ok {
				return nil, nil, fmt.Errorf("line %d: variation %+q without fully-qualified record",
					entry.Line, entry.Sequence)
			}
			rec := last.(*record)
			rec.variations = append(rec.variations, entry.Sequence)
		case emojitest.FullyQualified:
			tone, hasTone, terr := classifyTone(entry.Sequence)
			if terr != nil {
				return nil, nil, fmt.Errorf("line %d: %w", entry.Line, terr)
			}
			if hasTone {
				// mark the nearest untoned predecessor as family default
				if derr := markFamilyDefault(list); derr != nil {
					return nil, nil, fmt.Errorf("line %d: %+q: %w", entry.Line, entry.Sequence, derr)
				}
			}
			list.Add(&record{
				Sequence: entry.Sequence,
				Name:     entry.Name,
				Version:  entry.Version,
				Tone:     tone,
				HasTone:  hasTone,
			})
		}
	}
	return groups, lists, sc.Err()
}

// markFamilyDefault walks a group list backwards to the nearest record
// without modifiers and marks it as the default member of a family.
func markFamilyDefault(list *arraylist.List) error {
	for i := list.Size() - 1; i >= 0; i-- {
		item, _ := list.Get(i)
		rec := item.(*record)
		if rec.HasTone && rec.Tone != 0 {
			continue
		}
		rec.HasTone = true
		rec.Tone = 0
		return nil
	}
	return fmt.Errorf("no default family member found")
}

// gemoji db/emoji.json is a list of objects with (among others) an
// "emoji" string and an "aliases" list.
type gemojiEntry struct {
	Emoji   string   `json:"emoji"`
	Aliases []string `json:"aliases"`
}

func loadGemojiFile(data []byte) (map[string][]string, error) {
	defer timeTrack(time.Now(), "loading gemoji emoji.json")
	var entries []gemojiEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	aliases := make(map[string][]string, len(entries))
	for _, entry := range entries {
		if entry.Emoji == "" {
			continue // gemoji also lists non-Unicode "emoji" like :shipit:
		}
		aliases[entry.Emoji] = entry.Aliases
	}
	return aliases, nil
}

// --- Table assembly ---------------------------------------------------

// assemble flattens the group lists into final table order: skin-tone
// family members are pulled together behind their default member and
// sorted into fixed tone order, and base position and family size are
// back-filled. Returns the table and the group index per record.
func assemble(groups []string, lists map[string]*arraylist.List) ([]*record, error) {
	var table []*record
	for gi, group := range groups {
		list := lists[group]
		var family []*record
		flush := func() error {
			if len(family) == 0 {
				return nil
			}
			sort.Slice(family, func(i, j int) bool { return family[i].Tone < family[j].Tone })
			if len(family) != 6 && len(family) != 26 {
				return fmt.Errorf("family of %+q has %d members", family[0].Sequence, len(family))
			}
			base := len(table)
			for k, member := range family {
				if member.Tone != k {
					return fmt.Errorf("family of %+q misses tone %s", family[0].Sequence, toneNames[k])
				}
				member.Base = base
				member.Size = len(family)
				table = append(table, member)
			}
			family = family[:0]
			return nil
		}
		it := list.Iterator()
		for it.Next() {
			rec := it.Value().(*record)
			rec.Group = gi
			if !rec.HasTone {
				if err := flush(); err != nil {
					return nil, err
				}
				table = append(table, rec)
				continue
			}
			if rec.Tone == 0 {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			family = append(family, rec)
		}
		if err := flush(); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// attachAliases joins the gemoji shortcodes onto the table records. The
// gemoji database keys emoji by one qualification form or another, so a
// record's variations are consulted as fallback keys.
func attachAliases(table []*record, aliases map[string][]string) {
	attached := 0
	for _, rec := range table {
		aa, ok := aliases[rec.Sequence]
		for _, v := range rec.variations {
			if ok {
				break
			}
			aa, ok = aliases[v]
		}
		if ok {
			rec.Aliases = aa
			attached++
		}
	}
	if verbose {
		logger.Printf("attached shortcodes to %d of %d records", attached, len(table))
	}
}

// checkKeys asserts that no Unicode sequence key and no shortcode key is
// claimed by two different table positions.
func checkKeys(table []*record) error {
	unicodeKeys := make(map[string]int)
	shortcodeKeys := make(map[string]int)
	for i, rec := range table {
		if prev, dup := unicodeKeys[rec.Sequence]; dup {
			return fmt.Errorf("sequence %+q claimed by positions %d and %d", rec.Sequence, prev, i)
		}
		unicodeKeys[rec.Sequence] = i
		for _, v := range rec.variations {
			if prev, dup := unicodeKeys[v]; dup {
				return fmt.Errorf("variation %+q claimed by positions %d and %d", v, prev, i)
			}
			unicodeKeys[v] = i
		}
		for _, alias := range rec.Aliases {
			if prev, dup := shortcodeKeys[alias]; dup {
				return fmt.Errorf("shortcode %q claimed by positions %d and %d", alias, prev, i)
			}
			shortcodeKeys[alias] = i
		}
	}
	return nil
}

// --- Templates --------------------------------------------------------

var header = `package emojis

// This file has been generated -- you probably should NOT EDIT IT !
//
// Generated by internal/generator from:
//    %s
//    %s
`

var templateGroupConsts = `
// The CLDR emoji groups, in source order. The synthetic group
// "Component" is excluded from the table and gets no constant.
const ({{$first := true}}
{{- range .}}
	{{camelize .}}{{if $first}} Group = iota{{$first = false}}{{end}}
{{- end}}
)

var groupNames = [...]string{
{{- range .}}
	{{printf "%q" .}},
{{- end}}
}
`

var templateRecord = template.Must(template.New("record").Funcs(funcMap).Parse(
	`	{emoji: {{goquote .Sequence}}, name: {{printf "%q" .Name}}, version: UnicodeVersion{{"{"}}{{.Version.Major}}, {{.Version.Minor}}{{"}"}}, group: {{groupconst .Group}}` +
		`{{if .HasTone}}, family: skinFamily{base: {{.Base}}, size: {{.Size}}, tone: {{tonename .Tone}}}{{end}}` +
		`{{if .Aliases}}, aliases: []string{{"{"}}{{quotejoin .Aliases}}{{"}"}}{{end}}},
`))

// Helper functions for templates; groupconst is bound late since it needs
// the group list of the current run.
var groupList []string

var funcMap = template.FuncMap{
	"goquote": func(s string) string {
		return fmt.Sprintf("%+q", s)
	},
	"quotejoin": func(ss []string) string {
		qq := make([]string, len(ss))
		for i, s := range ss {
			qq[i] = fmt.Sprintf("%q", s)
		}
		return strings.Join(qq, ", ")
	},
	"tonename": func(tone int) string {
		return toneNames[tone]
	},
	"camelize": camelize,
	"groupconst": func(gi int) string {
		return camelize(groupList[gi])
	},
}

// camelize maps a CLDR group name to its Go constant name, e.g.
// "Smileys & Emotion" to "SmileysAndEmotion".
func camelize(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		if word == "&" {
			word = "And"
		}
		b.WriteString(strings.ToUpper(word[:1]))
		b.WriteString(word[1:])
	}
	return b.String()
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	return template.Must(template.New(name).Funcs(funcMap).Parse(templString))
}

// --- Emitting ---------------------------------------------------------

func generateTable(w *bufio.Writer, groups []string, table []*record) {
	defer timeTrack(time.Now(), "generate emoji table")
	fmt.Fprintf(w, header, emojiTestURL, gemojiURL)
	t := makeTemplate("group constants", templateGroupConsts)
	checkFatal(t.Execute(w, groups))
	w.WriteString("\nvar emojiTable = [...]Emoji{\n")
	group := -1
	for _, rec := range table {
		if rec.Group != group {
			group = rec.Group
			fmt.Fprintf(w, "\n\t// %s\n", groups[group])
		}
		checkFatal(templateRecord.Execute(w, rec))
	}
	w.WriteString("}\n")
	w.WriteString("\n// Minimally-qualified and unqualified sequences, keyed to the sequence of\n")
	w.WriteString("// the fully-qualified record they resolve to.\n")
	w.WriteString("var emojiVariations = map[string]string{\n")
	for _, rec := range table {
		for _, v := range rec.variations {
			fmt.Fprintf(w, "\t%+q: %+q,\n", v, rec.Sequence)
		}
	}
	w.WriteString("}\n")
}

// --- Main -------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	testFile := flag.String("emoji-test", "", "local copy of emoji-test.txt")
	gemojiFile := flag.String("gemoji", "", "local copy of gemoji db/emoji.json")
	flag.Parse()
	verbose = *doVerbose

	testData, err := load(*testFile, emojiTestURL)
	checkFatal(err)
	groups, lists, err := loadEmojiTestFile(strings.NewReader(string(testData)))
	checkFatal(err)
	groupList = groups
	if verbose {
		logger.Printf("loaded %d emoji groups", len(groups))
	}
	gemojiData, err := load(*gemojiFile, gemojiURL)
	checkFatal(err)
	aliases, err := loadGemojiFile(gemojiData)
	checkFatal(err)

	table, err := assemble(groups, lists)
	checkFatal(err)
	attachAliases(table, aliases)
	checkFatal(checkKeys(table))
	if verbose {
		logger.Printf("assembled %d table records", len(table))
	}

	f, ioerr := os.Create("emojitable.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	generateTable(w, groups, table)
	w.Flush()
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
