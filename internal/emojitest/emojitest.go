/*
Package emojitest provides a parser for the Unicode emoji-test.txt data
file, see https://unicode.org/Public/emoji/13.1/emoji-test.txt for an
example. The file interleaves comment headers announcing CLDR groups and
subgroups with data lines of the form

	1F600 ; fully-qualified # 😀 E1.0 grinning face

i.e. space-separated code points, a qualification status, and a trailing
comment carrying the rendered emoji, the introducing emoji specification
version and the CLDR short name.
*/
package emojitest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Status is the qualification status of a data line.
type Status int8

// The four status values of emoji-test.txt.
const (
	FullyQualified Status = iota
	MinimallyQualified
	Unqualified
	Component
)

var statusNames = map[string]Status{
	"fully-qualified":     FullyQualified,
	"minimally-qualified": MinimallyQualified,
	"unqualified":         Unqualified,
	"component":           Component,
}

func (st Status) String() string {
	for name, s := range statusNames {
		if s == st {
			return name
		}
	}
	return "Status(" + strconv.Itoa(int(st)) + ")"
}

// Version is an emoji specification version, e.g. E12.1.
type Version struct {
	Major int
	Minor int
}

// Entry is one data line of an emoji-test file, together with the group
// and subgroup headers in force at that line.
type Entry struct {
	Sequence string // decoded code points
	Status   Status
	Name     string // CLDR short name
	Version  Version
	Group    string
	Subgroup string
	Line     int // line number within the input, 1-based
}

// Scanner reads an emoji-test data file entry by entry.
//
// Usage:
//
//	sc := emojitest.New(r)
//	for sc.Next() {
//	    entry := sc.Entry()
//	    …
//	}
//	if err := sc.Err(); err != nil …
type Scanner struct {
	lines    *bufio.Scanner
	group    string
	subgroup string
	entry    Entry
	err      error
	line     int
}

// New creates a scanner reading from r.
func New(r io.Reader) *Scanner {
	return &Scanner{lines: bufio.NewScanner(r)}
}

const (
	groupPrefix    = "# group: "
	subgroupPrefix = "# subgroup: "
)

// Next advances the scanner to the next data line, skipping comments and
// blank lines and tracking group/subgroup headers. It returns false at end
// of input or on the first malformed line; the two cases are told apart
// with Err.
func (sc *Scanner) Next() bool {
	if sc.err != nil {
		return false
	}
	for sc.lines.Scan() {
		sc.line++
		line := sc.lines.Text()
		switch {
		case strings.HasPrefix(line, groupPrefix):
			sc.group = strings.TrimSpace(strings.TrimPrefix(line, groupPrefix))
			sc.subgroup = ""
		case strings.HasPrefix(line, subgroupPrefix):
			sc.subgroup = strings.TrimSpace(strings.TrimPrefix(line, subgroupPrefix))
		case line == "" || strings.HasPrefix(line, "#"):
			// skip
		default:
			entry, err := sc.parseLine(line)
			if err != nil {
				sc.err = fmt.Errorf("line %d: %w", sc.line, err)
				return false
			}
			sc.entry = entry
			return true
		}
	}
	sc.err = sc.lines.Err()
	return false
}

// Entry returns the data line the scanner currently points at.
func (sc *Scanner) Entry() Entry {
	return sc.entry
}

// Err returns the first error encountered, or nil after a clean EOF.
func (sc *Scanner) Err() error {
	return sc.err
}

// parseLine decodes one data line:
//
//	263A FE0F ; fully-qualified # ☺️ E0.6 smiling face
func (sc *Scanner) parseLine(line string) (Entry, error) {
	entry := Entry{Group: sc.group, Subgroup: sc.subgroup, Line: sc.line}
	codepoints, rest, ok := strings.Cut(line, ";")
	if !ok {
		return entry, fmt.Errorf("expected code points followed by ';'")
	}
	status, comment, ok := strings.Cut(rest, "#")
	if !ok {
		return entry, fmt.Errorf("expected status followed by '#'")
	}
	st, ok := statusNames[strings.TrimSpace(status)]
	if !ok {
		return entry, fmt.Errorf("unrecognized status %q", strings.TrimSpace(status))
	}
	entry.Status = st
	var b strings.Builder
	for _, cp := range strings.Fields(codepoints) {
		scalar, err := strconv.ParseUint(cp, 16, 32)
		if err != nil || scalar > 0x10FFFF {
			return entry, fmt.Errorf("invalid code point %q", cp)
		}
		b.WriteRune(rune(scalar))
	}
	entry.Sequence = b.String()
	if entry.Sequence == "" {
		return entry, fmt.Errorf("empty code point sequence")
	}
	// comment is "<emoji> E<major>.<minor> <name>"
	fields := strings.SplitN(strings.TrimSpace(comment), " ", 3)
	if len(fields) < 3 {
		return entry, fmt.Errorf("expected comment with emoji, version and name")
	}
	version, err := parseVersion(fields[1])
	if err != nil {
		return entry, err
	}
	entry.Version = version
	entry.Name = strings.TrimSpace(fields[2])
	return entry, nil
}

func parseVersion(field string) (Version, error) {
	if !strings.HasPrefix(field, "E") {
		return Version{}, fmt.Errorf("expected version tag, have %q", field)
	}
	major, minor, ok := strings.Cut(strings.TrimPrefix(field, "E"), ".")
	if !ok {
		return Version{}, fmt.Errorf("malformed version tag %q", field)
	}
	ma, err1 := strconv.Atoi(major)
	mi, err2 := strconv.Atoi(minor)
	if err1 != nil || err2 != nil {
		return Version{}, fmt.Errorf("malformed version tag %q", field)
	}
	return Version{Major: ma, Minor: mi}, nil
}
