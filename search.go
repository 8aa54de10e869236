package emojis

import (
	"sort"
	"strings"

	"github.com/xrash/smetrics"
)

// Scores at or below this threshold do not make it into search results.
const searchThreshold = 0.8

// A candidate string starting with the query counts double. This lifts
// prefix matches above pure-similarity matches; exact matches score the
// maximum of 2 and therefore always rank first.
const prefixBoost = 2

// Search returns all emojis whose CLDR name or one of whose shortcodes
// resembles query, best match first. Every record is scored with the Jaro
// similarity of the query against the name and against each shortcode; the
// best of these scores counts. Ties are broken by table position, so two
// runs over the same table always return the same ranking.
//
// Search scans the whole table on every call; nothing is cached. An empty
// query matches nothing.
func Search(query string) []*Emoji {
	setup()
	query = strings.ToLower(query)
	type scored struct {
		e     *Emoji
		score float64
	}
	var matches []scored
	for i := range emojiTable {
		e := &emojiTable[i]
		score := similarity(query, e.name)
		for _, alias := range e.aliases {
			if s := similarity(query, alias); s > score {
				score = s
			}
		}
		if score > searchThreshold {
			matches = append(matches, scored{e, score})
		}
	}
	tracer().Debugf("search %q matched %d of %d emojis", query, len(matches), len(emojiTable))
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].e.id < matches[j].e.id
	})
	result := make([]*Emoji, len(matches))
	for i, m := range matches {
		result[i] = m.e
	}
	return result
}

// similarity scores candidate against query in the range [0,2]: Jaro
// similarity, doubled when candidate starts with the query.
func similarity(query, candidate string) float64 {
	if query == "" || candidate == "" {
		return 0
	}
	candidate = strings.ToLower(candidate)
	s := smetrics.Jaro(query, candidate)
	if strings.HasPrefix(candidate, query) {
		s *= prefixBoost
	}
	return s
}
