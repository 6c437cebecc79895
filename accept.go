// Package accept parses the HTTP "Accept-Language" header and computes
// the intersection between the languages a client accepts and the
// languages an application supports.
//
// Parsing takes the quality values into account and never fails:
// malformed entries are dropped and the remaining valid entries are
// returned, sorted according to the order of priority.
//
//	languages := accept.Parse("en-US, en-GB;q=0.5")
//	common := accept.Intersection("en-US, en-GB;q=0.5", []string{"en-US", "de", "en-GB"})
//
// All functions are pure and safe for concurrent use.
package accept

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Preference represents a single entry of an "Accept-Language" header:
// a normalized language tag and its quality value (priority).
type Preference struct {
	Tag     Tag
	Quality float64
}

var qualityValueRegex = regexp.MustCompile(`^q\s*=\s*(0(\.[0-9]{1,3})?|1(\.0{1,3})?)$`)

// Parse parses an "Accept-Language" header value into an ordered slice
// of normalized language tags, sorted according to the order of
// priority. This matches the list exposed by `window.navigator.languages`
// in supported browsers.
//
// The input is trimmed. If the input is empty, returns an empty slice.
//
// See: https://developer.mozilla.org/en-US/docs/Glossary/Quality_values
//
// For the following header:
//
//	"fr,en-us;q=0.9,de;q=0.5"
//
// returns
//
//	["fr" "en-US" "de"]
func Parse(header string) []string {
	return lo.Map(ParseWithQuality(header), func(p Preference, _ int) string {
		return p.Tag.String()
	})
}

// ParseWithQuality is the quality-preserving variant of `Parse`. The
// result is sorted by quality, descending. Entries with equal quality
// keep the header's left-to-right order, as clients intentionally list
// ties in order of preference.
//
// Malformed entries (empty tag, malformed or out-of-range quality
// value) are dropped without affecting the surrounding entries. An
// entry without a "q" parameter has a quality of 1.
func ParseWithQuality(header string) []Preference {
	h := strings.TrimSpace(header)
	if h == "" {
		return []Preference{}
	}

	preferences := make([]Preference, 0, strings.Count(h, ",")+1)
	for {
		comma := strings.Index(h, ",")
		if comma == -1 {
			comma = len(h)
		}
		if p, ok := parseEntry(h[:comma]); ok {
			preferences = append(preferences, p)
		}
		if comma == len(h) {
			break
		}
		h = h[comma+1:]
	}

	slices.SortStableFunc(preferences, func(a, b Preference) int {
		return cmp.Compare(b.Quality, a.Quality)
	})

	return preferences
}

func parseEntry(entry string) (Preference, bool) {
	quality := 1.0
	if i := strings.Index(entry, ";"); i != -1 {
		q := strings.TrimSpace(entry[i+1:])
		sub := qualityValueRegex.FindStringSubmatch(q)
		if len(sub) < 2 {
			return Preference{}, false
		}
		p, err := strconv.ParseFloat(sub[1], 64)
		if err != nil {
			return Preference{}, false
		}
		quality = p
		entry = entry[:i]
	}

	tag, ok := ParseTag(entry)
	if !ok {
		return Preference{}, false
	}
	return Preference{Tag: tag, Quality: quality}, true
}
