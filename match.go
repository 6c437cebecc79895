package accept

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Match pairs a supported language tag, as provided by the caller, with
// the quality of the client preference that matched it.
type Match struct {
	Tag     string
	Quality float64
}

// Intersection compares an "Accept-Language" header value with the
// languages an application supports and returns the supported tags
// acceptable to the client, ordered by the client's preference.
//
// Matching is case-insensitive. A client tag without a region subtag
// matches every supported tag sharing the same primary subtag. A client
// tag with a region subtag requires an exact match; the bare primary
// subtag is used as a fallback only when the supported set contains no
// exact regional variant. The wildcard "*" matches everything.
//
// When several supported tags match the same preference, they are
// returned in supported-set order, so the caller should provide the
// supported set in priority order. Each supported tag appears at most
// once in the result. The supported set is never mutated.
func Intersection(header string, supported []string) []string {
	return tags(MatchAll(ParseWithQuality(header), supported))
}

// IntersectionWithQuality is the quality-preserving variant of
// `Intersection`: each matched supported tag is paired with the quality
// of the client preference that matched it.
func IntersectionWithQuality(header string, supported []string) []Match {
	return MatchAll(ParseWithQuality(header), supported)
}

// MatchAll returns the full intersection between an already-parsed
// preference list and a supported set, following the same rules as
// `Intersection`. The preference list is expected in priority order, as
// returned by `ParseWithQuality`.
func MatchAll(preferences []Preference, supported []string) []Match {
	if len(preferences) == 0 || len(supported) == 0 {
		return []Match{}
	}

	normalized := normalizeSupported(supported)
	matches := make([]Match, 0, len(supported))
	taken := make([]bool, len(supported))
	for _, p := range preferences {
		for _, i := range matchIndices(p.Tag, normalized) {
			if !taken[i] {
				taken[i] = true
				matches = append(matches, Match{Tag: supported[i], Quality: p.Quality})
			}
		}
	}
	return matches
}

// BestMatch returns the single best supported tag acceptable to the
// client, following the same rules as `Intersection`. It stops at the
// first preference with a match instead of computing the whole
// intersection. Returns false if no supported tag is acceptable.
func BestMatch(header string, supported []string) (Match, bool) {
	preferences := ParseWithQuality(header)
	if len(preferences) == 0 || len(supported) == 0 {
		return Match{}, false
	}

	normalized := normalizeSupported(supported)
	for _, p := range preferences {
		if i, ok := matchIndex(p.Tag, normalized); ok {
			return Match{Tag: supported[i], Quality: p.Quality}, true
		}
	}
	return Match{}, false
}

// IntersectionOrdered behaves like `Intersection` but uses binary
// search on the supported set, which MUST be sorted lexicographically
// by its normalized form (see `Normalize`). This precondition is not
// checked: an unsorted supported set yields missed matches, never a
// panic.
func IntersectionOrdered(header string, supported []string) []string {
	return tags(matchAllOrdered(ParseWithQuality(header), supported))
}

// BestMatchOrdered behaves like `BestMatch` but uses binary search on
// the supported set, under the same unchecked sort-order precondition
// as `IntersectionOrdered`.
func BestMatchOrdered(header string, supported []string) (Match, bool) {
	preferences := ParseWithQuality(header)
	if len(preferences) == 0 || len(supported) == 0 {
		return Match{}, false
	}

	for _, p := range preferences {
		if indices := matchIndicesOrdered(p.Tag, supported); len(indices) > 0 {
			return Match{Tag: supported[indices[0]], Quality: p.Quality}, true
		}
	}
	return Match{}, false
}

func matchAllOrdered(preferences []Preference, supported []string) []Match {
	if len(preferences) == 0 || len(supported) == 0 {
		return []Match{}
	}

	matches := make([]Match, 0, len(supported))
	taken := make([]bool, len(supported))
	for _, p := range preferences {
		for _, i := range matchIndicesOrdered(p.Tag, supported) {
			if !taken[i] {
				taken[i] = true
				matches = append(matches, Match{Tag: supported[i], Quality: p.Quality})
			}
		}
	}
	return matches
}

func normalizeSupported(supported []string) []Tag {
	return lo.Map(supported, func(s string, _ int) Tag {
		t, _ := ParseTag(s)
		return t
	})
}

func tags(matches []Match) []string {
	return lo.Map(matches, func(m Match, _ int) string {
		return m.Tag
	})
}

// matchIndices returns the indices of the supported tags matched by the
// client tag t, in supported-set order.
func matchIndices(t Tag, supported []Tag) []int {
	var indices []int
	switch {
	case t.Language == "*":
		for i, s := range supported {
			if s.Language != "" {
				indices = append(indices, i)
			}
		}
	case t.Region == "":
		for i, s := range supported {
			if s.Language == t.Language {
				indices = append(indices, i)
			}
		}
	default:
		for i, s := range supported {
			if s.Language == t.Language && s.Region == t.Region {
				indices = append(indices, i)
			}
		}
		if len(indices) == 0 {
			for i, s := range supported {
				if s.Language == t.Language && s.Region == "" {
					indices = append(indices, i)
				}
			}
		}
	}
	return indices
}

// matchIndex is the short-circuiting variant of matchIndices.
func matchIndex(t Tag, supported []Tag) (int, bool) {
	fallback := -1
	for i, s := range supported {
		switch {
		case t.Language == "*":
			if s.Language != "" {
				return i, true
			}
		case s.Language != t.Language:
		case t.Region == "" || s.Region == t.Region:
			return i, true
		case s.Region == "" && fallback == -1:
			fallback = i
		}
	}
	if fallback != -1 {
		return fallback, true
	}
	return -1, false
}

// matchIndicesOrdered is the binary-search variant of matchIndices. The
// supported set must be sorted by its normalized form.
func matchIndicesOrdered(t Tag, supported []string) []int {
	if t.Language == "*" {
		var indices []int
		for i, s := range supported {
			if Normalize(s) != "" {
				indices = append(indices, i)
			}
		}
		return indices
	}

	if t.Region == "" {
		// The bare primary subtag and all its regional variants form
		// a contiguous run: "en" < "en-GB" < "en-US" < "eo".
		start := sort.Search(len(supported), func(i int) bool {
			return Normalize(supported[i]) >= t.Language
		})
		var indices []int
		for i := start; i < len(supported); i++ {
			norm := Normalize(supported[i])
			if norm != t.Language && !strings.HasPrefix(norm, t.Language+"-") {
				break
			}
			indices = append(indices, i)
		}
		return indices
	}

	if indices := searchNormalized(t.String(), supported); len(indices) > 0 {
		return indices
	}
	return searchNormalized(t.Language, supported)
}

func searchNormalized(key string, supported []string) []int {
	start := sort.Search(len(supported), func(i int) bool {
		return Normalize(supported[i]) >= key
	})
	var indices []int
	for i := start; i < len(supported) && Normalize(supported[i]) == key; i++ {
		indices = append(indices, i)
	}
	return indices
}
