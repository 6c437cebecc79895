package accept

import "strings"

// Tag represents a normalized language tag from an "Accept-Language"
// header or a supported-language list.
type Tag struct {
	// Language is the primary subtag, lowercased ("en"). The wildcard
	// "*" is a valid value and is never case-normalized.
	Language string

	// Region is everything after the primary subtag, uppercased and
	// hyphen-joined ("US", "HANT-CN"). Empty if the tag only consists
	// of a primary subtag. No semantic distinction is made between
	// region, script or any further subtag.
	Region string
}

// String returns the canonical text form of the tag ("en", "en-US").
func (t Tag) String() string {
	if t.Region == "" {
		return t.Language
	}
	return t.Language + "-" + t.Region
}

// ParseTag normalizes a single language tag: the primary subtag is
// lowercased, everything after it is uppercased. Surrounding whitespace
// is insignificant. Returns false if the primary subtag is empty.
//
//	ParseTag("EN-us")  // Tag{Language: "en", Region: "US"}, true
//	ParseTag("fr")     // Tag{Language: "fr"}, true
//	ParseTag("*")      // Tag{Language: "*"}, true
//	ParseTag("-US")    // Tag{}, false
func ParseTag(s string) (Tag, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Tag{}, false
	}
	if s == "*" {
		return Tag{Language: "*"}, true
	}
	if i := strings.Index(s, "-"); i != -1 {
		if i == 0 {
			return Tag{}, false
		}
		return Tag{
			Language: strings.ToLower(s[:i]),
			Region:   strings.ToUpper(s[i+1:]),
		}, true
	}
	// Common case: no region subtag, no extra allocation.
	return Tag{Language: strings.ToLower(s)}, true
}

// Normalize returns the canonical form of a language tag string, or the
// empty string if the tag has no primary subtag. Normalization is
// idempotent. This is the comparison key used by the Ordered matching
// variants.
func Normalize(s string) string {
	t, ok := ParseTag(s)
	if !ok {
		return ""
	}
	return t.String()
}
