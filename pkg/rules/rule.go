package rules

import "regexp"

// KeyGroup is the strip pattern's capture group holding the search key
const KeyGroup = "p"

// Rule is the compiled rule pair for one filetype
type Rule struct {
	Filetype     string
	TestPattern  *regexp.Regexp
	StripPattern *regexp.Regexp
}

// ExtractKey returns the search key for filename: the KeyGroup capture of
// the leftmost strip match, or filename itself when the pattern does not
// match or the group is absent or empty.
func (r *Rule) ExtractKey(filename string) string {
	idx := r.StripPattern.SubexpIndex(KeyGroup)
	if idx < 0 {
		return filename
	}

	m := r.StripPattern.FindStringSubmatchIndex(filename)
	if m == nil || m[2*idx] < 0 || m[2*idx] == m[2*idx+1] {
		return filename
	}
	return filename[m[2*idx]:m[2*idx+1]]
}

// HasKeyGroup reports whether the strip pattern declares the key group
func (r *Rule) HasKeyGroup() bool {
	return r.StripPattern.SubexpIndex(KeyGroup) >= 0
}

// IsTest reports whether the test pattern matches anywhere in filename
func (r *Rule) IsTest(filename string) bool {
	return r.TestPattern.MatchString(filename)
}

// IsAlternate reports whether candidate sits on the other side of the
// test/implementation divide from origin
func (r *Rule) IsAlternate(origin, candidate string) bool {
	return r.IsTest(origin) != r.IsTest(candidate)
}
