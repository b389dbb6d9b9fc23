package font

import "regexp"

// Class is one of the three draw-time font classes the writer can always
// satisfy.
type Class int

const (
	ClassSans Class = iota
	ClassSerif
	ClassMono
)

// String returns a string representation of the class
func (c Class) String() string {
	switch c {
	case ClassSerif:
		return "serif"
	case ClassMono:
		return "mono"
	default:
		return "sans"
	}
}

var (
	sansPattern  = regexp.MustCompile(`(?i)sans`)
	serifPattern = regexp.MustCompile(`(?i)times|georgia|garamond|cambria|palatino|book antiqua|serif`)
	monoPattern  = regexp.MustCompile(`(?i)courier|consolas|menlo|monaco|mono`)
)

// ClassFor maps a canonical font family to a draw class. Unmatched
// families default to sans. An explicit "sans" in the family name wins
// over the serif pattern so that "sans-serif" style names classify
// correctly.
func ClassFor(family string) Class {
	switch {
	case monoPattern.MatchString(family):
		return ClassMono
	case sansPattern.MatchString(family):
		return ClassSans
	case serifPattern.MatchString(family):
		return ClassSerif
	default:
		return ClassSans
	}
}
