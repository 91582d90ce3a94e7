// Package designation parses free-form tolerance designation strings.
package designation

import (
	"strconv"
	"strings"

	"isofit/internal/errors"
)

// Designation is a parsed <number><letters><integer> designation such as
// "25JS9" or "15H7". Letter case is preserved: it decides hole versus shaft.
type Designation struct {
	Size   float64
	Letter string
	Grade  int
}

// Zone is a designation without the size part, e.g. "H7" or "js9"
type Zone struct {
	Letter string
	Grade  int
}

// Parse splits a designation string into size, letter code and grade
func Parse(s string) (Designation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Designation{}, errors.Parse("empty designation")
	}

	i := 0
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	if i == 0 {
		return Designation{}, errors.Parsef("designation %q has no leading size", s)
	}

	size, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Designation{}, errors.Parsef("invalid size in designation %q", s)
	}

	zone, err := ParseZone(s[i:])
	if err != nil {
		return Designation{}, err
	}

	return Designation{Size: size, Letter: zone.Letter, Grade: zone.Grade}, nil
}

// ParseZone splits a zone string into letter code and grade. One- and
// two-letter codes and one- and two-digit grades are accepted ("H7",
// "JS9", "h12").
func ParseZone(s string) (Zone, error) {
	s = strings.TrimSpace(s)

	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	if i == 0 {
		return Zone{}, errors.Parsef("zone %q has no deviation letter", s)
	}
	if i > 2 {
		return Zone{}, errors.Parsef("zone %q has too many letters", s)
	}

	letter := s[:i]
	rest := s[i:]
	if rest == "" {
		return Zone{}, errors.Parsef("zone %q has no tolerance grade", s)
	}
	for j := 0; j < len(rest); j++ {
		if !isDigit(rest[j]) {
			return Zone{}, errors.Parsef("invalid tolerance grade in zone %q", s)
		}
	}

	grade, err := strconv.Atoi(rest)
	if err != nil {
		return Zone{}, errors.Parsef("invalid tolerance grade in zone %q", s)
	}

	return Zone{Letter: letter, Grade: grade}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// String renders the designation back to its canonical form
func (d Designation) String() string {
	return strconv.FormatFloat(d.Size, 'f', -1, 64) + d.Letter + strconv.Itoa(d.Grade)
}
