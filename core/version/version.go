package version

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalid is matched by every parse failure.
var ErrInvalid = errors.New("invalid version")

// ParseError describes a version string that could not be parsed.
type ParseError struct {
	Input string
	// Reason is a short explanation of what is wrong with Input.
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version %q: %s", e.Input, e.Reason)
}

// Is implements errors.Is support.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalid
}

// Version is a parsed semantic version. The zero value is not a valid version.
type Version struct {
	raw string
	// canonical is the "v"-prefixed form understood by x/mod/semver.
	canonical string
}

// Parse parses a strict MAJOR.MINOR.PATCH version with optional pre-release
// and build metadata. Shorthand forms ("1", "1.2") and a leading "v" are rejected.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, &ParseError{Input: s, Reason: "empty string"}
	}
	if strings.HasPrefix(s, "v") || strings.HasPrefix(s, "V") {
		return Version{}, &ParseError{Input: s, Reason: "leading 'v' is not allowed"}
	}

	prefixed := "v" + s
	if !semver.IsValid(prefixed) {
		return Version{}, &ParseError{Input: s, Reason: "not a semantic version"}
	}

	// semver.Canonical pads shorthand versions ("v1.2" -> "v1.2.0") and drops build
	// metadata, so comparing the core against it detects missing components.
	core := prefixed
	if i := strings.IndexByte(core, '+'); i >= 0 {
		core = core[:i]
	}
	if semver.Canonical(prefixed) != core {
		return Version{}, &ParseError{Input: s, Reason: "major, minor and patch are all required"}
	}

	return Version{raw: s, canonical: prefixed}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version exactly as it was parsed.
func (v Version) String() string {
	return v.raw
}

// IsZero reports whether v is the zero value.
func (v Version) IsZero() bool {
	return v.canonical == ""
}

// Compare returns -1, 0 or +1 depending on whether v precedes, equals or follows o.
func (v Version) Compare(o Version) int {
	return semver.Compare(v.canonical, o.canonical)
}

// Less reports whether v has lower precedence than o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// Equal reports whether v and o have the same precedence.
// "1.0.0+a" and "1.0.0+b" are equal.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
