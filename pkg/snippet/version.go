package snippet

import (
	"errors"
	"fmt"
)

// ErrUnknownVersion is returned when a docs version token has no known mapping.
var ErrUnknownVersion = errors.New("unknown docs version")

// Version is a documentation (and SDK) version.
type Version int

const (
	V1 Version = iota
	Beta
)

// Versions lists every supported docs version.
func Versions() []Version {
	return []Version{V1, Beta}
}

// ParseVersion accepts "v1.0", "v1", "V1", "beta" and "Beta".
func ParseVersion(s string) (Version, error) {
	switch fold(s) {
	case "v1.0", "v1":
		return V1, nil
	case "beta":
		return Beta, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, s)
}

// String returns the name used in test identities: "V1" or "Beta".
func (v Version) String() string {
	switch v {
	case V1:
		return "V1"
	case Beta:
		return "Beta"
	}
	return fmt.Sprintf("version(%d)", int(v))
}

// Path returns the docs repository directory segment: "v1.0" or "beta".
func (v Version) Path() string {
	switch v {
	case V1:
		return "v1.0"
	case Beta:
		return "beta"
	}
	return ""
}

// DocsSegment returns the value used in the docs site "view" query parameter.
func (v Version) DocsSegment() string {
	switch v {
	case V1:
		return "1.0"
	case Beta:
		return "beta"
	}
	return ""
}

// Valid reports whether v is one of the declared versions.
func (v Version) Valid() bool {
	return v == V1 || v == Beta
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
