package update

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Ordering is the position of a remote version relative to the local one.
type Ordering int

const (
	Older Ordering = iota - 1
	Equal
	Newer
)

func (o Ordering) String() string {
	switch o {
	case Older:
		return "older"
	case Equal:
		return "equal"
	case Newer:
		return "newer"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// VersionTriple is the (major, minor, patch) decomposition of a version string.
type VersionTriple [3]uint64

// ParseVersionTriple splits s on "." and requires exactly three unsigned
// decimal components. Prefixes such as "v" and prerelease suffixes are rejected.
func ParseVersionTriple(s string) (VersionTriple, error) {
	var vt VersionTriple
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return vt, fmt.Errorf("%w: %q has %d components, want 3", ErrInvalidVersionFormat, s, len(parts))
	}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return vt, fmt.Errorf("%w: %q component %d: %v", ErrInvalidVersionFormat, s, i, err)
		}
		vt[i] = n
	}
	return vt, nil
}

// Encode packs the triple into a single comparable number by zero-padding
// every component to three digits and concatenating them.
// Components of 1000 or more are not range checked and misorder.
func (vt VersionTriple) Encode() (uint64, error) {
	s := vt.Packed()
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: encoded %q: %v", ErrInvalidVersionFormat, s, err)
	}
	return n, nil
}

// Packed is the zero-padded digit string Encode parses.
func (vt VersionTriple) Packed() string {
	return fmt.Sprintf("%03d%03d%03d", vt[0], vt[1], vt[2])
}

func (vt VersionTriple) String() string {
	return fmt.Sprintf("%d.%d.%d", vt[0], vt[1], vt[2])
}

// CompareVersions orders remote against local using the packed encoding.
func CompareVersions(local, remote string) (Ordering, error) {
	lv, err := ParseVersionTriple(local)
	if err != nil {
		return Equal, err
	}
	rv, err := ParseVersionTriple(remote)
	if err != nil {
		return Equal, err
	}
	ln, err := lv.Encode()
	if err != nil {
		return Equal, err
	}
	rn, err := rv.Encode()
	if err != nil {
		return Equal, err
	}

	switch {
	case rn > ln:
		return Newer, nil
	case rn < ln:
		return Older, nil
	default:
		return Equal, nil
	}
}

// IsNewerVersion returns true if remote is newer than local. Unparseable
// versions never count as newer.
func IsNewerVersion(local, remote string) bool {
	ord, err := CompareVersions(local, remote)
	return err == nil && ord == Newer
}

// EncodingDisagrees reports whether the packed encoding orders the two
// versions differently from semantic versioning, which happens once a
// component reaches 1000. It is used for diagnostics only.
func EncodingDisagrees(local, remote string) bool {
	ord, err := CompareVersions(local, remote)
	if err != nil {
		return false
	}
	lv, _ := ParseVersionTriple(local)
	rv, _ := ParseVersionTriple(remote)
	return semver.Compare("v"+rv.String(), "v"+lv.String()) != int(ord)
}
