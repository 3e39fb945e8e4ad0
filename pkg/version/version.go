package version

import (
	"fmt"
	"strconv"
	"strings"
)

const Version = "0.1.0"

// SemVer is a minimal semantic version representation.
type SemVer struct {
	Major int
	Minor int
	Patch int
}

func (v SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseSemVer parses versions in the form "MAJOR.MINOR.PATCH" with an optional "v" prefix.
func ParseSemVer(raw string) (SemVer, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return SemVer{}, fmt.Errorf("version is empty")
	}

	value = strings.TrimPrefix(value, "v")
	parts := strings.Split(value, ".")
	if len(parts) != 3 {
		return SemVer{}, fmt.Errorf("invalid semantic version %q (expected MAJOR.MINOR.PATCH)", raw)
	}

	fields := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return SemVer{}, fmt.Errorf("invalid component %q in version %q", part, raw)
		}
		fields[i] = n
	}

	return SemVer{
		Major: fields[0],
		Minor: fields[1],
		Patch: fields[2],
	}, nil
}

// EnsureCompatible validates whether a sets file written for the target
// version can be read by the current build. Empty versions are accepted so
// files without a version field keep working.
func EnsureCompatible(target string) error {
	value := strings.TrimSpace(target)
	if value == "" {
		return nil
	}

	current, err := ParseSemVer(Version)
	if err != nil {
		return fmt.Errorf("parse current version %q: %w", Version, err)
	}
	required, err := ParseSemVer(value)
	if err != nil {
		return err
	}

	if required.Major != current.Major {
		return fmt.Errorf("unsupported major version %d (current major is %d)", required.Major, current.Major)
	}
	if current.Compare(required) < 0 {
		return fmt.Errorf("requires htmlbak >= %s (current %s)", required.String(), current.String())
	}

	return nil
}

// Compare returns -1, 0 or 1 ordering v against other.
func (v SemVer) Compare(other SemVer) int {
	pairs := [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}
