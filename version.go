// Package vimkit is a modal, vim-style text editing engine with a Bubble Tea
// host adapter. See engine for the core and editor for the terminal widget.
package vimkit

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

//go:embed VERSION
var versionFile string

var semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

// ErrInvalidVersion is returned by ParseVersion for strings that are not
// SemVer 2.0.0.
var ErrInvalidVersion = errors.New("invalid semantic version")

// Release is a parsed semantic version.
type Release struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

func (r Release) String() string {
	s := fmt.Sprintf("%d.%d.%d", r.Major, r.Minor, r.Patch)
	if r.Pre != "" {
		s += "-" + r.Pre
	}
	if r.Build != "" {
		s += "+" + r.Build
	}
	return s
}

// Tag is the git tag for the release.
func (r Release) Tag() string { return "v" + r.String() }

// ParseVersion parses a SemVer string without the leading v. Surrounding
// whitespace is ignored.
func ParseVersion(v string) (Release, error) {
	m := semverPattern.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Release{}, fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	var parts [3]int
	for i := range parts {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Release{}, fmt.Errorf("%w: %q", ErrInvalidVersion, v)
		}
		parts[i] = n
	}
	return Release{Major: parts[0], Minor: parts[1], Patch: parts[2], Pre: m[4], Build: m[5]}, nil
}

// Version returns the release this module was built from. A malformed
// VERSION file yields the zero release.
func Version() Release {
	r, _ := ParseVersion(versionFile)
	return r
}
