package facts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidTargetType is returned when a target type name is not recognised
	ErrInvalidTargetType = errors.New("invalid target type")
	// ErrInvalidVersion is returned when a host version string cannot be parsed
	ErrInvalidVersion = errors.New("invalid host version")
)

// TargetType is the kind of build the host is producing
type TargetType string

const (
	TargetGame    TargetType = "Game"
	TargetEditor  TargetType = "Editor"
	TargetServer  TargetType = "Server"
	TargetClient  TargetType = "Client"
	TargetProgram TargetType = "Program"
)

// AllTargetTypes lists every target type in the order the host declares them
func AllTargetTypes() []TargetType {
	return []TargetType{TargetGame, TargetEditor, TargetServer, TargetClient, TargetProgram}
}

// NewTargetType parses a target type name, ignoring case and surrounding space
func NewTargetType(value string) (TargetType, error) {
	trimmed := strings.TrimSpace(value)
	for _, t := range AllTargetTypes() {
		if strings.EqualFold(trimmed, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTargetType, value)
}

// String returns the string representation of TargetType
func (t TargetType) String() string {
	return string(t)
}

// IsEditor reports whether the build is an editor build
func (t TargetType) IsEditor() bool {
	return t == TargetEditor
}

// HostVersion is the engine version of the host build tool.
// Values are taken as given; range checks belong to the host.
type HostVersion struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
}

// NewHostVersion creates a HostVersion from its components
func NewHostVersion(major, minor int) HostVersion {
	return HostVersion{Major: major, Minor: minor}
}

// ParseHostVersion parses "MAJOR.MINOR" or "MAJOR.MINOR.PATCH". The patch
// component is accepted and discarded.
func ParseHostVersion(value string) (HostVersion, error) {
	parts := strings.Split(strings.TrimSpace(value), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return HostVersion{}, fmt.Errorf("%w: %q (expected MAJOR.MINOR)", ErrInvalidVersion, value)
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return HostVersion{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, value, err)
		}
		nums[i] = n
	}

	return HostVersion{Major: nums[0], Minor: nums[1]}, nil
}

// String formats the version as MAJOR.MINOR
func (v HostVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// EnvironmentFacts are the host facts the dependency rules are evaluated against
type EnvironmentFacts struct {
	TargetType        TargetType  `json:"target_type" yaml:"target_type"`
	LiveCodingEnabled bool        `json:"live_coding_enabled" yaml:"live_coding_enabled"`
	HostVersion       HostVersion `json:"host_version" yaml:"host_version"`
}

// DefaultEnvironmentFacts returns the facts of a current editor build with live coding
func DefaultEnvironmentFacts() EnvironmentFacts {
	return EnvironmentFacts{
		TargetType:        TargetEditor,
		LiveCodingEnabled: true,
		HostVersion:       NewHostVersion(5, 4),
	}
}

// String implements the Stringer interface
func (f EnvironmentFacts) String() string {
	return fmt.Sprintf("target=%s live_coding=%t version=%s", f.TargetType, f.LiveCodingEnabled, f.HostVersion)
}
