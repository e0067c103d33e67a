// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import (
	"fmt"
	"strings"
)

// Kind tags the parsing shape of a record.
type Kind int

const (
	KindGroup Kind = iota
	KindInput
	KindUnknown
	KindFlag
	KindJoined
	KindSeparate
	KindRemainingArgs
	KindCommaJoined
	KindJoinedOrSeparate
	KindMultiArg
)

var kindNames = [...]string{
	KindGroup:            "group",
	KindInput:            "input",
	KindUnknown:          "unknown",
	KindFlag:             "flag",
	KindJoined:           "joined",
	KindSeparate:         "separate",
	KindRemainingArgs:    "remainingArgs",
	KindCommaJoined:      "commaJoined",
	KindJoinedOrSeparate: "joinedOrSeparate",
	KindMultiArg:         "multiArg",
}

// String returns the lower camel name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the lower camel, snake case or upper camel spelling of a
// kind name ("joinedOrSeparate", "joined_or_separate", "JoinedOrSeparate").
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.ReplaceAll(s, "_", ""))
	for k, name := range kindNames {
		if strings.ToLower(name) == key {
			return Kind(k), nil
		}
	}
	// Older catalogs spell it "remaining".
	if key == "remaining" {
		return KindRemainingArgs, nil
	}
	return KindUnknown, fmt.Errorf("unknown option kind %q", s)
}

// IsOption reports whether records of this kind take part in per-option passes.
func (k Kind) IsOption() bool {
	return k != KindGroup && k != KindUnknown
}
