// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import (
	"fmt"
	"math/bits"
	"strings"
)

// Capability is one independent boolean attribute of a record. Its value is
// the bit position used by numeric masks in the upstream catalog format.
type Capability uint8

const (
	HelpHidden                      Capability = 0
	Frontend                        Capability = 4
	NoDriver                        Capability = 5
	NoInteractive                   Capability = 6
	NoBatch                         Capability = 7
	DoesNotAffectIncrementalBuild   Capability = 8
	AutolinkExtract                 Capability = 9
	ModuleWrap                      Capability = 10
	SynthesizeInterface             Capability = 11
	ArgumentIsPath                  Capability = 12
	ModuleInterface                 Capability = 13
	SupplementaryOutput             Capability = 14
	APIExtract                      Capability = 15
	SymbolGraphExtract              Capability = 16
	APIDigester                     Capability = 17
	NewDriverOnly                   Capability = 18
	ModuleInterfaceIgnorable        Capability = 19
	ModuleInterfaceIgnorablePrivate Capability = 20
	ArgumentIsFileList              Capability = 21
	CacheInvariant                  Capability = 22
)

// Capabilities lists every known capability in bit order. Emitted attribute
// lists follow this order.
var Capabilities = []Capability{
	HelpHidden,
	Frontend,
	NoDriver,
	NoInteractive,
	NoBatch,
	DoesNotAffectIncrementalBuild,
	AutolinkExtract,
	ModuleWrap,
	SynthesizeInterface,
	ArgumentIsPath,
	ModuleInterface,
	SupplementaryOutput,
	APIExtract,
	SymbolGraphExtract,
	APIDigester,
	NewDriverOnly,
	ModuleInterfaceIgnorable,
	ModuleInterfaceIgnorablePrivate,
	ArgumentIsFileList,
	CacheInvariant,
}

var capabilityNames = map[Capability]string{
	HelpHidden:                      "helpHidden",
	Frontend:                        "frontend",
	NoDriver:                        "noDriver",
	NoInteractive:                   "noInteractive",
	NoBatch:                         "noBatch",
	DoesNotAffectIncrementalBuild:   "doesNotAffectIncrementalBuild",
	AutolinkExtract:                 "autolinkExtract",
	ModuleWrap:                      "moduleWrap",
	SynthesizeInterface:             "synthesizeInterface",
	ArgumentIsPath:                  "argumentIsPath",
	ModuleInterface:                 "moduleInterface",
	SupplementaryOutput:             "supplementaryOutput",
	APIExtract:                      "apiExtract",
	SymbolGraphExtract:              "symbolGraphExtract",
	APIDigester:                     "apiDigester",
	NewDriverOnly:                   "newDriverOnly",
	ModuleInterfaceIgnorable:        "moduleInterfaceIgnorable",
	ModuleInterfaceIgnorablePrivate: "moduleInterfaceIgnorablePrivate",
	ArgumentIsFileList:              "argumentIsFileList",
	CacheInvariant:                  "cacheInvariant",
}

// knownMask has a bit set for every defined capability.
var knownMask = func() CapabilitySet {
	var s CapabilitySet
	for _, c := range Capabilities {
		s = s.With(c)
	}
	return s
}()

// String returns the capability name as used in catalogs and predicates.
func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Capability(%d)", uint8(c))
}

// ParseCapability resolves a capability by name. Matching ignores case and
// underscores, so "no_driver", "NoDriver" and "noDriver" are equivalent.
func ParseCapability(name string) (Capability, error) {
	key := strings.ToLower(strings.ReplaceAll(name, "_", ""))
	for _, c := range Capabilities {
		if strings.ToLower(capabilityNames[c]) == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown capability %q", name)
}

// CapabilitySet is an immutable set of capabilities.
type CapabilitySet uint32

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	var s CapabilitySet
	for _, c := range caps {
		s = s.With(c)
	}
	return s
}

// CapabilitySetFromMask validates a raw upstream bitmask.
func CapabilitySetFromMask(mask uint64) (CapabilitySet, error) {
	if mask > uint64(^uint32(0)) || CapabilitySet(mask)&^knownMask != 0 {
		return 0, fmt.Errorf("mask %#x sets undefined capability bits", mask)
	}
	return CapabilitySet(mask), nil
}

// Has reports whether c is in the set.
func (s CapabilitySet) Has(c Capability) bool {
	return s&(1<<c) != 0
}

// With returns a copy of the set with c added.
func (s CapabilitySet) With(c Capability) CapabilitySet {
	return s | 1<<c
}

// Union returns the union of both sets.
func (s CapabilitySet) Union(o CapabilitySet) CapabilitySet {
	return s | o
}

// IsEmpty reports whether no capability is set.
func (s CapabilitySet) IsEmpty() bool {
	return s == 0
}

// Len returns the number of capabilities in the set.
func (s CapabilitySet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Members returns the capabilities in bit order.
func (s CapabilitySet) Members() []Capability {
	out := make([]Capability, 0, s.Len())
	for _, c := range Capabilities {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the capability names in bit order.
func (s CapabilitySet) Names() []string {
	members := s.Members()
	out := make([]string, len(members))
	for i, c := range members {
		out[i] = c.String()
	}
	return out
}

// Env returns a name → bool view of every known capability, suitable as an
// evaluation environment for context predicates.
func (s CapabilitySet) Env() map[string]any {
	env := make(map[string]any, len(Capabilities))
	for _, c := range Capabilities {
		env[c.String()] = s.Has(c)
	}
	return env
}
