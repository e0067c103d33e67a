// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package catalog provides the format-agnostic, in-memory model of an option
// catalog: the flat, ordered list of option and group records produced by an
// upstream schema compiler.
//
// # Core Concepts
//
//   - OptionRecord: one row of the catalog. A record either describes a
//     command-line option (flag, joined value, separate value, ...) or, when its
//     Kind is KindGroup, a group that other records refer to.
//
//   - CapabilitySet: the independent boolean attributes of a record (hidden,
//     frontend-only, driver-excluded, ...). Each capability has a stable name
//     used by context predicates and a stable bit used by numeric masks.
//
//   - ContextDef: a named predicate over capability names, selecting which
//     records are registered for a particular downstream tool mode.
//
// Catalog order, the order in which records appear in the input, is the only
// iteration order used for emitted text. Nothing in this package reorders
// records, and nothing downstream mutates them once loaded.
//
// Concrete readers for HCL and YAML catalogs live in separate packages and
// implement the Loader interface defined here.
package catalog
