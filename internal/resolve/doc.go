// Package resolve holds the resolution passes that run on an indexed
// catalog: alias resolution (every alias gets the generator of its
// canonical record) and group resolution (every group gets a derived
// identifier and every grouped record a cross-reference).
//
// Both passes are independent, read catalog order through the index, and
// return immutable tables keyed by option position.
package resolve
