// Package registry resolves tagged handlers into an immutable lookup table.
//
// Providers are described by TaggedHandler values: an opaque provider id,
// a set of tag attributes that must carry `type` and `label`, and the
// handler itself. Build sorts providers by id, validates them and folds
// them into a Table mapping type to handler and type to label. A Table is
// never mutated once Build returns; Holder swaps whole tables for reloads.
//
// The package also provides Registry, a generic thread-safe name registry
// used for incremental registration before a table is finalized.
package registry
