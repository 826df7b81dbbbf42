// Package datamap implements the localized record index used by every entity
// collection in the merged dataset.
//
// A Map is an insertion-ordered collection of entries keyed by integer id,
// with a bidirectional id<->name index maintained per language. Lookups work
// by id, or by (language, display name); iteration always follows insertion
// order, which downstream consumers rely on for deterministic output.
//
// # Conflict policy
//
// Inserting a duplicate id, or a duplicate display name within one language,
// is rejected with an error rather than silently overwriting either side of
// the index. Collections that legitimately contain repeated display strings
// should not index them as names.
package datamap
